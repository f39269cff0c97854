package log

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

func TestLogJob(t *testing.T) {
	tests := []struct {
		name       string
		run        JobRun
		err        error
		wantLevel  zapcore.Level
		wantStatus string
		wantKeys   []string
	}{
		{
			name:       "success with resolved date",
			run:        JobRun{Name: "PublishDuePolicyReminders", Version: "v1", RunningDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), StartedAt: time.Now()},
			wantLevel:  zapcore.InfoLevel,
			wantStatus: "success",
			wantKeys:   []string{"running-date", "duration"},
		},
		{
			name:       "failure before the date is parsed",
			run:        JobRun{Name: "Nope", Version: "v1"},
			err:        assert.AnError,
			wantLevel:  zapcore.WarnLevel,
			wantStatus: "fail",
			wantKeys:   []string{"error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			xlog.ReplaceForTest(zap.New(core))
			t.Cleanup(xlog.InitForTest)

			LogJob(context.Background(), tt.run, tt.err)

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.wantLevel, entries[0].Level)
				fields := entries[0].ContextMap()
				assert.Equal(t, tt.wantStatus, fields["status"])
				assert.Equal(t, tt.run.Name, fields["job-name"])
				for _, k := range tt.wantKeys {
					assert.Contains(t, fields, k)
				}
			}
		})
	}
}
