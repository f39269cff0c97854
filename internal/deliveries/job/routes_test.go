package job

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/common/ctxdata"
	"github.com/printhaus/go-shop-finance/internal/common/flag"
	"github.com/printhaus/go-shop-finance/internal/common/xlog"
	"github.com/printhaus/go-shop-finance/internal/config"
	"github.com/printhaus/go-shop-finance/internal/services"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func TestJob_Start(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC is already the next day in Jakarta
	now := func() time.Time { return time.Date(2024, time.March, 14, 20, 0, 0, 0, time.UTC) }

	var gotDate time.Time
	var gotCorrelation string
	j := &Job{
		loc: jakarta,
		now: now,
		Routes: JobRoutes{
			"v1": {
				"Echo": func(ctx context.Context, date time.Time, _ flag.Job) error {
					gotDate = date
					gotCorrelation = ctxdata.GetCorrelationId(ctx)
					return nil
				},
				"Broken": func(context.Context, time.Time, flag.Job) error {
					return assert.AnError
				},
			},
		},
	}

	tests := []struct {
		name     string
		flag     flag.Job
		wantDate time.Time
		wantErr  error
	}{
		{
			name:     "explicit date",
			flag:     flag.Job{JobName: "Echo", Version: "v1", Date: "2024-02-29"},
			wantDate: time.Date(2024, time.February, 29, 0, 0, 0, 0, jakarta),
		},
		{
			name:     "defaults to today in business timezone",
			flag:     flag.Job{JobName: "Echo", Version: "v1"},
			wantDate: time.Date(2024, time.March, 15, 0, 0, 0, 0, jakarta),
		},
		{
			name:    "bad date",
			flag:    flag.Job{JobName: "Echo", Version: "v1", Date: "15/03/2024"},
			wantErr: common.ErrInvalidFormatDate,
		},
		{
			name:    "unknown job",
			flag:    flag.Job{JobName: "Nope", Version: "v1"},
			wantErr: ErrJobNotFound,
		},
		{
			name:    "unknown version",
			flag:    flag.Job{JobName: "Echo", Version: "v9"},
			wantErr: ErrJobNotFound,
		},
		{
			name:    "job error is returned",
			flag:    flag.Job{JobName: "Broken", Version: "v1"},
			wantErr: assert.AnError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDate, gotCorrelation = time.Time{}, ""

			err := j.Start(context.Background(), tt.flag)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.wantDate.Equal(gotDate), "got %s", gotDate)
			assert.NotEmpty(t, gotCorrelation)
		})
	}
}

func TestNew_List(t *testing.T) {
	j := New(config.Config{}, &services.Services{})

	assert.Equal(t, []string{
		"version=v1, name=ExportCustomerStatements",
		"version=v1, name=ImportPaymentSettlement",
		"version=v1, name=PublishDuePolicyReminders",
	}, j.List())
}
