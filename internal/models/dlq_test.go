package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFailedMessage_Sealed(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name        string
		msg         FailedMessage
		wantError   string
		wantFailure time.Time
	}{
		{
			name:        "cause copied and time stamped",
			msg:         FailedMessage{CauseError: errors.New("customer not found")},
			wantError:   "customer not found",
			wantFailure: now,
		},
		{
			name:        "explicit values kept",
			msg:         FailedMessage{CauseError: errors.New("ignored"), Error: "given", FailedAt: earlier},
			wantError:   "given",
			wantFailure: earlier,
		},
		{
			name:        "no cause",
			msg:         FailedMessage{},
			wantFailure: now,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.msg.Sealed(now)
			assert.Equal(t, tt.wantError, got.Error)
			assert.Equal(t, tt.wantFailure, got.FailedAt)
		})
	}
}
