package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/models"
)

func Test_checkDatabaseError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     []string
		wantCode string
	}{
		{
			name:     "no rows without code",
			err:      common.ErrNoRows,
			wantCode: models.GetErrMap(models.ErrKeyDataNotFound).Code,
		},
		{
			name:     "no rows with code",
			err:      fmt.Errorf("scan: %w", common.ErrNoRows),
			code:     []string{models.ErrKeyPolicyNotFound},
			wantCode: models.GetErrMap(models.ErrKeyPolicyNotFound).Code,
		},
		{
			name:     "any other error",
			err:      errors.New("conn reset"),
			code:     []string{models.ErrKeyPolicyNotFound},
			wantCode: models.GetErrMap(models.ErrKeyDatabaseError).Code,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDatabaseError(tt.err, tt.code...)

			var detail models.ErrorDetail
			require.ErrorAs(t, err, &detail)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func Test_checkWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"missing customer", common.ErrDataNotFound, models.GetErrMap(models.ErrKeyCustomerNotFound).Code},
		{"duplicate", common.ErrDataExist, models.GetErrMap(models.ErrKeyOrderAlreadyExists).Code},
		{"other", assert.AnError, models.GetErrMap(models.ErrKeyDatabaseError).Code},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkWriteError(tt.err, models.ErrKeyOrderAlreadyExists)

			var detail models.ErrorDetail
			require.ErrorAs(t, err, &detail)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func Test_pagination(t *testing.T) {
	page := models.Pagination{Limit: 2}

	assert.False(t, pageDone(2, page))
	assert.True(t, pageDone(1, page))
	assert.True(t, pageDone(0, page))
	assert.Equal(t, models.Pagination{Limit: 2, Offset: 2}, nextPage(page))
	assert.Equal(t, models.Pagination{Limit: 2, Offset: 4}, nextPage(nextPage(page)))
}

func Test_publishEvent_nilPublisher(t *testing.T) {
	assert.False(t, publishEvent(t.Context(), nil, models.EventTypeOrderCreated, "CUS-1", struct{}{}))
}
