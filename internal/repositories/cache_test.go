package repositories

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/printhaus/go-shop-finance/internal/common"
	"github.com/printhaus/go-shop-finance/internal/models"
)

var (
	dedupKey       = models.StorefrontEventKey("evt-1")
	idempotencyKey = models.IdempotencyCacheKey("pay-42")
)

func TestCacheRepository_SetIfNotExists(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(mock redismock.ClientMock)
		want    bool
		wantErr bool
	}{
		{
			name: "first delivery claims the event",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(dedupKey, int64(10), models.TTLStorefrontEvent).SetVal(true)
			},
			want: true,
		},
		{
			name: "redelivery finds the key taken",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(dedupKey, int64(10), models.TTLStorefrontEvent).SetVal(false)
			},
		},
		{
			name: "redis down",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(dedupKey, int64(10), models.TTLStorefrontEvent).SetErr(redis.ErrClosed)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.doMock(mock)

			got, err := NewCacheRepository(db).SetIfNotExists(context.Background(), dedupKey, int64(10), models.TTLStorefrontEvent)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCacheRepository_SetGet(t *testing.T) {
	const stored = `{"key":"pay-42","status":"pending"}`

	tests := []struct {
		name    string
		doMock  func(mock redismock.ClientMock)
		want    string
		wantErr error
	}{
		{
			name: "stored value is read back trimmed",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectSet(idempotencyKey, stored, models.TTLIdempotency).SetVal("OK")
				mock.ExpectGet(idempotencyKey).SetVal(" " + stored + "\n")
			},
			want: stored,
		},
		{
			name: "expired key is not found",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectSet(idempotencyKey, stored, models.TTLIdempotency).SetVal("OK")
				mock.ExpectGet(idempotencyKey).RedisNil()
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "read failure is passed through",
			doMock: func(mock redismock.ClientMock) {
				mock.ExpectSet(idempotencyKey, stored, models.TTLIdempotency).SetVal("OK")
				mock.ExpectGet(idempotencyKey).SetErr(redis.ErrClosed)
			},
			wantErr: redis.ErrClosed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.doMock(mock)
			repo := NewCacheRepository(db)

			assert.NoError(t, repo.Set(context.Background(), idempotencyKey, stored, models.TTLIdempotency))
			got, err := repo.Get(context.Background(), idempotencyKey)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCacheRepository_Set_error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectSet(idempotencyKey, "x", models.TTLIdempotency).SetErr(redis.ErrClosed)

	assert.ErrorIs(t, NewCacheRepository(db).Set(context.Background(), idempotencyKey, "x", models.TTLIdempotency), redis.ErrClosed)
}

func TestCacheRepository_Del(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheRepository(db)

	mock.ExpectDel(dedupKey, idempotencyKey).SetVal(2)
	assert.NoError(t, repo.Del(context.Background(), dedupKey, idempotencyKey))

	mock.ExpectDel(dedupKey).SetErr(redis.ErrClosed)
	assert.Error(t, repo.Del(context.Background(), dedupKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRepository_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheRepository(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().SetErr(redis.ErrClosed)
	assert.Error(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
