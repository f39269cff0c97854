package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ceiling struct {
	CustomerID string `json:"customerId"`
	Amount     string `json:"amount"`
}

func TestInMemoryClient(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryClient[ceiling]()
	defer c.Close()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotExists)

	require.NoError(t, c.Set(ctx, "c-1", ceiling{CustomerID: "c-1", Amount: "6000"}, time.Minute))
	got, err := c.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "6000", got.Amount)

	require.NoError(t, c.Delete(ctx, "c-1"))
	_, err = c.Get(ctx, "c-1")
	assert.ErrorIs(t, err, ErrNotExists)

	require.NoError(t, c.Set(ctx, "expired", ceiling{}, time.Nanosecond))
	time.Sleep(time.Millisecond)
	_, err = c.Get(ctx, "expired")
	assert.ErrorIs(t, err, ErrNotExists)

	c.Close()
}

func TestInMemoryClient_GetOrSet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryClient[ceiling]()
	defer c.Close()

	calls := 0
	opts := GetOrSetOpts[ceiling]{
		Key: "c-2",
		TTL: time.Minute,
		Callback: func() (ceiling, error) {
			calls++
			return ceiling{CustomerID: "c-2", Amount: "100"}, nil
		},
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrSet(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, "100", got.Amount)
	}
	assert.Equal(t, 1, calls)

	_, err := c.GetOrSet(ctx, GetOrSetOpts[ceiling]{Key: "c-3"})
	assert.ErrorIs(t, err, ErrCallbackNotProvided)

	_, err = c.GetOrSet(ctx, GetOrSetOpts[ceiling]{
		Key:      "c-4",
		Callback: func() (ceiling, error) { return ceiling{}, assert.AnError },
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRedisClient(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisClient[ceiling](db, "shopfin")

	mock.ExpectGet("shopfin:missing").RedisNil()
	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotExists)

	mock.ExpectGet("shopfin:c-1").SetVal(`{"customerId":"c-1","amount":"6000"}`)
	got, err := c.Get(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, ceiling{CustomerID: "c-1", Amount: "6000"}, got)

	mock.ExpectSet("shopfin:c-1", []byte(`{"customerId":"c-1","amount":"7000"}`), time.Hour).SetVal("OK")
	require.NoError(t, c.Set(ctx, "c-1", ceiling{CustomerID: "c-1", Amount: "7000"}, time.Hour))

	mock.ExpectDel("shopfin:c-1").SetVal(1)
	require.NoError(t, c.Delete(ctx, "c-1"))

	mock.ExpectGet("shopfin:err").SetErr(assert.AnError)
	_, err = c.Get(ctx, "err")
	assert.ErrorIs(t, err, assert.AnError)

	assert.NoError(t, mock.ExpectationsWereMet())
}
