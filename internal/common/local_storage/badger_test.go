package localstorage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localstorage "github.com/printhaus/go-shop-finance/internal/common/local_storage"
)

type stagedRow struct {
	CustomerID string `json:"customerId"`
	Line       int    `json:"line"`
}

func TestBadgerStorage(t *testing.T) {
	store, err := localstorage.NewBadgerStorage[stagedRow]("settlement-test", localstorage.WithInMemory())
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, store.Clean())
	}()

	t.Run("missing key gives zero value", func(t *testing.T) {
		got, err := store.Get("STL-404")
		assert.NoError(t, err)
		assert.Equal(t, stagedRow{}, got)
	})

	t.Run("set if absent keeps the first value", func(t *testing.T) {
		stored, err := store.SetIfAbsent("STL-1", stagedRow{CustomerID: "CUS-1", Line: 2})
		require.NoError(t, err)
		assert.True(t, stored)

		stored, err = store.SetIfAbsent("STL-1", stagedRow{CustomerID: "CUS-9", Line: 7})
		require.NoError(t, err)
		assert.False(t, stored)

		got, err := store.Get("STL-1")
		require.NoError(t, err)
		assert.Equal(t, stagedRow{CustomerID: "CUS-1", Line: 2}, got)
	})

	t.Run("for each visits in key order", func(t *testing.T) {
		require.NoError(t, store.Set("STL-3", stagedRow{CustomerID: "CUS-3", Line: 4}))
		require.NoError(t, store.Set("STL-2", stagedRow{CustomerID: "CUS-2", Line: 3}))

		var keys []string
		err := store.ForEach(func(key string, _ stagedRow) error {
			keys = append(keys, key)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"STL-1", "STL-2", "STL-3"}, keys)

		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("for each stops on callback error", func(t *testing.T) {
		errStop := errors.New("stop")
		visited := 0
		err := store.ForEach(func(string, stagedRow) error {
			visited++
			return errStop
		})
		assert.ErrorIs(t, err, errStop)
		assert.Equal(t, 1, visited)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete("STL-3"))
		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestBadgerStorage_OnDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := localstorage.NewBadgerStorage[stagedRow]("settlement-disk", localstorage.WithDir(dir))
	require.NoError(t, err)

	require.NoError(t, store.Set("STL-1", stagedRow{CustomerID: "CUS-1"}))
	require.NoError(t, store.Close())
	assert.NoError(t, store.Clean())
	assert.NoDirExists(t, dir+"/settlement-disk")
}
