package localstorage

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/dgraph-io/badger/v4"
)

type badgerStorage[T any] struct {
	db     *badger.DB
	bucket string
	pathDB string
}

type badgerOptions struct {
	dir      string
	inMemory bool
}

type BadgerOption func(*badgerOptions)

// WithDir places the store under dir instead of the OS temp directory.
func WithDir(dir string) BadgerOption {
	return func(o *badgerOptions) {
		o.dir = dir
	}
}

// WithInMemory keeps everything in memory, nothing is written to disk.
func WithInMemory() BadgerOption {
	return func(o *badgerOptions) {
		o.inMemory = true
	}
}

func NewBadgerStorage[T any](bucket string, opts ...BadgerOption) (LocalStorage[T], error) {
	o := &badgerOptions{dir: os.TempDir()}
	for _, opt := range opts {
		opt(o)
	}

	pathDB := path.Join(o.dir, bucket)
	badgerOpts := badger.DefaultOptions(pathDB)
	if o.inMemory {
		pathDB = ""
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	badgerOpts.Logger = nil

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open localstorage %s: %w", bucket, err)
	}

	return &badgerStorage[T]{
		db:     db,
		bucket: bucket,
		pathDB: pathDB,
	}, nil
}

func (b badgerStorage[T]) Get(key string) (T, error) {
	var val T
	var rawVal []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		rawVal, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return val, fmt.Errorf("failed to get value from localstorage: %w", err)
	}

	if rawVal == nil {
		return val, nil
	}

	if err = Unmarshal(rawVal, &val); err != nil {
		return val, fmt.Errorf("failed to unmarshal value from localstorage: %w", err)
	}

	return val, nil
}

func (b badgerStorage[T]) Set(key string, value T) error {
	rawVal, err := Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), rawVal)
	})
	if err != nil {
		return fmt.Errorf("failed to set value to localstorage: %w", err)
	}

	return nil
}

func (b badgerStorage[T]) SetIfAbsent(key string, value T) (bool, error) {
	rawVal, err := Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal value: %w", err)
	}

	stored := false
	err = b.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		stored = true
		return txn.Set([]byte(key), rawVal)
	})
	if err != nil {
		return false, fmt.Errorf("failed to set value to localstorage: %w", err)
	}

	return stored, nil
}

func (b badgerStorage[T]) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete value from localstorage: %w", err)
	}

	return nil
}

func (b badgerStorage[T]) Count() (int, error) {
	count := 0
	err := b.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.PrefetchValues = false
		it := txn.NewIterator(itOpts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count localstorage: %w", err)
	}

	return count, nil
}

func (b badgerStorage[T]) Clean() error {
	if b.pathDB == "" {
		return nil
	}
	return os.RemoveAll(b.pathDB)
}

func (b badgerStorage[T]) Close() error {
	return b.db.Close()
}

func (b badgerStorage[T]) ForEach(f func(key string, value T) error) error {
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			k := item.KeyCopy(nil)
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			var val T
			if err = Unmarshal(v, &val); err != nil {
				return fmt.Errorf("failed to unmarshal value: %w", err)
			}

			if err = f(string(k), val); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate over localstorage: %w", err)
	}

	return nil
}
