package localstorage

import (
	"encoding/json"
)

// LocalStorage keeps data for a single process run, such as the rows of one
// settlement file while it is being imported.
type LocalStorage[T any] interface {
	// Get returns the zero value when key is not found.
	Get(key string) (T, error)

	Set(key string, value T) error

	// SetIfAbsent stores value only when key is new and reports whether it did.
	SetIfAbsent(key string, value T) (bool, error)

	Delete(key string) error

	// ForEach visits every entry in key order.
	ForEach(func(key string, value T) error) error

	Count() (int, error)

	Close() error

	// Clean removes the files backing the storage. Call it after Close.
	Clean() error
}

type (
	MarshalFunc   func(v any) ([]byte, error)
	UnmarshalFunc func(data []byte, v any) error
)

var (
	Marshal   MarshalFunc   = json.Marshal
	Unmarshal UnmarshalFunc = json.Unmarshal
)
