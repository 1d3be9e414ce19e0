package storage

import (
	"errors"
	"sync/atomic"
)

// ErrAlreadyBound is returned when a Registrar is asked to construct a
// second bounded store. Two independently declared key sets coexisting
// would mask typos, so the conflict fails fast instead.
var ErrAlreadyBound = errors.New("storage: registrar already bound")

// Registrar is a caller-owned, one-shot handle for constructing a
// BoundedStore. Create exactly one at application start and thread it to
// the single NewBounded call; there is no hidden package-level state.
type Registrar struct {
	bound atomic.Bool
}

// NewRegistrar creates an unbound Registrar.
func NewRegistrar() *Registrar {
	return &Registrar{}
}

// BoundedStore restricts store access to a dedicated key type K declared
// by the caller. Declaring a named string type with a closed set of
// constants makes the compiler reject foreign keys. All operations swallow
// backend failures the way SafeStore does.
type BoundedStore[K ~string] struct {
	safe *SafeStore
	keys []K
}

// NewBounded binds store to a BoundedStore over the declared keys,
// consuming the registrar. A second call with the same registrar returns
// ErrAlreadyBound.
func NewBounded[K ~string](r *Registrar, store Store, keys ...K) (*BoundedStore[K], error) {
	if r == nil {
		return nil, errors.New("storage: nil registrar")
	}
	if !r.bound.CompareAndSwap(false, true) {
		return nil, ErrAlreadyBound
	}
	declared := make([]K, len(keys))
	copy(declared, keys)
	return &BoundedStore[K]{
		safe: NewSafeStore(store),
		keys: declared,
	}, nil
}

// Set stores a raw string value under key.
func (b *BoundedStore[K]) Set(key K, value string) {
	b.safe.Set(string(key), value)
}

// SetJSON stores v as JSON under key.
func (b *BoundedStore[K]) SetJSON(key K, v any) {
	b.safe.SetJSON(string(key), v)
}

// Get returns the stored string, or "" when absent or on backend failure.
func (b *BoundedStore[K]) Get(key K) string {
	return b.safe.Get(string(key))
}

// GetJSON decodes the stored JSON value into out and reports success.
func (b *BoundedStore[K]) GetJSON(key K, out any) bool {
	return b.safe.GetJSON(string(key), out)
}

// Remove deletes key.
func (b *BoundedStore[K]) Remove(key K) {
	b.safe.Remove(string(key))
}

// ClearAll removes every declared key. Keys outside the declared set are
// never touched.
func (b *BoundedStore[K]) ClearAll() {
	for _, key := range b.keys {
		b.safe.Remove(string(key))
	}
}
