/*
Package storage provides key-value persistence helpers layered over a
pluggable string-keyed store.

Components:
- Store interface: the persistence boundary (Redis- or memory-backed).
- RedisStore / MemoryStore: concrete Store implementations.
- SafeStore: a wrapper whose operations never fail, converting every
  backend error into a no-op or empty result.
- BoundedStore: a typed-key wrapper restricted to a caller-declared key
  set, constructed at most once per Registrar.

Usage:
Create a Store (NewRedisStore or NewMemoryStore), then wrap it in a
SafeStore for fire-and-forget access, or bind it to a BoundedStore through
a Registrar when the key set should be closed.
*/
package storage

import "errors"

// ErrNotFound is returned by Store.Get when the key has no value.
var ErrNotFound = errors.New("storage: key not found")

// Store defines the persistence boundary used by the helpers in this
// package. Implementations hold string values under string keys.
type Store interface {
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Get retrieves the value stored under key. Returns ErrNotFound when
	// the key is absent.
	Get(key string) (string, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
