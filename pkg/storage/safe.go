package storage

import "github.com/Chandra179/web-utils/pkg/serializer"

// SafeStore wraps a Store so that no operation can fail. Backend errors
// (quota, disabled storage, connectivity) become no-ops or empty results,
// isolating callers from platform quirks.
type SafeStore struct {
	store Store
}

// NewSafeStore wraps store in a SafeStore.
func NewSafeStore(store Store) *SafeStore {
	return &SafeStore{store: store}
}

// Set stores a raw string value. Backend failures are swallowed.
func (s *SafeStore) Set(key, value string) {
	_ = s.store.Set(key, value)
}

// SetJSON stores v as JSON. Serialization or backend failures are
// swallowed.
func (s *SafeStore) SetJSON(key string, v any) {
	data := serializer.SafeMarshal(v)
	if data == nil {
		return
	}
	_ = s.store.Set(key, string(data))
}

// Get returns the stored string, or "" when the key is absent or the
// backend fails.
func (s *SafeStore) Get(key string) string {
	val, err := s.store.Get(key)
	if err != nil {
		return ""
	}
	return val
}

// GetJSON decodes the stored JSON value into out and reports success.
// Missing keys, backend failures and malformed payloads all return false.
func (s *SafeStore) GetJSON(key string, out any) bool {
	val, err := s.store.Get(key)
	if err != nil {
		return false
	}
	return serializer.SafeUnmarshal([]byte(val), out)
}

// Remove deletes the key. Backend failures are swallowed.
func (s *SafeStore) Remove(key string) {
	_ = s.store.Delete(key)
}
