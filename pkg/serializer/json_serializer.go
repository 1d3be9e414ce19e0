// Package serializer provides utilities for serializing and deserializing
// data as JSON, including non-failing variants for callers that prefer a
// sentinel over an error.
package serializer

import "encoding/json"

// Codec is an interface for objects that can serialize and deserialize data.
type Codec interface {
	// Marshal serializes the provided value into a byte slice.
	Marshal(v any) ([]byte, error)

	// Unmarshal deserializes data from a byte slice into the provided value.
	Unmarshal(data []byte, v any) error
}

// JSONCodec implements Codec using encoding/json.
type JSONCodec struct{}

// NewJSONCodec creates a new instance of JSONCodec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Marshal serializes the provided value as JSON.
func (c *JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal deserializes JSON data into the provided value.
func (c *JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// SafeMarshal serializes v as JSON and returns nil on any failure, including
// self-referential values that json.Marshal rejects with a cycle error.
func SafeMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

// SafeUnmarshal deserializes JSON data into v and reports success. Empty or
// malformed input returns false; it never panics and never returns an error.
func SafeUnmarshal(data []byte, v any) bool {
	if len(data) == 0 || v == nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
