// Package nullable provides a JSON value that remembers whether it was
// omitted, explicitly set to null, or set to a value.
//
// A plain pointer cannot tell `{}` apart from `{"description": null}`;
// partial updates need that distinction to support clearing a field.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Nullable holds an optional JSON value.
//
//	{}                     -> Set=false
//	{"field": null}        -> Set=true, Null=true
//	{"field": "something"} -> Set=true, Null=false, Value="something"
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a Nullable holding v.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Null returns a Nullable explicitly set to null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// UnmarshalJSON is only called by encoding/json when the key is present.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Null = true
		var zero T
		n.Value = zero
		return nil
	}

	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

// MarshalJSON writes null unless a value is present.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// HasValue reports whether a non-null value was supplied.
func (n Nullable[T]) HasValue() bool {
	return n.Set && !n.Null
}

// Ptr returns a pointer to a copy of the value, or nil when omitted or null.
func (n Nullable[T]) Ptr() *T {
	if !n.HasValue() {
		return nil
	}
	v := n.Value
	return &v
}
