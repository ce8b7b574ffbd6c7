package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes the three states a field can take in a PATCH body:
// absent (leave the column untouched), explicit null (clear it), and a
// concrete value. The zero value means absent — UnmarshalJSON only runs for
// keys present in the payload.
type Optional[T any] struct {
	Defined bool
	Value   *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Defined = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Has reports a present, non-null value.
func (o Optional[T]) Has() bool { return o.Defined && o.Value != nil }

// Null reports an explicit null.
func (o Optional[T]) Null() bool { return o.Defined && o.Value == nil }

// OptionalOf wraps a concrete value (used by tests and internal callers).
func OptionalOf[T any](v T) Optional[T] { return Optional[T]{Defined: true, Value: &v} }

// OptionalNull is an explicit null (clear the field).
func OptionalNull[T any]() Optional[T] { return Optional[T]{Defined: true} }
