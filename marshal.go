package scribe

import (
	"encoding/json"
	"fmt"
)

// MarshalText converts v to its text form for encoding.TextMarshaler
// implementations. An absent forward result is a caller misuse (marshaling
// an ignored or out-of-set value) and yields an UnscribableError.
func MarshalText(typeName string, v TryScriber) ([]byte, error) {
	s, ok := v.TryScribe()
	if !ok {
		return nil, NewUnscribableError(typeName, v)
	}
	return []byte(s), nil
}

// UnmarshalText converts incoming text through the reverse conversion for
// encoding.TextUnmarshaler implementations. Unmatched text yields an
// UnknownTextError carrying the input and, when given, the expected texts.
func UnmarshalText[T any](typeName string, reverse TryUnscriber[T], data []byte, expected ...string) (T, error) {
	v, ok := reverse(string(data))
	if !ok {
		var zero T
		return zero, NewUnknownTextError(typeName, string(data), expected)
	}
	return v, nil
}

// MarshalJSON converts v to a quoted JSON string for json.Marshaler
// implementations.
func MarshalJSON(typeName string, v TryScriber) ([]byte, error) {
	s, ok := v.TryScribe()
	if !ok {
		return nil, NewUnscribableError(typeName, v)
	}
	return json.Marshal(s)
}

// UnmarshalJSON converts a quoted JSON string through the reverse
// conversion for json.Unmarshaler implementations.
func UnmarshalJSON[T any](typeName string, reverse TryUnscriber[T], data []byte, expected ...string) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var zero T
		return zero, fmt.Errorf("scribe: unmarshal %s: %w", typeName, err)
	}
	v, ok := reverse(s)
	if !ok {
		var zero T
		return zero, NewUnknownTextError(typeName, s, expected)
	}
	return v, nil
}

// MarshalText converts v through the table for encoding.TextMarshaler
// implementations.
func (m *Map[T]) MarshalText(v T) ([]byte, error) {
	return MarshalText(m.typeName, m.scriber(v))
}

// UnmarshalText converts incoming text through the table, reporting
// unmatched input with the table's expected-texts list.
func (m *Map[T]) UnmarshalText(data []byte) (T, error) {
	return UnmarshalText(m.typeName, m.TryUnscribe, data, m.texts...)
}

// MarshalJSON converts v through the table to a quoted JSON string.
func (m *Map[T]) MarshalJSON(v T) ([]byte, error) {
	return MarshalJSON(m.typeName, m.scriber(v))
}

// UnmarshalJSON converts a quoted JSON string through the table.
func (m *Map[T]) UnmarshalJSON(data []byte) (T, error) {
	return UnmarshalJSON(m.typeName, m.TryUnscribe, data, m.texts...)
}

func (m *Map[T]) scriber(v T) TryScriber {
	return tryScribeFunc(func() (string, bool) { return m.TryScribe(v) })
}
