package scribe

import (
	"database/sql/driver"
	"fmt"
)

// Value converts v to its text form for database/sql driver.Valuer
// implementations. Storing an ignored or out-of-set value yields an
// UnscribableError.
func Value(typeName string, v TryScriber) (driver.Value, error) {
	s, ok := v.TryScribe()
	if !ok {
		return nil, NewUnscribableError(typeName, v)
	}
	return s, nil
}

// Scan converts a database value through the reverse conversion for
// sql.Scanner implementations. It accepts string and []byte sources; nil
// and any other source type fail.
func Scan[T any](typeName string, reverse TryUnscriber[T], src any, expected ...string) (T, error) {
	var zero T
	var s string
	switch x := src.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return zero, fmt.Errorf("scribe: cannot scan %T into %s: %w", src, typeName, ErrUnknownText)
	}
	v, ok := reverse(s)
	if !ok {
		return zero, NewUnknownTextError(typeName, s, expected)
	}
	return v, nil
}

// Value converts v through the table for driver.Valuer implementations.
func (m *Map[T]) Value(v T) (driver.Value, error) {
	return Value(m.typeName, m.scriber(v))
}

// Scan converts a database value through the table for sql.Scanner
// implementations.
func (m *Map[T]) Scan(src any) (T, error) {
	return Scan(m.typeName, m.TryUnscribe, src, m.texts...)
}
