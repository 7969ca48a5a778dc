// Package scribe converts enum values to and from their text form.
//
// A conversion is described by a schema ([schema/enum]), checked by
// enum.Validate, and then compiled either into a runtime table ([Compile])
// or into specialized methods by the scribegen code generator
// ([compiler/gen], cmd/scribegen).
//
// Conversion comes in a total and a partial flavor in each direction.
// Forward conversion (value to text) is total unless the schema has ignored
// members; reverse conversion (text to value) is total only when the schema
// has a catch-all member that captures unmatched input. The partial
// operations TryScribe and TryUnscribe always exist and report absence with
// a boolean.
package scribe

// Scriber is the total forward conversion: every value of the implementing
// type has a text. Generated by scribegen for enums without ignored
// members.
type Scriber interface {
	Scribe() string
}

// TryScriber is the partial forward conversion. It exists for every
// compiled enum; ignored and out-of-set values report false.
type TryScriber interface {
	TryScribe() (string, bool)
}

// Unscriber is the total reverse conversion for enums with a catch-all
// member: unmatched input yields the catch-all carrying the input verbatim.
type Unscriber[T any] func(s string) T

// TryUnscriber is the partial reverse conversion. It exists for every
// compiled enum; unmatched input reports false unless a catch-all member
// absorbs it.
type TryUnscriber[T any] func(s string) (T, bool)

// tryScribeFunc adapts a closure to TryScriber for the codec glue.
type tryScribeFunc func() (string, bool)

func (f tryScribeFunc) TryScribe() (string, bool) { return f() }
