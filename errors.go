package scribe

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for conversion and compilation failures.
var (
	// ErrUnknownText is returned when input text matches no member and the
	// enum has no catch-all to absorb it.
	ErrUnknownText = errors.New("scribe: unknown text")

	// ErrUnscribable is returned when a value has no text form, i.e. an
	// ignored member or a value outside the declared set.
	ErrUnscribable = errors.New("scribe: unscribable value")

	// ErrCompile is returned when a validated schema cannot be compiled
	// into a runtime table.
	ErrCompile = errors.New("scribe: cannot compile table")
)

// UnknownTextError reports input text that matched no member during
// reverse conversion.
type UnknownTextError struct {
	Type     string   // enum type name
	Text     string   // the unmatched input
	Expected []string // assigned texts of the normal members, if known
}

// Error returns the error string.
func (e *UnknownTextError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scribe: unknown %s text %q", e.Type, e.Text)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ", expected one of %s", strings.Join(e.Expected, ", "))
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for UnknownTextError.
func (e *UnknownTextError) Is(target error) bool {
	return target == ErrUnknownText
}

// NewUnknownTextError returns a new UnknownTextError for the given input.
func NewUnknownTextError(typeName, text string, expected []string) *UnknownTextError {
	return &UnknownTextError{Type: typeName, Text: text, Expected: expected}
}

// IsUnknownText returns true if the error is an UnknownTextError.
func IsUnknownText(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownTextError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownText)
}

// UnscribableError reports an attempt to convert a value that has no text
// form: an ignored member, or a value outside the declared set.
type UnscribableError struct {
	Type  string // enum type name
	Value any    // the offending value, if known
}

// Error returns the error string.
func (e *UnscribableError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("scribe: cannot scribe %s value %v (ignored or out of set)", e.Type, e.Value)
	}
	return fmt.Sprintf("scribe: cannot scribe %s value (ignored or out of set)", e.Type)
}

// Is reports whether the target matches the sentinel error for UnscribableError.
func (e *UnscribableError) Is(target error) bool {
	return target == ErrUnscribable
}

// NewUnscribableError returns a new UnscribableError for the given value.
func NewUnscribableError(typeName string, value any) *UnscribableError {
	return &UnscribableError{Type: typeName, Value: value}
}

// IsUnscribable returns true if the error is an UnscribableError.
func IsUnscribable(err error) bool {
	if err == nil {
		return false
	}
	var e *UnscribableError
	return errors.As(err, &e) || errors.Is(err, ErrUnscribable)
}

// CompileError reports a validated schema that cannot be turned into a
// runtime table, e.g. a member without a bound value.
type CompileError struct {
	Type   string // enum type name
	Member string // member name, if the failure is member-specific
	Reason string
}

// Error returns the error string.
func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scribe: cannot compile %s", e.Type)
	if e.Member != "" {
		b.WriteString(" member ")
		b.WriteString(e.Member)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for CompileError.
func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// NewCompileError returns a new CompileError.
func NewCompileError(typeName, member, reason string) *CompileError {
	return &CompileError{Type: typeName, Member: member, Reason: reason}
}

// IsCompileError returns true if the error is a CompileError.
func IsCompileError(err error) bool {
	if err == nil {
		return false
	}
	var e *CompileError
	return errors.As(err, &e) || errors.Is(err, ErrCompile)
}
