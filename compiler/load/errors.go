package load

import (
	"go/token"
	"strings"
)

// Error is a scan error. When the error originates from a source comment
// or declaration, Position points at it and Pos locates it in the fileset
// of the load for diagnostic tooling.
type Error struct {
	Position string    // file:line, empty when not position-bound
	Message  string
	Cause    error
	Pos      token.Pos // valid only within the originating load
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("scribe: load error")
	if e.Position != "" {
		b.WriteString(" at ")
		b.WriteString(e.Position)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}
