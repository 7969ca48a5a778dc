package enum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSchema is the sentinel matched by every schema validation
// error in this package.
var ErrInvalidSchema = errors.New("scribe: invalid enum schema")

// MemberError reports member-level misuse that has no more specific kind:
// empty or duplicate names, texts on members that cannot carry one, or an
// enum with no members.
type MemberError struct {
	Type    string // enum type name
	Member  string // member name (empty for enum-level errors)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *MemberError) Error() string {
	var b strings.Builder
	b.WriteString("scribe: invalid schema")
	if e.Type != "" {
		b.WriteString(" for enum ")
		b.WriteString(e.Type)
	}
	if e.Member != "" {
		b.WriteString(" member ")
		b.WriteString(e.Member)
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
func (e *MemberError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for MemberError.
func (e *MemberError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewMemberError creates a new MemberError.
func NewMemberError(typeName, member, message string, cause error) *MemberError {
	return &MemberError{
		Type:    typeName,
		Member:  member,
		Message: message,
		Cause:   cause,
	}
}

// TransformError reports an unknown text transform name.
type TransformError struct {
	Type  string
	Name  string   // the unknown transform name
	Known []string // accepted transform names
}

// Error implements the error interface.
func (e *TransformError) Error() string {
	return fmt.Sprintf("scribe: invalid schema for enum %s: unknown transform %q (known: %s)",
		e.Type, e.Name, strings.Join(e.Known, ", "))
}

// Is reports whether the target matches the sentinel error for TransformError.
func (e *TransformError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewTransformError creates a new TransformError.
func NewTransformError(typeName, name string) *TransformError {
	return &TransformError{
		Type:  typeName,
		Name:  name,
		Known: Transforms(),
	}
}

// CaseConflictError reports case_sensitive and case_insensitive requested
// together, either on one member or as the enum default.
type CaseConflictError struct {
	Type   string
	Member string // empty when the conflict is on the enum itself
}

// Error implements the error interface.
func (e *CaseConflictError) Error() string {
	var b strings.Builder
	b.WriteString("scribe: invalid schema for enum ")
	b.WriteString(e.Type)
	if e.Member != "" {
		b.WriteString(" member ")
		b.WriteString(e.Member)
	}
	b.WriteString(": case_sensitive conflicts with case_insensitive")
	return b.String()
}

// Is reports whether the target matches the sentinel error for CaseConflictError.
func (e *CaseConflictError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewCaseConflictError creates a new CaseConflictError.
func NewCaseConflictError(typeName, member string) *CaseConflictError {
	return &CaseConflictError{Type: typeName, Member: member}
}

// OtherIgnoreError reports a member marked both other and ignore.
type OtherIgnoreError struct {
	Type   string
	Member string
}

// Error implements the error interface.
func (e *OtherIgnoreError) Error() string {
	return fmt.Sprintf("scribe: invalid schema for enum %s member %s: other conflicts with ignore",
		e.Type, e.Member)
}

// Is reports whether the target matches the sentinel error for OtherIgnoreError.
func (e *OtherIgnoreError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewOtherIgnoreError creates a new OtherIgnoreError.
func NewOtherIgnoreError(typeName, member string) *OtherIgnoreError {
	return &OtherIgnoreError{Type: typeName, Member: member}
}

// CaptureConflictError reports an ignored member on an enum that also has
// a catch-all. The catch-all constructs values directly from input text,
// so on a string-backed enum the ignored constant's backing value could
// materialize from a capture, and ignored members must never materialize.
type CaptureConflictError struct {
	Type   string
	Member string // the ignored member
}

// Error implements the error interface.
func (e *CaptureConflictError) Error() string {
	return fmt.Sprintf("scribe: invalid schema for enum %s member %s: ignored member cannot coexist with a catch-all (captured text could materialize it)",
		e.Type, e.Member)
}

// Is reports whether the target matches the sentinel error for CaptureConflictError.
func (e *CaptureConflictError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewCaptureConflictError creates a new CaptureConflictError.
func NewCaptureConflictError(typeName, member string) *CaptureConflictError {
	return &CaptureConflictError{Type: typeName, Member: member}
}

// DuplicateOtherError reports a second member marked other.
type DuplicateOtherError struct {
	Type   string
	First  string // member that claimed other first
	Second string // member that claimed it again
}

// Error implements the error interface.
func (e *DuplicateOtherError) Error() string {
	return fmt.Sprintf("scribe: invalid schema for enum %s: member %s marked other, but %s already is",
		e.Type, e.Second, e.First)
}

// Is reports whether the target matches the sentinel error for DuplicateOtherError.
func (e *DuplicateOtherError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewDuplicateOtherError creates a new DuplicateOtherError.
func NewDuplicateOtherError(typeName, first, second string) *DuplicateOtherError {
	return &DuplicateOtherError{Type: typeName, First: first, Second: second}
}

// OtherShapeError reports an other member on an enum whose backing cannot
// carry the captured input text.
type OtherShapeError struct {
	Type    string
	Member  string
	Backing Backing
}

// Error implements the error interface.
func (e *OtherShapeError) Error() string {
	return fmt.Sprintf("scribe: invalid schema for enum %s member %s: other requires a string-backed enum, not %s",
		e.Type, e.Member, e.Backing)
}

// Is reports whether the target matches the sentinel error for OtherShapeError.
func (e *OtherShapeError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewOtherShapeError creates a new OtherShapeError.
func NewOtherShapeError(typeName, member string, backing Backing) *OtherShapeError {
	return &OtherShapeError{Type: typeName, Member: member, Backing: backing}
}

// DuplicateTextError reports two members whose assigned texts collide under
// the matching rules in effect: exact equality when both are
// case-sensitive, caseless equality when either is case-insensitive.
type DuplicateTextError struct {
	Type     string
	Text     string // the colliding text, as assigned to First
	First    string
	Second   string
	Caseless bool // true when the collision is under case folding
}

// Error implements the error interface.
func (e *DuplicateTextError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scribe: invalid schema for enum %s: members %s and %s share the text %q",
		e.Type, e.First, e.Second, e.Text)
	if e.Caseless {
		b.WriteString(" under case-insensitive matching")
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for DuplicateTextError.
func (e *DuplicateTextError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewDuplicateTextError creates a new DuplicateTextError.
func NewDuplicateTextError(typeName, text, first, second string, caseless bool) *DuplicateTextError {
	return &DuplicateTextError{
		Type:     typeName,
		Text:     text,
		First:    first,
		Second:   second,
		Caseless: caseless,
	}
}

// IsMemberError reports whether the error is a MemberError.
func IsMemberError(err error) bool {
	var memberErr *MemberError
	return errors.As(err, &memberErr)
}

// IsTransformError reports whether the error is a TransformError.
func IsTransformError(err error) bool {
	var transformErr *TransformError
	return errors.As(err, &transformErr)
}

// IsCaseConflictError reports whether the error is a CaseConflictError.
func IsCaseConflictError(err error) bool {
	var caseErr *CaseConflictError
	return errors.As(err, &caseErr)
}

// IsOtherIgnoreError reports whether the error is an OtherIgnoreError.
func IsOtherIgnoreError(err error) bool {
	var otherIgnoreErr *OtherIgnoreError
	return errors.As(err, &otherIgnoreErr)
}

// IsCaptureConflictError reports whether the error is a CaptureConflictError.
func IsCaptureConflictError(err error) bool {
	var captureErr *CaptureConflictError
	return errors.As(err, &captureErr)
}

// IsDuplicateOtherError reports whether the error is a DuplicateOtherError.
func IsDuplicateOtherError(err error) bool {
	var dupOtherErr *DuplicateOtherError
	return errors.As(err, &dupOtherErr)
}

// IsOtherShapeError reports whether the error is an OtherShapeError.
func IsOtherShapeError(err error) bool {
	var shapeErr *OtherShapeError
	return errors.As(err, &shapeErr)
}

// IsDuplicateTextError reports whether the error is a DuplicateTextError.
func IsDuplicateTextError(err error) bool {
	var dupTextErr *DuplicateTextError
	return errors.As(err, &dupTextErr)
}
