package gen

import (
	"github.com/go-openapi/inflect"

	"github.com/scribegen/scribe/compiler/load"
	"github.com/scribegen/scribe/schema/enum"
)

// An Enum is one validated schema prepared for generation. Scan-mode
// enums attach methods to an existing declaration; schema-mode enums
// declare the type and its constants too.
type Enum struct {
	*enum.Validated

	// Package is the output package name. Empty means the config's
	// package.
	Package string

	// Dir is the output directory. Empty means the config's target.
	Dir string

	// Declare emits the type and constant declarations (schema mode).
	Declare bool
}

// NewEnum validates a programmatically built descriptor and prepares it
// for schema-mode generation.
func NewEnum(d *enum.Descriptor) (*Enum, error) {
	v, err := enum.Validate(d)
	if err != nil {
		return nil, err
	}
	return &Enum{Validated: v, Declare: true}, nil
}

// FromLoad validates a scanned enum and prepares it for scan-mode
// generation next to its declaration.
func FromLoad(le *load.Enum) (*Enum, error) {
	v, err := enum.Validate(le.Descriptor)
	if err != nil {
		return nil, err
	}
	return &Enum{Validated: v, Package: le.Package, Dir: le.Dir}, nil
}

// ConstName returns the Go constant identifier of a member. Scan-mode
// members are existing constants and keep their name; schema-mode
// constants are prefixed with the type name.
func (e *Enum) ConstName(m *enum.Resolved) string {
	if !e.Declare {
		return m.Name
	}
	return e.Name() + inflect.Camelize(m.Name)
}

// FileName returns the output file name for the enum.
func (e *Enum) FileName(suffix string) string {
	return inflect.Underscore(e.Name()) + suffix + ".go"
}

// textsVar returns the identifier of the generated expected-texts list.
func (e *Enum) textsVar() string {
	return inflect.CamelizeDownFirst(inflect.Underscore(e.Name())) + "ScribeTexts"
}
