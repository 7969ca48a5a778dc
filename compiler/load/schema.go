// Package load scans Go packages for enum declarations annotated with
// scribe directives and turns them into conversion schemas.
//
// A type opts in with a //scribe:enum directive in its doc comment;
// its constants carry per-member options in trailing line comments:
//
//	//scribe:enum case_insensitive
//	type Airport int
//
//	const (
//		Heathrow Airport = iota // scribe:text=LHR
//		Gatwick                 // scribe:text=LGW
//		Luton                   // scribe:text=LTN,case_sensitive
//	)
//
// The scanned model is serializable, so a generator process can hand it
// off without re-typechecking the package.
package load

import (
	"encoding/json"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strconv"

	"golang.org/x/tools/go/packages"

	"github.com/scribegen/scribe/schema/enum"
)

// An Enum is one annotated enum type scanned from a compiled package.
type Enum struct {
	// Name is the enum type name.
	Name string `json:"name,omitempty"`

	// Package is the name of the defining package.
	Package string `json:"package,omitempty"`

	// PkgPath is the import path of the defining package.
	PkgPath string `json:"pkg_path,omitempty"`

	// Dir is the directory of the defining file. Generated output for the
	// enum is written next to it.
	Dir string `json:"dir,omitempty"`

	// Position is the file:line of the type declaration.
	Position string `json:"position,omitempty"`

	// Descriptor is the conversion schema assembled from the directives.
	// It has not been validated yet.
	Descriptor *enum.Descriptor `json:"descriptor,omitempty"`

	// Pos and MemberPos locate the declaration and its members in the
	// fileset of the load, for tools that report diagnostics.
	Pos       token.Pos            `json:"-"`
	MemberPos map[string]token.Pos `json:"-"`
}

// Config is the configuration of a package scan.
type Config struct {
	// Types restricts the scan to the named enum types. Empty means all
	// annotated types.
	Types []string

	// BuildFlags are passed through to the build system when loading
	// packages.
	BuildFlags []string
}

// Load loads the packages matching the given patterns and scans them for
// annotated enums. Patterns follow the go/packages convention ("./...",
// import paths). Enums are returned in declaration order per package.
func (c *Config) Load(patterns ...string) ([]*Enum, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		BuildFlags: c.BuildFlags,
	}, patterns...)
	if err != nil {
		return nil, &Error{Message: "load packages", Cause: err}
	}
	var enums []*Enum
	for _, pkg := range pkgs {
		for _, perr := range pkg.Errors {
			return nil, &Error{Position: perr.Pos, Message: perr.Msg}
		}
		scanned, err := ScanPackage(pkg)
		if err != nil {
			return nil, err
		}
		enums = append(enums, scanned...)
	}
	if len(c.Types) > 0 {
		enums = slices.DeleteFunc(enums, func(e *Enum) bool {
			return !slices.Contains(c.Types, e.Name)
		})
		for _, name := range c.Types {
			if !slices.ContainsFunc(enums, func(e *Enum) bool { return e.Name == name }) {
				return nil, &Error{Message: "no annotated type named " + name}
			}
		}
	}
	return enums, nil
}

// backing maps the underlying basic type of an annotated declaration to a
// backing kind. Annotated types must be integer- or string-kinded.
func backing(t types.Type) (enum.Backing, bool) {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0, false
	}
	switch {
	case basic.Info()&types.IsInteger != 0:
		return enum.BackingInt, true
	case basic.Info()&types.IsString != 0:
		return enum.BackingString, true
	default:
		return 0, false
	}
}

func position(fset *token.FileSet, pos token.Pos) string {
	p := fset.Position(pos)
	return p.Filename + ":" + strconv.Itoa(p.Line)
}

func dirOf(fset *token.FileSet, pos token.Pos) string {
	return filepath.Dir(fset.Position(pos).Filename)
}

// MarshalSchema encodes scanned enums for hand-off between processes.
func MarshalSchema(enums []*Enum) ([]byte, error) {
	return json.MarshalIndent(enums, "", "  ")
}

// UnmarshalSchema decodes enums encoded with MarshalSchema.
func UnmarshalSchema(data []byte) ([]*Enum, error) {
	var enums []*Enum
	if err := json.Unmarshal(data, &enums); err != nil {
		return nil, &Error{Message: "unmarshal schema", Cause: err}
	}
	return enums, nil
}
