// Package lint provides a go/analysis linter that checks scribe enum
// directives before generation runs.
//
// The analyzer rescans each package for //scribe:enum declarations and
// validates the assembled schemas, so malformed directives, duplicate
// texts, and impossible catch-all shapes surface in editors and CI
// instead of at generation time. It plugs into singlechecker, multichecker
// and golangci-lint's plugin mechanism.
package lint

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/scribegen/scribe/compiler/load"
	"github.com/scribegen/scribe/schema/enum"
)

// Analyzer validates scribe enum declarations in the package.
var Analyzer = &analysis.Analyzer{
	Name: "scribelint",
	Doc:  "check scribe enum directives and conversion schemas",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	enums, err := load.ScanPackage(pkg)
	if err != nil {
		// Unroll joined scan errors and report each at its comment. Joined
		// errors fan out before matching, or errors.As would stop at the
		// first leaf of the join.
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
				continue
			}
			var lerr *load.Error
			if errors.As(err, &lerr) {
				msg := lerr.Message
				if lerr.Cause != nil {
					msg += ": " + lerr.Cause.Error()
				}
				pass.Report(analysis.Diagnostic{Pos: lerr.Pos, Message: msg})
			}
		}
	}

	for _, e := range enums {
		if _, err := enum.Validate(e.Descriptor); err != nil {
			pos := e.Pos
			if p, ok := e.MemberPos[offendingMember(err)]; ok {
				pos = p
			}
			pass.Report(analysis.Diagnostic{Pos: pos, Message: err.Error()})
		}
	}
	return nil, nil
}

// offendingMember extracts the member a validation error points at, so
// the diagnostic lands on the constant instead of the type declaration.
func offendingMember(err error) string {
	var (
		member    *enum.MemberError
		conflict  *enum.CaseConflictError
		ignore    *enum.OtherIgnoreError
		dupOther  *enum.DuplicateOtherError
		shape     *enum.OtherShapeError
		capture   *enum.CaptureConflictError
		duplicate *enum.DuplicateTextError
	)
	switch {
	case errors.As(err, &member):
		return member.Member
	case errors.As(err, &conflict):
		return conflict.Member
	case errors.As(err, &ignore):
		return ignore.Member
	case errors.As(err, &dupOther):
		return dupOther.Second
	case errors.As(err, &shape):
		return shape.Member
	case errors.As(err, &capture):
		return capture.Member
	case errors.As(err, &duplicate):
		return duplicate.Second
	}
	return ""
}
