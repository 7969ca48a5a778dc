package load

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/scribegen/scribe/schema/enum"
)

// ScanPackage scans one loaded package for //scribe:enum declarations and
// assembles their conversion schemas. The package must carry syntax and
// type information. Scan errors for distinct declarations are collected
// and joined; every one of them is a *Error pointing at the offending
// comment or declaration.
func ScanPackage(pkg *packages.Package) ([]*Enum, error) {
	s := scanner{pkg: pkg}
	s.scanTypes()
	s.scanConsts()
	return s.enums, errors.Join(s.errs...)
}

type scanner struct {
	pkg   *packages.Package
	enums []*Enum
	named []types.Type // parallel to enums
	errs  []error
}

func (s *scanner) errorf(pos token.Pos, msg string, cause error) {
	s.errs = append(s.errs, &Error{
		Position: position(s.pkg.Fset, pos),
		Message:  msg,
		Cause:    cause,
		Pos:      pos,
	})
}

func (s *scanner) scanTypes() {
	for _, f := range s.pkg.Syntax {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				rest, pos, ok := directive(doc, typePrefix)
				if !ok {
					continue
				}
				s.addType(ts, rest, pos)
			}
		}
	}
}

func (s *scanner) addType(ts *ast.TypeSpec, rest string, pos token.Pos) {
	name := ts.Name.Name
	obj, ok := s.pkg.TypesInfo.Defs[ts.Name]
	if !ok {
		s.errorf(pos, "no type information for "+name, nil)
		return
	}
	b, ok := backing(obj.Type())
	if !ok {
		s.errorf(pos, name+" must have an integer or string underlying type", nil)
		return
	}
	to, err := parseTypeDirective(rest)
	if err != nil {
		s.errorf(pos, "invalid //scribe:enum directive on "+name, err)
		return
	}
	s.enums = append(s.enums, &Enum{
		Name:     name,
		Package:  s.pkg.Name,
		PkgPath:  s.pkg.PkgPath,
		Dir:      dirOf(s.pkg.Fset, ts.Pos()),
		Position: position(s.pkg.Fset, ts.Pos()),
		Pos:      ts.Pos(),
		Descriptor: &enum.Descriptor{
			Name:            name,
			Backing:         b,
			CaseSensitive:   to.caseSensitive,
			CaseInsensitive: to.caseInsensitive,
			Transform:       to.transform,
		},
		MemberPos: make(map[string]token.Pos),
	})
	s.named = append(s.named, obj.Type())
}

func (s *scanner) scanConsts() {
	for _, f := range s.pkg.Syntax {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				s.addConsts(vs)
			}
		}
	}
}

func (s *scanner) addConsts(vs *ast.ValueSpec) {
	for _, ident := range vs.Names {
		if ident.Name == "_" {
			continue
		}
		obj, ok := s.pkg.TypesInfo.Defs[ident]
		if !ok {
			continue
		}
		e := s.enumOf(obj.Type())
		if e == nil {
			continue
		}
		vd := &enum.ValueDescriptor{Name: ident.Name}
		if rest, pos, ok := directive(vs.Comment, memberPrefix); ok {
			if len(vs.Names) > 1 {
				s.errorf(pos, "directive on a multi-name constant spec is ambiguous", nil)
				return
			}
			mo, err := parseMemberDirective(rest)
			if err != nil {
				s.errorf(pos, "invalid scribe directive on "+ident.Name, err)
				return
			}
			vd.Text = mo.text
			vd.CaseSensitive = mo.caseSensitive
			vd.CaseInsensitive = mo.caseInsensitive
			vd.Other = mo.other
			vd.Ignore = mo.ignore
		}
		e.Descriptor.Values = append(e.Descriptor.Values, vd)
		e.MemberPos[ident.Name] = ident.Pos()
	}
}

func (s *scanner) enumOf(t types.Type) *Enum {
	for i, named := range s.named {
		if types.Identical(t, named) {
			return s.enums[i]
		}
	}
	return nil
}
