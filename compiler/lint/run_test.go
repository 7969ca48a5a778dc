package lint

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
)

const twoBadDirectives = `package a

//scribe:enum sponge=1
type Sponge int

const SpongeA Sponge = iota

//scribe:enum shout=1
type Shout int

const ShoutA Shout = iota
`

// Scanning joins the errors of distinct declarations; every one of them
// must surface as its own diagnostic, not just the first.
func TestRunReportsEveryScanError(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "a.go", twoBadDirectives, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{Defs: make(map[*ast.Ident]types.Object)}
	pkg, err := (&types.Config{}).Check("a", fset, []*ast.File{f}, info)
	require.NoError(t, err)

	var got []analysis.Diagnostic
	pass := &analysis.Pass{
		Analyzer:  Analyzer,
		Fset:      fset,
		Files:     []*ast.File{f},
		Pkg:       pkg,
		TypesInfo: info,
		Report:    func(d analysis.Diagnostic) { got = append(got, d) },
	}
	_, err = run(pass)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Contains(t, got[0].Message, `unknown enum option "sponge"`)
	assert.Contains(t, got[1].Message, `unknown enum option "shout"`)
}
