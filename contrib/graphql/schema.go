package graphql

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-openapi/inflect"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/scribegen/scribe/schema/enum"
)

// ParseSchema parses GraphQL SDL into a validated schema.
func ParseSchema(name, input string) (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, fmt.Errorf("scribe: parse graphql schema %s: %w", name, err)
	}
	return schema, nil
}

// ParseSchemaFile parses a GraphQL SDL file into a validated schema.
func ParseSchemaFile(path string) (*ast.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scribe: read graphql schema: %w", err)
	}
	return ParseSchema(path, string(data))
}

// ImportEnums converts the enum definitions of a GraphQL schema into
// scribe descriptors, ready for schema-mode generation. Each member keeps
// the GraphQL value as its assigned text, under a Go-cased name:
// NORTH_WEST becomes NorthWest with text "NORTH_WEST". When names are
// given, only those enums are imported and a missing name is an error;
// otherwise every non-introspection enum is imported in name order.
func ImportEnums(schema *ast.Schema, names ...string) ([]*enum.Descriptor, error) {
	pick := func(def *ast.Definition) bool {
		return def.Kind == ast.Enum && !def.BuiltIn && !strings.HasPrefix(def.Name, "__")
	}
	var defs []*ast.Definition
	if len(names) > 0 {
		for _, name := range names {
			def, ok := schema.Types[name]
			if !ok || !pick(def) {
				return nil, fmt.Errorf("scribe: enum %s not found in graphql schema", name)
			}
			defs = append(defs, def)
		}
	} else {
		for _, def := range schema.Types {
			if pick(def) {
				defs = append(defs, def)
			}
		}
		slices.SortFunc(defs, func(a, b *ast.Definition) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	descriptors := make([]*enum.Descriptor, 0, len(defs))
	for _, def := range defs {
		tb := enum.Type(def.Name)
		if def.Description != "" {
			tb.Comment(def.Description)
		}
		values := make([]*enum.ValueBuilder, 0, len(def.EnumValues))
		for _, ev := range def.EnumValues {
			vb := enum.Value(goName(ev.Name)).Text(ev.Name)
			if ev.Description != "" {
				vb.Comment(ev.Description)
			}
			values = append(values, vb)
		}
		descriptors = append(descriptors, tb.Values(values...).Descriptor())
	}
	return descriptors, nil
}

// goName converts a SCREAMING_SNAKE GraphQL enum value to a Go member
// name.
func goName(value string) string {
	return inflect.Camelize(strings.ToLower(value))
}
