// Package graphql binds scribe enums to gqlgen as enum scalars.
//
// Generated MarshalGQL/UnmarshalGQL methods delegate here, so an enum
// with the codec/gql feature satisfies gqlgen's graphql.Marshaler and
// graphql.Unmarshaler without a models.yml entry per member.
//
// The package also works schema-first: ImportEnums turns the enum
// definitions of a parsed GraphQL schema into scribe descriptors, and
// BindModels records the Go bindings in gqlgen.yml.
package graphql

import (
	"fmt"
	"io"
	"strconv"

	gqlgen "github.com/99designs/gqlgen/graphql"

	"github.com/scribegen/scribe"
)

// Null is written for values without a text form, matching gqlgen's
// convention for unmarshalable leaf values.
const Null = "null"

// MarshalGQL writes the text form of v to w as a GraphQL enum value.
// Values without a text form serialize as null.
func MarshalGQL(w io.Writer, typeName string, v scribe.TryScriber) {
	s, ok := v.TryScribe()
	if !ok {
		io.WriteString(w, Null)
		return
	}
	io.WriteString(w, strconv.Quote(s))
}

// UnmarshalGQL converts a GraphQL input value through the reverse
// conversion. gqlgen hands enum literals over as strings; []byte is
// accepted for raw JSON plumbing.
func UnmarshalGQL[T any](typeName string, reverse scribe.TryUnscriber[T], src any, expected ...string) (T, error) {
	var zero T
	var s string
	switch src := src.(type) {
	case string:
		s = src
	case []byte:
		s = string(src)
	default:
		return zero, fmt.Errorf("scribe: cannot unmarshal %T into %s: %w", src, typeName, scribe.ErrUnknownText)
	}
	v, ok := reverse(s)
	if !ok {
		return zero, scribe.NewUnknownTextError(typeName, s, expected)
	}
	return v, nil
}

// Marshaler wraps v in a gqlgen graphql.Marshaler, for resolvers that
// return enum values without a generated method set.
func Marshaler(typeName string, v scribe.TryScriber) gqlgen.Marshaler {
	return gqlgen.WriterFunc(func(w io.Writer) {
		MarshalGQL(w, typeName, v)
	})
}
