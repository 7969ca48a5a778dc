package scribe

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/scribegen/scribe/schema/enum"
)

// Map is a compiled runtime conversion table for one enum type. It is
// immutable after Compile and safe for concurrent use without
// synchronization.
//
// A Map covers the same conversion semantics as generated code, for enums
// whose schema is only known at runtime. Prefer scribegen-generated methods
// when the schema is fixed: they convert without a table lookup.
type Map[T comparable] struct {
	typeName string
	forward  enum.ForwardKind
	reverse  enum.ReverseKind

	texts       []string
	toText      map[T]string
	ignored     map[T]struct{}
	sensitive   map[string]T
	insensitive map[string]T // keyed by lower-folded text

	// other constructs the catch-all value from unmatched input; otherText
	// reads the captured text back out of a value outside the table.
	other     func(string) T
	otherText func(T) string
}

// MapOption configures table compilation.
type MapOption[T comparable] func(*Map[T]) error

// WithOther supplies the constructor for the catch-all value. Required
// when the schema has an other member; the function receives the unmatched
// input verbatim.
func WithOther[T comparable](construct func(string) T) MapOption[T] {
	return func(m *Map[T]) error {
		if construct == nil {
			return NewCompileError(m.typeName, "", "WithOther requires a non-nil constructor")
		}
		m.other = construct
		return nil
	}
}

// Compile builds a runtime conversion table from a validated schema. bind
// maps member names to their Go values; every normal member must be bound,
// binding ignored members is optional, and the other member is constructed
// through the WithOther option instead of a binding.
func Compile[T comparable](v *enum.Validated, bind map[string]T, opts ...MapOption[T]) (*Map[T], error) {
	m := &Map[T]{
		typeName:    v.Name(),
		forward:     v.Forward(),
		reverse:     v.Reverse(),
		texts:       v.Texts(),
		toText:      make(map[T]string),
		ignored:     make(map[T]struct{}),
		sensitive:   make(map[string]T),
		insensitive: make(map[string]T),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	if _, ok := v.Other(); ok {
		if m.other == nil {
			return nil, NewCompileError(m.typeName, "", "schema has an other member but no WithOther option was given")
		}
		// The captured text lives in the value itself, so the bound Go
		// type must have a string kind.
		if kind := reflect.TypeFor[T]().Kind(); kind != reflect.String {
			return nil, NewCompileError(m.typeName, "", fmt.Sprintf("other member requires a string-kinded value type, not %s", kind))
		}
		m.otherText = func(v T) string { return reflect.ValueOf(v).String() }
	} else if m.other != nil {
		return nil, NewCompileError(m.typeName, "", "WithOther given but the schema has no other member")
	}

	bound := make(map[T]string, len(bind))
	for _, member := range v.Members() {
		val, ok := bind[member.Name]
		switch member.Role {
		case enum.RoleOther:
			continue
		case enum.RoleIgnored:
			if ok {
				m.ignored[val] = struct{}{}
			}
			continue
		}
		if !ok {
			return nil, NewCompileError(m.typeName, member.Name, "no value bound for member")
		}
		if prev, dup := bound[val]; dup {
			return nil, NewCompileError(m.typeName, member.Name, fmt.Sprintf("value already bound to member %s", prev))
		}
		bound[val] = member.Name
		m.toText[val] = member.Text
		if member.Insensitive {
			m.insensitive[member.Folded] = val
		} else {
			m.sensitive[member.Text] = val
		}
	}
	return m, nil
}

// MustCompile is like Compile but panics on error. Intended for
// package-level table initialization from schemas known to be good.
func MustCompile[T comparable](v *enum.Validated, bind map[string]T, opts ...MapOption[T]) *Map[T] {
	m, err := Compile(v, bind, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// TypeName returns the enum type name the table was compiled for.
func (m *Map[T]) TypeName() string { return m.typeName }

// CanScribe reports whether the total forward operation exists, i.e. the
// schema has no ignored members.
func (m *Map[T]) CanScribe() bool { return m.forward == enum.ForwardTotal }

// CanUnscribe reports whether the total reverse operation exists, i.e. the
// schema has an other member.
func (m *Map[T]) CanUnscribe() bool { return m.reverse == enum.ReverseTotal }

// Texts returns the assigned texts of the normal members in declaration
// order.
func (m *Map[T]) Texts() []string {
	texts := make([]string, len(m.texts))
	copy(texts, m.texts)
	return texts
}

// Scribe returns the text of v. It panics when the schema has ignored
// members (use TryScribe) and when v is outside the declared set: calling
// the total conversion with an invalid value is a programming error.
func (m *Map[T]) Scribe(v T) string {
	if m.forward != enum.ForwardTotal {
		panic(fmt.Sprintf("scribe: Scribe on partial forward %s, use TryScribe", m.typeName))
	}
	s, ok := m.TryScribe(v)
	if !ok {
		panic(fmt.Sprintf("scribe: Scribe on invalid %s value %v", m.typeName, v))
	}
	return s
}

// TryScribe returns the text of v, reporting false for ignored members and
// values outside the declared set. With an other member every remaining
// string-kinded value scribes to its own captured text.
func (m *Map[T]) TryScribe(v T) (string, bool) {
	if s, ok := m.toText[v]; ok {
		return s, true
	}
	if _, ok := m.ignored[v]; ok {
		return "", false
	}
	if m.otherText != nil {
		return m.otherText(v), true
	}
	return "", false
}

// Unscribe returns the value for s, resorting to the other member for
// unmatched input. It panics when the schema has no other member (use
// TryUnscribe).
func (m *Map[T]) Unscribe(s string) T {
	if m.reverse != enum.ReverseTotal {
		panic(fmt.Sprintf("scribe: Unscribe on partial reverse %s, use TryUnscribe", m.typeName))
	}
	v, _ := m.TryUnscribe(s)
	return v
}

// TryUnscribe returns the value matching s. Case-sensitive members match
// first, then case-insensitive members against the lower-folded input,
// then the other member captures s verbatim. Without an other member
// unmatched input reports false.
func (m *Map[T]) TryUnscribe(s string) (T, bool) {
	if v, ok := m.sensitive[s]; ok {
		return v, true
	}
	if len(m.insensitive) > 0 {
		if v, ok := m.insensitive[strings.ToLower(s)]; ok {
			return v, true
		}
	}
	if m.other != nil {
		return m.other(s), true
	}
	var zero T
	return zero, false
}
