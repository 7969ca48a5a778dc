package scribe_test

import (
	"testing"

	"github.com/scribegen/scribe"
	"github.com/scribegen/scribe/schema/enum"
)

func benchMap(b *testing.B) *scribe.Map[airport] {
	b.Helper()
	v, err := enum.Validate(enum.Type("Airport").Values(
		enum.Value("Heathrow").Text("LHR"),
		enum.Value("Gatwick").Text("LGW").CaseInsensitive(),
		enum.Value("Luton").Text("LTN"),
	).Descriptor())
	if err != nil {
		b.Fatal(err)
	}
	m, err := scribe.Compile(v, map[string]airport{
		"Heathrow": heathrow,
		"Gatwick":  gatwick,
		"Luton":    luton,
	})
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkMapScribe(b *testing.B) {
	m := benchMap(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Scribe(gatwick)
	}
}

func BenchmarkMapUnscribe(b *testing.B) {
	m := benchMap(b)
	for _, bc := range []struct {
		name string
		in   string
	}{
		{"sensitive", "LHR"},
		{"insensitive", "lgw"},
		{"miss", "JFK"},
	} {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m.TryUnscribe(bc.in)
			}
		})
	}
}

func BenchmarkCompile(b *testing.B) {
	v, err := enum.Validate(enum.Type("Airport").Values(
		enum.Value("Heathrow").Text("LHR"),
		enum.Value("Gatwick").Text("LGW"),
		enum.Value("Luton").Text("LTN"),
	).Descriptor())
	if err != nil {
		b.Fatal(err)
	}
	bind := map[string]airport{
		"Heathrow": heathrow,
		"Gatwick":  gatwick,
		"Luton":    luton,
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := scribe.Compile(v, bind); err != nil {
			b.Fatal(err)
		}
	}
}
