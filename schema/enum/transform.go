package enum

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Text transform names accepted by TypeBuilder.Transform and the
// transform directive option.
const (
	TransformLower          = "lowercase"
	TransformUpper          = "UPPERCASE"
	TransformPascal         = "PascalCase"
	TransformCamel          = "camelCase"
	TransformSnake          = "snake_case"
	TransformScreamingSnake = "SCREAMING_SNAKE_CASE"
	TransformKebab          = "kebab-case"
	TransformScreamingKebab = "SCREAMING-KEBAB-CASE"
)

// Transforms returns the known transform names in a stable order.
func Transforms() []string {
	return []string{
		TransformLower,
		TransformUpper,
		TransformPascal,
		TransformCamel,
		TransformSnake,
		TransformScreamingSnake,
		TransformKebab,
		TransformScreamingKebab,
	}
}

func knownTransform(style string) bool {
	switch style {
	case TransformLower, TransformUpper, TransformPascal, TransformCamel,
		TransformSnake, TransformScreamingSnake, TransformKebab, TransformScreamingKebab:
		return true
	default:
		return false
	}
}

// splitWords breaks an identifier into words. A word break occurs at each
// underscore and at each lower-to-upper transition, so runs of uppercase
// letters form a single word: FOO_BAA -> [FOO BAA], FooBaa -> [Foo Baa],
// fooBaa -> [foo Baa].
func splitWords(name string) []string {
	var (
		words     []string
		word      strings.Builder
		prevLower bool
	)
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_':
			flush()
			prevLower = false
		case 'A' <= r && r <= 'Z':
			if prevLower {
				flush()
			}
			word.WriteRune(r)
			prevLower = false
		default:
			word.WriteRune(r)
			prevLower = 'a' <= r && r <= 'z'
		}
	}
	flush()
	return words
}

// applyTransform derives a member's text from its name using the named
// style. The second return is false for unknown style names.
//
// The title caser is created per call: a cases.Caser carries internal
// state and must not be shared between goroutines.
func applyTransform(style, name string) (string, bool) {
	// The plain casing styles fold the name verbatim, underscores and
	// all; only the word-based styles split it.
	switch style {
	case TransformLower:
		return strings.ToLower(name), true
	case TransformUpper:
		return strings.ToUpper(name), true
	}
	words := splitWords(name)
	switch style {
	case TransformPascal:
		title := cases.Title(language.English)
		var b strings.Builder
		for _, w := range words {
			b.WriteString(title.String(w))
		}
		return b.String(), true
	case TransformCamel:
		title := cases.Title(language.English)
		var b strings.Builder
		for i, w := range words {
			if i == 0 {
				b.WriteString(strings.ToLower(w))
				continue
			}
			b.WriteString(title.String(w))
		}
		return b.String(), true
	case TransformSnake:
		return joinCased(words, "_", strings.ToLower), true
	case TransformScreamingSnake:
		return joinCased(words, "_", strings.ToUpper), true
	case TransformKebab:
		return joinCased(words, "-", strings.ToLower), true
	case TransformScreamingKebab:
		return joinCased(words, "-", strings.ToUpper), true
	default:
		return "", false
	}
}

func joinCased(words []string, sep string, casing func(string) string) string {
	cased := make([]string, len(words))
	for i, w := range words {
		cased[i] = casing(w)
	}
	return strings.Join(cased, sep)
}
