package load

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// Directive prefixes recognized on type and constant declarations.
const (
	typePrefix   = "scribe:enum"
	memberPrefix = "scribe:"
)

// option is one parsed key or key=value pair of a directive.
type option struct {
	key      string
	value    string
	hasValue bool
}

// parseOptions parses a directive option list. Options are separated by
// commas or spaces; values are bare tokens or double-quoted Go strings
// (required when the value contains a comma, space, or quote).
func parseOptions(s string) ([]option, error) {
	var opts []option
	for i := 0; i < len(s); {
		switch s[i] {
		case ' ', '\t', ',':
			i++
			continue
		}
		start := i
		for i < len(s) && !strings.ContainsRune("=, \t", rune(s[i])) {
			i++
		}
		opt := option{key: s[start:i]}
		if i < len(s) && s[i] == '=' {
			i++
			opt.hasValue = true
			if i < len(s) && s[i] == '"' {
				end := i + 1
				for end < len(s) && s[end] != '"' {
					if s[end] == '\\' {
						end++
					}
					end++
				}
				if end >= len(s) {
					return nil, &Error{Message: "unterminated quoted value in directive"}
				}
				v, err := strconv.Unquote(s[i : end+1])
				if err != nil {
					return nil, &Error{Message: "malformed quoted value in directive", Cause: err}
				}
				opt.value = v
				i = end + 1
			} else {
				start = i
				for i < len(s) && !strings.ContainsRune(", \t", rune(s[i])) {
					i++
				}
				opt.value = s[start:i]
			}
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// typeOptions are the recognized options of a //scribe:enum directive.
type typeOptions struct {
	caseSensitive   bool
	caseInsensitive bool
	transform       string
}

func parseTypeDirective(rest string) (typeOptions, error) {
	var to typeOptions
	opts, err := parseOptions(rest)
	if err != nil {
		return to, err
	}
	for _, opt := range opts {
		switch opt.key {
		case "case_sensitive":
			to.caseSensitive = true
		case "case_insensitive":
			to.caseInsensitive = true
		case "transform":
			if !opt.hasValue || opt.value == "" {
				return to, &Error{Message: "transform option requires a value"}
			}
			to.transform = opt.value
		default:
			return to, &Error{Message: "unknown enum option " + strconv.Quote(opt.key)}
		}
	}
	return to, nil
}

// memberOptions are the recognized options of a scribe: constant directive.
type memberOptions struct {
	text            *string
	caseSensitive   bool
	caseInsensitive bool
	other           bool
	ignore          bool
}

func parseMemberDirective(rest string) (memberOptions, error) {
	var mo memberOptions
	opts, err := parseOptions(rest)
	if err != nil {
		return mo, err
	}
	for _, opt := range opts {
		switch opt.key {
		case "text":
			if !opt.hasValue {
				return mo, &Error{Message: "text option requires a value"}
			}
			text := opt.value
			mo.text = &text
		case "case_sensitive":
			mo.caseSensitive = true
		case "case_insensitive":
			mo.caseInsensitive = true
		case "other":
			mo.other = true
		case "ignore":
			mo.ignore = true
		default:
			return mo, &Error{Message: "unknown member option " + strconv.Quote(opt.key)}
		}
	}
	return mo, nil
}

// directive extracts the scribe directive line from a comment group. The
// ast package hides //-directives from CommentGroup.Text, so the raw list
// is searched. Both the //scribe: and the // scribe: spelling are
// recognized.
func directive(cg *ast.CommentGroup, prefix string) (rest string, pos token.Pos, ok bool) {
	if cg == nil {
		return "", token.NoPos, false
	}
	for _, c := range cg.List {
		line := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		rest = line[len(prefix):]
		// scribe:enum must be a whole word, not a prefix of another
		// directive name.
		if prefix == typePrefix && rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return strings.TrimSpace(rest), c.Pos(), true
	}
	return "", token.NoPos, false
}
