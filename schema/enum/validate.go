package enum

import (
	"strings"
)

// Resolved is a member of a validated enum with its final assigned text
// and matching mode.
type Resolved struct {
	// Name is the member identifier.
	Name string

	// Role is the member's conversion role.
	Role Role

	// Text is the assigned text of a normal member. Other and ignored
	// members have none.
	Text string

	// Folded is the lower-folded Text, populated for case-insensitive
	// members so matchers never fold table texts at match time.
	Folded string

	// Insensitive reports whether the member matches under case folding.
	Insensitive bool

	// Bind is the member's Go value, when one was attached.
	Bind any

	// Comment is the member's doc comment.
	Comment string
}

// Validated is an enum schema that passed Validate. Every consumer of a
// schema (runtime table compilation, code generation, lint) accepts only
// a Validated, so an unchecked Descriptor can never reach a compiler.
type Validated struct {
	name    string
	backing Backing
	comment string
	members []*Resolved
	other   *Resolved
	forward ForwardKind
	reverse ReverseKind
}

// Name returns the enum type name.
func (v *Validated) Name() string { return v.name }

// Backing returns the underlying kind of the enum type.
func (v *Validated) Backing() Backing { return v.backing }

// Comment returns the enum doc comment.
func (v *Validated) Comment() string { return v.comment }

// Members returns the resolved members in declaration order.
func (v *Validated) Members() []*Resolved { return v.members }

// Other returns the catch-all member, if the enum has one.
func (v *Validated) Other() (*Resolved, bool) {
	return v.other, v.other != nil
}

// Texts returns the assigned texts of the normal members in declaration
// order. This is the "expected one of" list used in conversion errors.
func (v *Validated) Texts() []string {
	texts := make([]string, 0, len(v.members))
	for _, m := range v.members {
		if m.Role == RoleNormal {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// Validate checks a descriptor for internal consistency and resolves each
// member's assigned text and matching mode. It reports the first problem
// found, in declaration order, and every returned error matches
// ErrInvalidSchema.
func Validate(d *Descriptor) (*Validated, error) {
	if d.Err != nil {
		return nil, NewMemberError(d.Name, "", "invalid descriptor", d.Err)
	}
	if d.Name == "" {
		return nil, NewMemberError("", "", "enum name must not be empty", nil)
	}
	if len(d.Values) == 0 {
		return nil, NewMemberError(d.Name, "", "enum has no members", nil)
	}
	if d.Transform != "" && !knownTransform(d.Transform) {
		return nil, NewTransformError(d.Name, d.Transform)
	}
	if d.CaseSensitive && d.CaseInsensitive {
		return nil, NewCaseConflictError(d.Name, "")
	}

	v := &Validated{
		name:    d.Name,
		backing: d.Backing,
		comment: d.Comment,
	}
	seen := make(map[string]struct{}, len(d.Values))
	var firstOther, firstIgnored string
	for _, vd := range d.Values {
		if vd.Err != nil {
			return nil, NewMemberError(d.Name, vd.Name, "invalid descriptor", vd.Err)
		}
		if vd.Name == "" {
			return nil, NewMemberError(d.Name, "", "member name must not be empty", nil)
		}
		if _, ok := seen[vd.Name]; ok {
			return nil, NewMemberError(d.Name, vd.Name, "duplicate member name", nil)
		}
		seen[vd.Name] = struct{}{}
		if vd.CaseSensitive && vd.CaseInsensitive {
			return nil, NewCaseConflictError(d.Name, vd.Name)
		}
		if vd.Other && vd.Ignore {
			return nil, NewOtherIgnoreError(d.Name, vd.Name)
		}
		if vd.Other && vd.Text != nil {
			return nil, NewMemberError(d.Name, vd.Name, "other member cannot have an assigned text", nil)
		}
		if vd.Ignore && vd.Text != nil {
			return nil, NewMemberError(d.Name, vd.Name, "ignored member cannot have an assigned text", nil)
		}
		if vd.Other {
			if firstOther != "" {
				return nil, NewDuplicateOtherError(d.Name, firstOther, vd.Name)
			}
			firstOther = vd.Name
			if d.Backing != BackingString {
				return nil, NewOtherShapeError(d.Name, vd.Name, d.Backing)
			}
		}
		if vd.Ignore && firstIgnored == "" {
			firstIgnored = vd.Name
		}
		// A catch-all constructs values from input text, so an ignored
		// member's backing value could materialize from a capture.
		if firstOther != "" && firstIgnored != "" {
			return nil, NewCaptureConflictError(d.Name, firstIgnored)
		}

		m := &Resolved{
			Name:    vd.Name,
			Bind:    vd.Bind,
			Comment: vd.Comment,
		}
		switch {
		case vd.Other:
			m.Role = RoleOther
			v.other = m
		case vd.Ignore:
			m.Role = RoleIgnored
		default:
			m.Role = RoleNormal
			m.Text = resolveText(d, vd)
			m.Insensitive = resolveInsensitive(d, vd)
			if m.Insensitive {
				m.Folded = strings.ToLower(m.Text)
			}
		}
		v.members = append(v.members, m)
	}

	if err := checkCollisions(d.Name, v.members); err != nil {
		return nil, err
	}

	v.forward = ForwardTotal
	for _, m := range v.members {
		if m.Role == RoleIgnored {
			v.forward = ForwardPartial
			break
		}
	}
	v.reverse = ReversePartial
	if v.other != nil {
		v.reverse = ReverseTotal
	}
	return v, nil
}

func resolveText(d *Descriptor, vd *ValueDescriptor) string {
	if vd.Text != nil {
		return *vd.Text
	}
	if d.Transform != "" {
		text, _ := applyTransform(d.Transform, vd.Name)
		return text
	}
	return vd.Name
}

func resolveInsensitive(d *Descriptor, vd *ValueDescriptor) bool {
	switch {
	case vd.CaseInsensitive:
		return true
	case vd.CaseSensitive:
		return false
	default:
		return d.CaseInsensitive
	}
}

// checkCollisions rejects assigned texts that collide under the matching
// rules in effect: exact equality always collides; fold equality collides
// when either member is case-insensitive.
func checkCollisions(typeName string, members []*Resolved) error {
	normal := make([]*Resolved, 0, len(members))
	for _, m := range members {
		if m.Role == RoleNormal {
			normal = append(normal, m)
		}
	}
	for i, m := range normal {
		folded := m.Folded
		if folded == "" {
			folded = strings.ToLower(m.Text)
		}
		for _, prev := range normal[:i] {
			if prev.Text == m.Text {
				return NewDuplicateTextError(typeName, prev.Text, prev.Name, m.Name, false)
			}
			if !prev.Insensitive && !m.Insensitive {
				continue
			}
			prevFolded := prev.Folded
			if prevFolded == "" {
				prevFolded = strings.ToLower(prev.Text)
			}
			if prevFolded == folded {
				return NewDuplicateTextError(typeName, prev.Text, prev.Name, m.Name, true)
			}
		}
	}
	return nil
}
