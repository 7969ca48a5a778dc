package enum

// Backing is the underlying kind of an enum type. Conversion tables can be
// built for any comparable Go type, but generated declarations and the
// other role depend on the backing kind.
type Backing int

const (
	// BackingInt declares the enum over an integer underlying type.
	BackingInt Backing = iota

	// BackingString declares the enum over a string underlying type.
	// Required for enums with an other member, since the captured input
	// text is stored in the value itself.
	BackingString
)

// String returns the Go-facing name of the backing kind.
func (b Backing) String() string {
	switch b {
	case BackingInt:
		return "int"
	case BackingString:
		return "string"
	default:
		return "invalid"
	}
}

// Role describes how a member participates in conversion.
type Role int

const (
	// RoleNormal members convert to and from their assigned text.
	RoleNormal Role = iota

	// RoleOther members capture any input text that matches no normal
	// member, and convert back to the captured text verbatim.
	RoleOther

	// RoleIgnored members take no part in conversion in either direction.
	RoleIgnored
)

// String returns the role name as used in directives.
func (r Role) String() string {
	switch r {
	case RoleNormal:
		return "normal"
	case RoleOther:
		return "other"
	case RoleIgnored:
		return "ignore"
	default:
		return "invalid"
	}
}

// Descriptor is the schema of a single enum type. Descriptors are assembled
// by the builders in this package, by compiler/load from annotated Go
// source, or by any other frontend, and are inert until passed through
// Validate.
type Descriptor struct {
	// Name is the enum type name.
	Name string `json:"name,omitempty"`

	// Backing is the underlying kind of the enum type.
	Backing Backing `json:"backing,omitempty"`

	// CaseSensitive and CaseInsensitive set the default sensitivity for
	// members that do not choose their own. Setting both is a validation
	// error. With neither set, members default to case-sensitive.
	CaseSensitive   bool `json:"case_sensitive,omitempty"`
	CaseInsensitive bool `json:"case_insensitive,omitempty"`

	// Transform names the text transform applied to member names that
	// carry no explicit text. Empty means the name is used verbatim.
	Transform string `json:"transform,omitempty"`

	// Comment is attached to the generated type declaration.
	Comment string `json:"comment,omitempty"`

	// Values are the members, in declaration order.
	Values []*ValueDescriptor `json:"values,omitempty"`

	// Err holds an error recorded by a builder. It is reported by
	// Validate before any other check.
	Err error `json:"-"`
}

// ValueDescriptor is the schema of a single enum member.
type ValueDescriptor struct {
	// Name is the member identifier. In scan mode it is the Go constant
	// name; in schema mode it derives the generated constant name.
	Name string `json:"name,omitempty"`

	// Text is the explicit assigned text. Nil derives the text from Name
	// via the enum transform.
	Text *string `json:"text,omitempty"`

	// CaseSensitive and CaseInsensitive override the enum default for
	// this member. Setting both is a validation error.
	CaseSensitive   bool `json:"case_sensitive,omitempty"`
	CaseInsensitive bool `json:"case_insensitive,omitempty"`

	// Other marks the member as the catch-all for reverse conversion.
	Other bool `json:"other,omitempty"`

	// Ignore excludes the member from conversion in both directions.
	Ignore bool `json:"ignore,omitempty"`

	// Comment is attached to the generated constant.
	Comment string `json:"comment,omitempty"`

	// Bind is the Go value of the member, used only when compiling a
	// runtime table. Code generation ignores it.
	Bind any `json:"-"`

	// Err holds an error recorded by a builder.
	Err error `json:"-"`
}

// TypeBuilder assembles an enum Descriptor.
type TypeBuilder struct {
	desc *Descriptor
}

// Type begins a descriptor for the named enum. The backing defaults to
// BackingInt; members default to case-sensitive matching.
func Type(name string) *TypeBuilder {
	return &TypeBuilder{desc: &Descriptor{Name: name}}
}

// StringBacked declares the enum over a string underlying type.
func (b *TypeBuilder) StringBacked() *TypeBuilder {
	b.desc.Backing = BackingString
	return b
}

// CaseSensitive makes case-sensitive matching the default for members
// without their own sensitivity.
func (b *TypeBuilder) CaseSensitive() *TypeBuilder {
	b.desc.CaseSensitive = true
	return b
}

// CaseInsensitive makes case-insensitive matching the default for members
// without their own sensitivity.
func (b *TypeBuilder) CaseInsensitive() *TypeBuilder {
	b.desc.CaseInsensitive = true
	return b
}

// Transform applies the named text transform to members without explicit
// text. See Transforms for the known names.
func (b *TypeBuilder) Transform(style string) *TypeBuilder {
	b.desc.Transform = style
	return b
}

// Comment sets the doc comment of the generated type declaration.
func (b *TypeBuilder) Comment(c string) *TypeBuilder {
	b.desc.Comment = c
	return b
}

// Values appends members in declaration order.
func (b *TypeBuilder) Values(vs ...*ValueBuilder) *TypeBuilder {
	for _, v := range vs {
		b.desc.Values = append(b.desc.Values, v.Descriptor())
	}
	return b
}

// Descriptor returns the assembled descriptor.
func (b *TypeBuilder) Descriptor() *Descriptor {
	return b.desc
}

// ValueBuilder assembles a member ValueDescriptor.
type ValueBuilder struct {
	desc *ValueDescriptor
}

// Value begins a member descriptor with the given identifier.
func Value(name string) *ValueBuilder {
	return &ValueBuilder{desc: &ValueDescriptor{Name: name}}
}

// Text assigns the member's text explicitly, bypassing the enum transform.
func (b *ValueBuilder) Text(s string) *ValueBuilder {
	b.desc.Text = &s
	return b
}

// CaseSensitive makes this member match its text exactly.
func (b *ValueBuilder) CaseSensitive() *ValueBuilder {
	b.desc.CaseSensitive = true
	return b
}

// CaseInsensitive makes this member match its text under case folding.
func (b *ValueBuilder) CaseInsensitive() *ValueBuilder {
	b.desc.CaseInsensitive = true
	return b
}

// Other marks this member as the catch-all for unmatched input text.
func (b *ValueBuilder) Other() *ValueBuilder {
	b.desc.Other = true
	return b
}

// Ignore excludes this member from conversion in both directions.
func (b *ValueBuilder) Ignore() *ValueBuilder {
	b.desc.Ignore = true
	return b
}

// Comment sets the doc comment of the generated constant.
func (b *ValueBuilder) Comment(c string) *ValueBuilder {
	b.desc.Comment = c
	return b
}

// Bind attaches the member's Go value for runtime table compilation.
func (b *ValueBuilder) Bind(v any) *ValueBuilder {
	b.desc.Bind = v
	return b
}

// Descriptor returns the assembled member descriptor.
func (b *ValueBuilder) Descriptor() *ValueDescriptor {
	return b.desc
}
