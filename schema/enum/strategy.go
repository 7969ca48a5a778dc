package enum

// ForwardKind classifies value-to-text conversion for a validated enum.
type ForwardKind int

const (
	// ForwardTotal: every declared member has a text, so a plain Scribe
	// operation can exist. Selected when the enum has no ignored members.
	ForwardTotal ForwardKind = iota

	// ForwardPartial: at least one member is ignored and has no text, so
	// only TryScribe can exist.
	ForwardPartial
)

// String returns the kind name.
func (k ForwardKind) String() string {
	if k == ForwardTotal {
		return "total"
	}
	return "partial"
}

// ReverseKind classifies text-to-value conversion for a validated enum.
type ReverseKind int

const (
	// ReverseTotal: an other member captures unmatched input, so a plain
	// Unscribe operation can exist.
	ReverseTotal ReverseKind = iota

	// ReversePartial: no other member, so only TryUnscribe can exist.
	ReversePartial
)

// String returns the kind name.
func (k ReverseKind) String() string {
	if k == ReverseTotal {
		return "total"
	}
	return "partial"
}

// Forward returns the forward-conversion kind selected for this enum.
func (v *Validated) Forward() ForwardKind { return v.forward }

// Reverse returns the reverse-conversion kind selected for this enum.
func (v *Validated) Reverse() ReverseKind { return v.reverse }

// CanScribe reports whether the total forward operation exists.
func (v *Validated) CanScribe() bool { return v.forward == ForwardTotal }

// CanUnscribe reports whether the total reverse operation exists.
func (v *Validated) CanUnscribe() bool { return v.reverse == ReverseTotal }
