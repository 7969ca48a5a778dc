// Package enum provides fluent builders for defining enum conversion
// schemas.
//
// A schema names an enum type, its members, and the text each member
// converts to and from:
//
//	enum.Type("Airport").
//	    Values(
//	        enum.Value("Heathrow").Text("LHR"),
//	        enum.Value("Gatwick").Text("LGW"),
//	        enum.Value("Luton").Text("LTN"),
//	    ).
//	    Descriptor()
//
// # Texts
//
// A member's text defaults to its name. An explicit text overrides it,
// and an enum-level transform derives texts from names:
//
//	enum.Type("LogLevel").
//	    Transform(enum.TransformLower).
//	    Values(
//	        enum.Value("Debug"),   // "debug"
//	        enum.Value("Warning"), // "warning"
//	    )
//
// # Case sensitivity
//
// Matching is case-sensitive unless a member, or the enum as a whole,
// opts into case-insensitive matching:
//
//	enum.Type("Airport").
//	    CaseInsensitive().
//	    Values(
//	        enum.Value("Heathrow").Text("LHR"),        // matches lhr, Lhr, ...
//	        enum.Value("Luton").Text("LTN").CaseSensitive(), // matches LTN only
//	    )
//
// Case-insensitive members keep their canonical text on the forward path;
// folding applies to matching only.
//
// # Roles
//
// Besides normal members, a schema may declare at most one catch-all
// member, or any number of ignored members:
//
//	enum.Type("Website").
//	    StringBacked().
//	    Values(
//	        enum.Value("Facebook"),
//	        enum.Value("Other").Other(), // captures unmatched input
//	    )
//
// A catch-all requires a string-backed enum: the captured input is stored
// in the value itself. Ignored members make forward conversion partial;
// a catch-all makes reverse conversion total. The two cannot coexist in
// one schema, since a capture could construct an ignored member's value.
//
// # Validation
//
// Descriptors are inert data. Validate checks consistency (duplicate
// texts, conflicting options, catch-all shape) and resolves final texts;
// only a *Validated can be compiled into a runtime table or generated
// code.
package enum
