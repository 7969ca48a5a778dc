// Package invalid carries malformed annotated enums for scanner tests.
package invalid

//scribe:enum sponge=yes
type Bad int

const BadA Bad = 0

//scribe:enum
type Weird float64

const WeirdA Weird = 0

//scribe:enum
type Half int

const HalfA Half = 0 // scribe:text
