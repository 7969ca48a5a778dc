package a

//scribe:enum case_insensitive
type Airport int

const (
	Heathrow Airport = iota // scribe:text=LHR
	Gatwick                 // scribe:text=LGW
	Luton                   // scribe:text=LTN
)

//scribe:enum case_sensitive case_insensitive
type Flip int // want `case_sensitive conflicts with case_insensitive`

const FlipOn Flip = 0

//scribe:enum transform=lowercase
type Fruit int

const (
	Apple Fruit = iota
	APPLE // want `share the text "apple"`
)
