// Package valid carries well-formed annotated enums for scanner tests.
package valid

// Airport is a London airport.
//
//scribe:enum
type Airport int

const (
	Heathrow Airport = iota // scribe:text=LHR
	Gatwick                 // scribe:text=LGW
	Luton                   // scribe:text=LTN,case_sensitive
)

//scribe:enum case_insensitive transform=snake_case
type LogLevel int

const (
	DebugLevel LogLevel = iota
	WarningLevel
	SecretLevel // scribe:ignore
)

//scribe:enum
type Website string

const (
	Facebook Website = "facebook" // scribe:text="facebook.com"
	Unknown  Website = ""         // scribe:other
)

// NotAnEnum carries no directive and is skipped by the scanner.
type NotAnEnum int

const Untracked NotAnEnum = 0
