package gen

import (
	"strings"
)

var (
	// FeatureTextCodec emits MarshalText/UnmarshalText, which drives
	// encoding/json and yaml out of the box.
	FeatureTextCodec = Feature{
		Name:        "codec/text",
		Stage:       Stable,
		Default:     true,
		Description: "Emits encoding.TextMarshaler/TextUnmarshaler implementations",
	}

	// FeatureJSONCodec emits direct MarshalJSON/UnmarshalJSON with a
	// quoted-string fast path, bypassing the text codec indirection.
	FeatureJSONCodec = Feature{
		Name:        "codec/json",
		Stage:       Stable,
		Default:     false,
		Description: "Emits json.Marshaler/json.Unmarshaler implementations",
	}

	// FeatureSQLCodec emits driver.Valuer/sql.Scanner so enum columns
	// store their text form.
	FeatureSQLCodec = Feature{
		Name:        "codec/sql",
		Stage:       Stable,
		Default:     false,
		Description: "Emits database/sql driver.Valuer and sql.Scanner implementations",
	}

	// FeatureGQLCodec emits MarshalGQL/UnmarshalGQL for gqlgen enum
	// scalars via contrib/graphql.
	FeatureGQLCodec = Feature{
		Name:        "codec/gql",
		Stage:       Experimental,
		Default:     false,
		Description: "Emits gqlgen graphql.Marshaler/Unmarshaler implementations",
	}

	// FeatureMsgpackCodec emits EncodeMsgpack/DecodeMsgpack via
	// contrib/msgpack.
	FeatureMsgpackCodec = Feature{
		Name:        "codec/msgpack",
		Stage:       Experimental,
		Default:     false,
		Description: "Emits msgpack CustomEncoder/CustomDecoder implementations",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureTextCodec,
		FeatureJSONCodec,
		FeatureSQLCodec,
		FeatureGQLCodec,
		FeatureMsgpackCodec,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but breaking changes to their APIs are expected.
	Alpha

	// Beta features are Alpha features that were documented, and no
	// breaking changes are expected for them.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

// A Feature of the scribegen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureNames returns the known feature names in registration order.
func FeatureNames() []string {
	names := make([]string, len(AllFeatures))
	for i, f := range AllFeatures {
		names[i] = f.Name
	}
	return names
}

// featureByName resolves a feature-flag name.
func featureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// defaultFeatures returns the features enabled without explicit
// configuration.
func defaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}

// hasFeature reports whether the named feature is enabled in the config.
func (c *Config) hasFeature(name string) bool {
	for _, f := range c.Features {
		if f.Name == name {
			return true
		}
	}
	return false
}

// codecFeatures reports whether any codec feature is enabled, i.e. the
// generated file needs the expected-texts list.
func (c *Config) codecFeatures() bool {
	for _, f := range c.Features {
		if strings.HasPrefix(f.Name, "codec/") {
			return true
		}
	}
	return false
}
