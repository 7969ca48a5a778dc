package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribegen/scribe/schema/enum"
)

// Word splitting breaks at underscores and lower-to-upper transitions, so
// FOO_BAA, FooBaa and fooBaa all normalize to the same two words.
func TestTransformStyles(t *testing.T) {
	t.Parallel()

	inputs := []string{"FOO_BAA", "FooBaa", "fooBaa"}
	tests := []struct {
		style string
		want  string
	}{
		{enum.TransformPascal, "FooBaa"},
		{enum.TransformCamel, "fooBaa"},
		{enum.TransformSnake, "foo_baa"},
		{enum.TransformScreamingSnake, "FOO_BAA"},
		{enum.TransformKebab, "foo-baa"},
		{enum.TransformScreamingKebab, "FOO-BAA"},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			for _, in := range inputs {
				d := enum.Type("T").Transform(tt.style).Values(enum.Value(in)).Descriptor()
				v, err := enum.Validate(d)
				require.NoError(t, err)
				assert.Equal(t, tt.want, v.Members()[0].Text, "input %q", in)
			}
		})
	}
}

// The plain casing styles fold the name verbatim without word splitting,
// so underscores survive.
func TestTransformVerbatimFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		name  string
		want  string
	}{
		{enum.TransformLower, "FOO_BAA", "foo_baa"},
		{enum.TransformLower, "FooBaa", "foobaa"},
		{enum.TransformLower, "fooBaa", "foobaa"},
		{enum.TransformUpper, "FOO_BAA", "FOO_BAA"},
		{enum.TransformUpper, "FooBaa", "FOOBAA"},
		{enum.TransformUpper, "fooBaa", "FOOBAA"},
	}
	for _, tt := range tests {
		t.Run(tt.style+"/"+tt.name, func(t *testing.T) {
			d := enum.Type("T").Transform(tt.style).Values(enum.Value(tt.name)).Descriptor()
			v, err := enum.Validate(d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Members()[0].Text)
		})
	}
}

func TestTransformSingleWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		want  string
	}{
		{enum.TransformLower, "debug"},
		{enum.TransformUpper, "DEBUG"},
		{enum.TransformPascal, "Debug"},
		{enum.TransformCamel, "debug"},
		{enum.TransformSnake, "debug"},
		{enum.TransformScreamingSnake, "DEBUG"},
		{enum.TransformKebab, "debug"},
		{enum.TransformScreamingKebab, "DEBUG"},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			d := enum.Type("LogLevel").Transform(tt.style).Values(enum.Value("Debug")).Descriptor()
			v, err := enum.Validate(d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Members()[0].Text)
		})
	}
}

// Runs of uppercase letters form a single word; breaks happen only at
// underscores and lower-to-upper transitions.
func TestTransformUppercaseRuns(t *testing.T) {
	t.Parallel()

	d := enum.Type("T").Transform(enum.TransformSnake).Values(
		enum.Value("CratesDotIo"),
		enum.Value("HTTPS"),
	).Descriptor()
	v, err := enum.Validate(d)
	require.NoError(t, err)
	assert.Equal(t, "crates_dot_io", v.Members()[0].Text)
	assert.Equal(t, "https", v.Members()[1].Text)
}

func TestTransformsList(t *testing.T) {
	t.Parallel()

	names := enum.Transforms()
	require.Len(t, names, 8)
	assert.Contains(t, names, enum.TransformSnake)
	assert.Contains(t, names, enum.TransformScreamingKebab)
}

func TestExplicitTextBypassesTransform(t *testing.T) {
	t.Parallel()

	d := enum.Type("T").Transform(enum.TransformLower).Values(
		enum.Value("Heathrow").Text("LHR"),
		enum.Value("Gatwick"),
	).Descriptor()
	v, err := enum.Validate(d)
	require.NoError(t, err)
	assert.Equal(t, "LHR", v.Members()[0].Text)
	assert.Equal(t, "gatwick", v.Members()[1].Text)
}
