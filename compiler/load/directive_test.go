package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	t.Run("Bare", func(t *testing.T) {
		opts, err := parseOptions("other")
		require.NoError(t, err)
		require.Len(t, opts, 1)
		assert.Equal(t, "other", opts[0].key)
		assert.False(t, opts[0].hasValue)
	})

	t.Run("KeyValue", func(t *testing.T) {
		opts, err := parseOptions("text=LHR")
		require.NoError(t, err)
		require.Len(t, opts, 1)
		assert.Equal(t, "text", opts[0].key)
		assert.Equal(t, "LHR", opts[0].value)
		assert.True(t, opts[0].hasValue)
	})

	t.Run("CommaSeparated", func(t *testing.T) {
		opts, err := parseOptions("text=LTN,case_sensitive")
		require.NoError(t, err)
		require.Len(t, opts, 2)
		assert.Equal(t, "case_sensitive", opts[1].key)
	})

	t.Run("SpaceSeparated", func(t *testing.T) {
		opts, err := parseOptions("case_insensitive transform=snake_case")
		require.NoError(t, err)
		require.Len(t, opts, 2)
		assert.Equal(t, "snake_case", opts[1].value)
	})

	t.Run("QuotedValue", func(t *testing.T) {
		opts, err := parseOptions(`text="two words",case_insensitive`)
		require.NoError(t, err)
		require.Len(t, opts, 2)
		assert.Equal(t, "two words", opts[0].value)
	})

	t.Run("QuotedEscapes", func(t *testing.T) {
		opts, err := parseOptions(`text="say \"hi\", twice"`)
		require.NoError(t, err)
		require.Len(t, opts, 1)
		assert.Equal(t, `say "hi", twice`, opts[0].value)
	})

	t.Run("UnterminatedQuote", func(t *testing.T) {
		_, err := parseOptions(`text="oops`)
		require.Error(t, err)
		assert.ErrorContains(t, err, "unterminated")
	})

	t.Run("Empty", func(t *testing.T) {
		opts, err := parseOptions("")
		require.NoError(t, err)
		assert.Empty(t, opts)
	})
}

func TestParseTypeDirective(t *testing.T) {
	t.Parallel()

	t.Run("Options", func(t *testing.T) {
		to, err := parseTypeDirective("case_insensitive transform=kebab-case")
		require.NoError(t, err)
		assert.True(t, to.caseInsensitive)
		assert.False(t, to.caseSensitive)
		assert.Equal(t, "kebab-case", to.transform)
	})

	t.Run("UnknownOption", func(t *testing.T) {
		_, err := parseTypeDirective("sponge=yes")
		require.Error(t, err)
		assert.ErrorContains(t, err, `unknown enum option "sponge"`)
	})

	t.Run("TransformWithoutValue", func(t *testing.T) {
		_, err := parseTypeDirective("transform")
		require.Error(t, err)
	})
}

func TestParseMemberDirective(t *testing.T) {
	t.Parallel()

	t.Run("Text", func(t *testing.T) {
		mo, err := parseMemberDirective("text=LGW")
		require.NoError(t, err)
		require.NotNil(t, mo.text)
		assert.Equal(t, "LGW", *mo.text)
	})

	t.Run("Flags", func(t *testing.T) {
		mo, err := parseMemberDirective("other")
		require.NoError(t, err)
		assert.True(t, mo.other)

		mo, err = parseMemberDirective("ignore")
		require.NoError(t, err)
		assert.True(t, mo.ignore)
	})

	t.Run("TextWithoutValue", func(t *testing.T) {
		_, err := parseMemberDirective("text")
		require.Error(t, err)
		assert.ErrorContains(t, err, "text option requires a value")
	})

	t.Run("UnknownOption", func(t *testing.T) {
		_, err := parseMemberDirective("shout")
		require.Error(t, err)
		assert.ErrorContains(t, err, `unknown member option "shout"`)
	})
}
