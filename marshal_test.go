package scribe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribegen/scribe"
	"github.com/scribegen/scribe/schema/enum"
)

func TestMarshalText(t *testing.T) {
	t.Parallel()

	m := airportMap(t)

	data, err := m.MarshalText(gatwick)
	require.NoError(t, err)
	assert.Equal(t, []byte("LGW"), data)

	v, err := m.UnmarshalText([]byte("LTN"))
	require.NoError(t, err)
	assert.Equal(t, luton, v)
}

func TestUnmarshalTextUnknown(t *testing.T) {
	t.Parallel()

	m := airportMap(t)

	_, err := m.UnmarshalText([]byte("XXX"))
	require.Error(t, err)
	assert.True(t, scribe.IsUnknownText(err))

	var uerr *scribe.UnknownTextError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "Airport", uerr.Type)
	assert.Equal(t, "XXX", uerr.Text)
	assert.Equal(t, []string{"LHR", "LGW", "LTN"}, uerr.Expected)
}

func TestMarshalTextIgnored(t *testing.T) {
	t.Parallel()

	spec := airportSpec(t, enum.Value("SecretExtra").Ignore())
	m, err := scribe.Compile(spec, map[string]airport{
		"Heathrow":    heathrow,
		"Gatwick":     gatwick,
		"Luton":       luton,
		"SecretExtra": secretExtra,
	})
	require.NoError(t, err)

	_, err = m.MarshalText(secretExtra)
	require.Error(t, err)
	assert.True(t, scribe.IsUnscribable(err))

	// Non-ignored members marshal normally.
	data, err := m.MarshalText(luton)
	require.NoError(t, err)
	assert.Equal(t, []byte("LTN"), data)
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	m := airportMap(t)

	data, err := m.MarshalJSON(heathrow)
	require.NoError(t, err)
	assert.Equal(t, `"LHR"`, string(data))

	v, err := m.UnmarshalJSON([]byte(`"LGW"`))
	require.NoError(t, err)
	assert.Equal(t, gatwick, v)
}

func TestUnmarshalJSONErrors(t *testing.T) {
	t.Parallel()

	m := airportMap(t)

	t.Run("UnknownText", func(t *testing.T) {
		_, err := m.UnmarshalJSON([]byte(`"XXX"`))
		require.Error(t, err)
		assert.True(t, scribe.IsUnknownText(err))
	})

	t.Run("NotAString", func(t *testing.T) {
		_, err := m.UnmarshalJSON([]byte(`42`))
		require.Error(t, err)
		assert.False(t, scribe.IsUnknownText(err))
	})
}

func TestMarshalJSONOther(t *testing.T) {
	t.Parallel()

	m := websiteMap(t)

	// Captured values marshal to their captured text.
	data, err := m.MarshalJSON(website("owasp.org"))
	require.NoError(t, err)
	assert.Equal(t, `"owasp.org"`, string(data))

	v, err := m.UnmarshalJSON([]byte(`"stackoverflow.com"`))
	require.NoError(t, err)
	assert.Equal(t, website("stackoverflow.com"), v)
}
