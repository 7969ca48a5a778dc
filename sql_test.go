package scribe_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribegen/scribe"
)

func TestMapValue(t *testing.T) {
	t.Parallel()

	m := airportMap(t)

	v, err := m.Value(gatwick)
	require.NoError(t, err)
	assert.Equal(t, "LGW", v)

	_, err = m.Value(airport(42))
	require.Error(t, err)
	assert.True(t, scribe.IsUnscribable(err))
}

func TestMapScan(t *testing.T) {
	t.Parallel()

	m := airportMap(t)

	t.Run("String", func(t *testing.T) {
		v, err := m.Scan("LTN")
		require.NoError(t, err)
		assert.Equal(t, luton, v)
	})

	t.Run("Bytes", func(t *testing.T) {
		v, err := m.Scan([]byte("LHR"))
		require.NoError(t, err)
		assert.Equal(t, heathrow, v)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := m.Scan(nil)
		require.Error(t, err)
		assert.True(t, scribe.IsUnknownText(err))
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		_, err := m.Scan(42)
		require.Error(t, err)
		assert.True(t, scribe.IsUnknownText(err))
	})

	t.Run("UnknownText", func(t *testing.T) {
		_, err := m.Scan("XXX")
		require.Error(t, err)

		var uerr *scribe.UnknownTextError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, []string{"LHR", "LGW", "LTN"}, uerr.Expected)
	})
}

// TestSQLRoundTrip drives the glue through database/sql with a mocked
// driver: Value on the way in, Scan on the way out.
func TestSQLRoundTrip(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := airportMap(t)

	val, err := m.Value(gatwick)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO flights").
		WithArgs("LGW").
		WillReturnResult(sqlmock.NewResult(1, 1))
	_, err = db.Exec("INSERT INTO flights (origin) VALUES (?)", val)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT origin FROM flights").
		WillReturnRows(sqlmock.NewRows([]string{"origin"}).AddRow("LGW"))

	var origin string
	require.NoError(t, db.QueryRow("SELECT origin FROM flights WHERE id = ?", 1).Scan(&origin))

	got, err := m.Scan(origin)
	require.NoError(t, err)
	assert.Equal(t, gatwick, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}
