package scribe_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribegen/scribe"
)

func TestUnknownTextError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := scribe.NewUnknownTextError("Airport", "XXX", []string{"LHR", "LGW", "LTN"})
		assert.Equal(t, `scribe: unknown Airport text "XXX", expected one of LHR, LGW, LTN`, err.Error())
	})

	t.Run("ErrorWithoutExpected", func(t *testing.T) {
		err := scribe.NewUnknownTextError("Airport", "XXX", nil)
		assert.Equal(t, `scribe: unknown Airport text "XXX"`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := scribe.NewUnknownTextError("Airport", "XXX", nil)
		assert.True(t, errors.Is(err, scribe.ErrUnknownText))
	})

	t.Run("IsUnknownText", func(t *testing.T) {
		err := scribe.NewUnknownTextError("Airport", "XXX", nil)
		assert.True(t, scribe.IsUnknownText(err))

		wrapped := fmt.Errorf("decode: %w", err)
		assert.True(t, scribe.IsUnknownText(wrapped))

		assert.True(t, scribe.IsUnknownText(scribe.ErrUnknownText))
		assert.False(t, scribe.IsUnknownText(errors.New("other error")))
		assert.False(t, scribe.IsUnknownText(nil))
	})
}

func TestUnscribableError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := scribe.NewUnscribableError("Airport", 7)
		assert.Equal(t, "scribe: cannot scribe Airport value 7 (ignored or out of set)", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := scribe.NewUnscribableError("Airport", nil)
		assert.True(t, errors.Is(err, scribe.ErrUnscribable))
	})

	t.Run("IsUnscribable", func(t *testing.T) {
		err := scribe.NewUnscribableError("Airport", 7)
		assert.True(t, scribe.IsUnscribable(err))
		assert.True(t, scribe.IsUnscribable(fmt.Errorf("marshal: %w", err)))
		assert.False(t, scribe.IsUnscribable(errors.New("other error")))
		assert.False(t, scribe.IsUnscribable(nil))
	})
}

func TestCompileError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := scribe.NewCompileError("Airport", "Luton", "no value bound for member")
		assert.Equal(t, "scribe: cannot compile Airport member Luton: no value bound for member", err.Error())
	})

	t.Run("ErrorWithoutMember", func(t *testing.T) {
		err := scribe.NewCompileError("Airport", "", "schema has an other member but no WithOther option was given")
		assert.Equal(t, "scribe: cannot compile Airport: schema has an other member but no WithOther option was given", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := scribe.NewCompileError("Airport", "", "boom")
		assert.True(t, errors.Is(err, scribe.ErrCompile))
	})

	t.Run("IsCompileError", func(t *testing.T) {
		err := scribe.NewCompileError("Airport", "", "boom")
		assert.True(t, scribe.IsCompileError(err))
		assert.True(t, scribe.IsCompileError(fmt.Errorf("init: %w", err)))
		assert.False(t, scribe.IsCompileError(errors.New("other error")))
		assert.False(t, scribe.IsCompileError(nil))
	})
}
