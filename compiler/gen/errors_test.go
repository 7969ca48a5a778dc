package gen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribegen/scribe/compiler/gen"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := gen.NewConfigError("Workers", -1, "worker count must be positive")
	assert.EqualError(t, err, `scribe: config error for "Workers" (value: -1): worker count must be positive`)
	assert.ErrorIs(t, err, gen.ErrMissingConfig)
	assert.True(t, gen.IsConfigError(err))
	assert.False(t, gen.IsGenerationError(err))
}

func TestGenerationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")
	err := gen.NewGenerationError("Airport", "airport_scribe.go", "write", cause)
	assert.EqualError(t, err, "scribe: generation error for enum Airport (file: airport_scribe.go): write: disk full")
	assert.ErrorIs(t, err, gen.ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, gen.IsGenerationError(err))
	assert.False(t, gen.IsConfigError(err))
}
