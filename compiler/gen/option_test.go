package gen_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribegen/scribe/compiler/gen"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := gen.NewConfig()
	require.NoError(t, err)
	assert.Equal(t, gen.DefaultSuffix, cfg.Suffix)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, gen.Header, cfg.Header)
	require.Len(t, cfg.Features, 1)
	assert.Equal(t, gen.FeatureTextCodec.Name, cfg.Features[0].Name)
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()
	cfg, err := gen.NewConfig(
		gen.WithTarget("./out"),
		gen.WithPackage("colors"),
		gen.WithSuffix("_enum"),
		gen.WithWorkers(4),
		gen.WithHeader("// Code generated by tooling. DO NOT EDIT."),
		gen.WithFeatures("codec/json", "codec/sql"),
	)
	require.NoError(t, err)
	assert.Equal(t, "./out", cfg.Target)
	assert.Equal(t, "colors", cfg.Package)
	assert.Equal(t, "_enum", cfg.Suffix)
	assert.Equal(t, 4, cfg.Workers)
	require.Len(t, cfg.Features, 2)
	assert.Equal(t, "codec/json", cfg.Features[0].Name)
}

func TestConfigOptionErrors(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		name string
		opt  gen.Option
	}{
		{"empty target", gen.WithTarget("")},
		{"empty package", gen.WithPackage("")},
		{"empty suffix", gen.WithSuffix("")},
		{"zero workers", gen.WithWorkers(0)},
		{"negative workers", gen.WithWorkers(-3)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := gen.NewConfig(tt.opt)
			require.Error(t, err)
			assert.True(t, gen.IsConfigError(err))
			assert.ErrorIs(t, err, gen.ErrMissingConfig)
		})
	}
}

func TestWithFeaturesUnknown(t *testing.T) {
	t.Parallel()
	_, err := gen.NewConfig(gen.WithFeatures("codec/toml"))
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))
	assert.ErrorContains(t, err, "codec/text")
}

func TestWithFeaturesDeduplicates(t *testing.T) {
	t.Parallel()
	cfg, err := gen.NewConfig(gen.WithFeatures("codec/text", "codec/text"))
	require.NoError(t, err)
	assert.Len(t, cfg.Features, 1)
}

func TestApplyAll(t *testing.T) {
	t.Parallel()
	var cfg gen.Config
	err := cfg.ApplyAll(
		gen.WithTarget(""),
		gen.WithPackage("colors"),
		gen.WithWorkers(0),
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, "target directory cannot be empty")
	assert.ErrorContains(t, err, "worker count must be positive")
	assert.Equal(t, "colors", cfg.Package)
}

func TestMustNewConfigPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		gen.MustNewConfig(gen.WithWorkers(-1))
	})
}
