package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribegen/scribe/compiler/gen"
)

func TestFeatureNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{
		"codec/text",
		"codec/json",
		"codec/sql",
		"codec/gql",
		"codec/msgpack",
	}, gen.FeatureNames())
}

func TestFeatureStages(t *testing.T) {
	t.Parallel()
	assert.Equal(t, gen.Stable, gen.FeatureTextCodec.Stage)
	assert.Equal(t, gen.Experimental, gen.FeatureGQLCodec.Stage)
	assert.Equal(t, gen.Experimental, gen.FeatureMsgpackCodec.Stage)
}

func TestFeatureDefaults(t *testing.T) {
	t.Parallel()
	for _, f := range gen.AllFeatures {
		assert.Equal(t, f.Name == gen.FeatureTextCodec.Name, f.Default, f.Name)
	}
}
