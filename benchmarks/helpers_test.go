package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/definition"
)

func TestGeneratedConfigsAreValid(t *testing.T) {
	require.NoError(t, GenRingConfig(0).Validate())
	require.NoError(t, GenRingConfig(5).Validate())
	require.NoError(t, GenWideConfig(3).Validate())

	cfg, err := definition.Load(GenDefinitionYAML(4), definition.YAML)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.States.Len())
	assert.Equal(t, fsmx.StateID("s0"), cfg.Initial)
}
