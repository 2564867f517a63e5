package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticekit/plantgraph/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 0, cfg.APSP.Workers)
	require.Equal(t, "./output", cfg.Output.Dir)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load("/nonexistent/plantgraph.yaml")
	require.NoError(t, err)
	require.Equal(t, "./output", cfg.Output.Dir)
}
