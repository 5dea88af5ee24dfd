package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_MetricsEnabledUsesIndependentRegistry(t *testing.T) {
	t.Parallel()

	cfg := Config{ServiceName: "plexus-test", LogLevel: slog.LevelInfo, MetricsEnabled: true}

	first, err := Init(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, first.Registry)

	// A second Init call with metrics enabled must not panic registering
	// the same collectors against a shared default registry.
	second, err := Init(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, second.Registry)

	assert.NotSame(t, first.Registry, second.Registry)

	require.NoError(t, first.Shutdown(context.Background()))
	require.NoError(t, second.Shutdown(context.Background()))
}

func TestInit_MetricsDisabledHasNoRegistry(t *testing.T) {
	t.Parallel()

	cfg := Config{ServiceName: "plexus-test", LogLevel: slog.LevelInfo, MetricsEnabled: false}

	providers, err := Init(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Nil(t, providers.Registry)

	require.NoError(t, providers.Shutdown(context.Background()))
}
