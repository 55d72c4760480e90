package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLevel(t *testing.T) {
	t.Setenv(LevelEnv, "")
	assert.Equal(t, DefaultLevel, ResolveLevel(""))

	t.Setenv(LevelEnv, "debug")
	assert.Equal(t, "debug", ResolveLevel(""))
	assert.Equal(t, "error", ResolveLevel("error"))
}

func TestConfigure(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "INFO"))

	slog.Debug("hidden")
	slog.Info("Retrieved digest", "digest", "sha256:abc")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "digest=sha256:abc")
}

func TestConfigure_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer

	err := Configure(&buf, "verbose")

	assert.EqualError(t, err, "invalid log level 'verbose': use debug, info, warn or error")
}
