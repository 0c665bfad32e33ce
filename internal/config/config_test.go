package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout())
	assert.Equal(t, int64(documents.MaxUploadBytes), cfg.Limits.MaxUploadBytes)
	assert.Equal(t, 30, cfg.Limits.RateCapacity)
	assert.Equal(t, 5, cfg.Limits.RateRefillPerSec)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 9090
ai:
  model: gpt-4o
  callTimeoutSeconds: 10
limits:
  maxUploadBytes: 5242880
  rateCapacity: 100
auth:
  apiKeys:
    reviewer: secret-key
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 10*time.Second, cfg.CallTimeout())
	assert.Equal(t, int64(5242880), cfg.Limits.MaxUploadBytes)
	assert.Equal(t, 100, cfg.Limits.RateCapacity)
	assert.Equal(t, "secret-key", cfg.Auth.APIKeys["reviewer"])
}

func TestLoadAPIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := Load(writeConfig(t, "ai:\n  apiKey: sk-from-file\n"))
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.AI.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestTuningOverlay(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
analysis:
  uniformityRatio: 0.4
  noiseVariance: 75
  weights:
    LOW_RESOLUTION: 20
    DOCUMENT_TYPE_MISMATCH: 30
`))
	require.NoError(t, err)

	tuning := cfg.Tuning()
	defaults := documents.DefaultTuning()

	assert.Equal(t, 0.4, tuning.UniformityRatio)
	assert.Equal(t, 75.0, tuning.NoiseVariance)
	assert.Equal(t, defaults.EdgeVariance, tuning.EdgeVariance)
	assert.Equal(t, 20, tuning.Weights.LowResolution)
	assert.Equal(t, 30, tuning.Weights.DocumentTypeMismatch)
	assert.Equal(t, defaults.Weights.AlphaChannel, tuning.Weights.AlphaChannel)
}
