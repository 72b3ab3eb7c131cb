package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "herbwise")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 12*time.Second, cfg.BatchDelay)
	assert.Equal(t, 128, cfg.AnalysisCacheSize)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, "remedy-images", cfg.S3.Bucket)
}

func TestLoadMissingAPIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadMissingDBFields(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_NAME", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestLoadBatchDelayOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("IMAGE_BATCH_DELAY_SECONDS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.BatchDelay)
}

func TestDSN(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t,
		"postgres://app:pw@localhost:5432/herbwise?sslmode=disable&search_path=public",
		cfg.DSN())
}
