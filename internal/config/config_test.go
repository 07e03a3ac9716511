package config

import (
	"testing"
	"time"

	"hrdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_FILE", "SAMPLE_SEED", "SAMPLE_SIZE", "HISTOGRAM_BINS", "READ_TIMEOUT", "WRITE_TIMEOUT", "CORS_ALLOWED_ORIGINS", "METRICS_ENABLED", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(42), cfg.Data.SampleSeed)
	assert.Equal(t, 1000, cfg.Data.SampleSize)
	assert.Equal(t, 20, cfg.Charts.HistogramBins)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.Data.File, DefaultDataFileName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/tmp/hr.xlsx")
	t.Setenv("SAMPLE_SEED", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/hr.xlsx", cfg.Data.File)
	assert.Equal(t, int64(7), cfg.Data.SampleSeed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SAMPLE_SIZE", "many"},
		{"SAMPLE_SIZE", "0"},
		{"HISTOGRAM_BINS", "-1"},
		{"READ_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
