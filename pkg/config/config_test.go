package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATASET_PATH", "testdata/governance.csv")

	cfg, err := Load()
	require.NoError(t, err)

	// Check defaults
	assert.Equal(t, "8089", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.Dataset.ReloadSchedule)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 50.0, cfg.RateLimit.RPS)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.Equal(t, 30*time.Second, cfg.Dataset.FetchTimeout)
	assert.False(t, cfg.Dataset.IsRemote())
}

func TestLoadRemoteDataset(t *testing.T) {
	t.Setenv("DATASET_PATH", "https://data.example.org/nifty100/governance.xlsx?rev=7")
	t.Setenv("DATASET_FETCH_TIMEOUT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Dataset.IsRemote())
	assert.Equal(t, 5*time.Second, cfg.Dataset.FetchTimeout)
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("DATASET_PATH", "/data/FinalDataGovernance.xlsx")
	t.Setenv("DATASET_SHEET", "Governance")
	t.Setenv("RELOAD_SCHEDULE", "0 */5 * * * *")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "Governance", cfg.Dataset.Sheet)
	assert.Equal(t, "0 */5 * * * *", cfg.Dataset.ReloadSchedule)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing dataset path",
			env:     map[string]string{"DATASET_PATH": ""},
			wantErr: "DATASET_PATH is required",
		},
		{
			name:    "unsupported extension",
			env:     map[string]string{"DATASET_PATH": "data.parquet"},
			wantErr: ".csv or .xlsx",
		},
		{
			name:    "remote unsupported extension",
			env:     map[string]string{"DATASET_PATH": "https://host/export?format=csv"},
			wantErr: ".csv or .xlsx",
		},
		{
			name:    "zero fetch timeout",
			env:     map[string]string{"DATASET_PATH": "data.csv", "DATASET_FETCH_TIMEOUT": "0"},
			wantErr: "DATASET_FETCH_TIMEOUT",
		},
		{
			name:    "invalid env",
			env:     map[string]string{"DATASET_PATH": "data.csv", "ENV": "invalid"},
			wantErr: "ENV must be one of",
		},
		{
			name:    "zero burst",
			env:     map[string]string{"DATASET_PATH": "data.csv", "RATE_LIMIT_BURST": "0"},
			wantErr: "RATE_LIMIT_BURST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "100")
	assert.Equal(t, 100, getEnvAsInt("TEST_INT", 50))

	t.Setenv("TEST_INT", "abc")
	assert.Equal(t, 50, getEnvAsInt("TEST_INT", 50))
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.5")
	assert.Equal(t, 0.5, getEnvAsFloat("TEST_FLOAT", 1))

	t.Setenv("TEST_FLOAT", "")
	assert.Equal(t, 1.0, getEnvAsFloat("TEST_FLOAT", 1))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "maybe")
	assert.False(t, getEnvAsBool("TEST_BOOL", false))
}
