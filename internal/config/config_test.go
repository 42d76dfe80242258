package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/tripwise/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENWEATHER_API_KEY", "PORT", "APP_ENV", "API_TOKEN", "CORS_ORIGINS", "GEMINI_MODEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Weather.ForecastHorizonDays)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Weather.ClimateTimeout)
	assert.Equal(t, "https://restcountries.com/v3.1", cfg.Country.BaseURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 20, cfg.Limits.MaxTravelers)
	assert.Equal(t, 365, cfg.Limits.MaxTripDays)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENWEATHER_API_KEY", "w-key")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, "w-key", cfg.Weather.APIKey)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, map[string]bool{"gemini": true, "openweather": true}, cfg.APIStatus())
}

func TestValidate_MissingKeys(t *testing.T) {
	var cfg config.Config
	assert.Equal(t, []string{"GEMINI_API_KEY", "OPENWEATHER_API_KEY"}, cfg.MissingKeys())
	assert.EqualError(t, cfg.Validate(), "missing required environment variables: GEMINI_API_KEY, OPENWEATHER_API_KEY")

	cfg.Gemini.APIKey = "g"
	assert.EqualError(t, cfg.Validate(), "missing required environment variables: OPENWEATHER_API_KEY")
	assert.Equal(t, map[string]bool{"gemini": true, "openweather": false}, cfg.APIStatus())
}
