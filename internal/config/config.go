// Package config loads the process configuration once at startup. The
// resulting Config is a plain value handed to every constructor; nothing reads
// configuration from the environment after Load returns.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// Config is the full application configuration.
type Config struct {
	AppEnv    string    `mapstructure:"app_env"`
	Server    Server    `mapstructure:"server"`
	Weather   Weather   `mapstructure:"weather"`
	Country   Country   `mapstructure:"country"`
	Gemini    Gemini    `mapstructure:"gemini"`
	Advice    Advice    `mapstructure:"advice"`
	Limits    Limits    `mapstructure:"limits"`
	Telemetry Telemetry `mapstructure:"telemetry"`
}

type Server struct {
	Port               string        `mapstructure:"port"`
	APIToken           string        `mapstructure:"api_token"`
	CORSOrigins        []string      `mapstructure:"cors_origins"`
	RateLimitPerMinute int           `mapstructure:"rate_limit_per_minute"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

// Weather configures the geocoding, forecast and climate-normal upstreams.
type Weather struct {
	APIKey              string        `mapstructure:"api_key"`
	GeocodeURL          string        `mapstructure:"geocode_url"`
	ForecastURL         string        `mapstructure:"forecast_url"`
	ClimateURL          string        `mapstructure:"climate_url"`
	ClimateModels       string        `mapstructure:"climate_models"`
	ForecastHorizonDays int           `mapstructure:"forecast_horizon_days"`
	Timeout             time.Duration `mapstructure:"timeout"`
	ClimateTimeout      time.Duration `mapstructure:"climate_timeout"`
}

type Country struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Gemini struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Advice holds the reference URLs used for the power adapter blurb.
type Advice struct {
	AdapterBaseURL     string `mapstructure:"adapter_base_url"`
	AdapterFallbackURL string `mapstructure:"adapter_fallback_url"`
}

type Limits struct {
	MaxTravelers int `mapstructure:"max_travelers"`
	MaxTripDays  int `mapstructure:"max_trip_days"`
}

type Telemetry struct {
	ServiceName string `mapstructure:"service_name"`
	Stdout      bool   `mapstructure:"stdout"`
}

// envAliases maps config keys to the conventional variable names used in
// deployment manifests and .env files.
var envAliases = map[string]string{
	"app_env":                      "APP_ENV",
	"server.port":                  "PORT",
	"server.api_token":             "API_TOKEN",
	"server.cors_origins":          "CORS_ORIGINS",
	"server.rate_limit_per_minute": "RATE_LIMIT_PER_MINUTE",
	"weather.api_key":              "OPENWEATHER_API_KEY",
	"gemini.api_key":               "GEMINI_API_KEY",
	"gemini.model":                 "GEMINI_MODEL",
	"telemetry.stdout":             "TRACE_STDOUT",
}

// Load reads the embedded defaults, merges an optional config.yml found on
// disk, then applies environment overrides.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
		return Config{}, fmt.Errorf("reading embedded config: %w", err)
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/etc/tripwise")
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("merging config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "" || strings.EqualFold(c.AppEnv, "development")
}

// MissingKeys lists the environment variables for required API keys that are
// not set.
func (c Config) MissingKeys() []string {
	var missing []string
	if c.Gemini.APIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.Weather.APIKey == "" {
		missing = append(missing, "OPENWEATHER_API_KEY")
	}
	return missing
}

// Validate returns an error naming every missing API key.
func (c Config) Validate() error {
	if missing := c.MissingKeys(); len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// APIStatus reports which upstream credentials are configured.
func (c Config) APIStatus() map[string]bool {
	return map[string]bool{
		"gemini":      c.Gemini.APIKey != "",
		"openweather": c.Weather.APIKey != "",
	}
}
