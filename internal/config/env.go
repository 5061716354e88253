package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"driverapp/internal/utils"
)

// Env holds everything the app treats as deployment configuration: the
// backend host varies across installs and the geo providers are keyed.
type Env struct {
	APIBaseURL    string `mapstructure:"api_base_url"`
	GeocodeURL    string `mapstructure:"geocode_url"`
	PlacesURL     string `mapstructure:"places_url"`
	DirectionsURL string `mapstructure:"directions_url"`
	MapsAPIKey    string `mapstructure:"maps_api_key"`
	SessionFile   string `mapstructure:"session_file"`
	HTTPTimeout   int    `mapstructure:"http_timeout_seconds"`
	LogLevel      string `mapstructure:"log_level"`
}

// Timeout converts the configured seconds into a duration.
func (e Env) Timeout() time.Duration {
	if e.HTTPTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(e.HTTPTimeout) * time.Second
}

// Load reads config.yaml from the working directory with environment
// overrides (DRIVERAPP_API_BASE_URL and friends). A missing file is
// fine; defaults target a local backend.
func Load() (Env, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("api_base_url", "http://localhost:3000")
	v.SetDefault("geocode_url", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("places_url", "https://maps.googleapis.com/maps/api/place")
	v.SetDefault("directions_url", "https://maps.googleapis.com/maps/api/directions/json")
	v.SetDefault("maps_api_key", "")
	v.SetDefault("session_file", ".driverapp/session.json")
	v.SetDefault("http_timeout_seconds", 30)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("driverapp")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Env{}, err
		}
		utils.LogEvent("", "config", "load", "config.yaml not found, using defaults")
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return Env{}, err
	}
	return env, nil
}
