package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Forecast  ForecastConfig
	OpenMeteo OpenMeteoConfig
	Page      PageConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ForecastConfig describes the single location and horizon the page shows
type ForecastConfig struct {
	Latitude  float64
	Longitude float64
	Days      int    // Number of days to forecast
	Timezone  string // IANA name; empty means resolve from coordinates
}

// OpenMeteoConfig holds the outbound client settings
type OpenMeteoConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// PageConfig holds presentation settings for the HTML page
type PageConfig struct {
	Title               string
	Minify              bool
	LegacyTimestampList bool // repeat every timestamp inside each row
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.pocasi")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("forecast.latitude", 50.7345)
	v.SetDefault("forecast.longitude", 15.3609)
	v.SetDefault("forecast.days", 1)
	v.SetDefault("forecast.timezone", "")
	v.SetDefault("openmeteo.baseurl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("openmeteo.timeout", 15*time.Second)
	v.SetDefault("openmeteo.requestspersecond", 5.0)
	v.SetDefault("openmeteo.burst", 1)
	v.SetDefault("page.title", "Počasí z Open-Meteo")
	v.SetDefault("page.minify", true)
	v.SetDefault("page.legacytimestamplist", false)

	// Read from environment variables, e.g. POCASI_FORECAST_LATITUDE
	v.SetEnvPrefix("POCASI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return newLogger(os.Stdout, c.Log)
}

func newLogger(w io.Writer, lc LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(lc.Level),
	}

	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	// "text" or anything else
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel maps a configured level name to a slog level, defaulting to info
func parseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
