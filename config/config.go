package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	API        APIConfig

	// Deadline tracker specifics
	Outline        OutlineConfig
	GoogleCalendar GoogleCalendarConfig
	Extraction     ExtractionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type APIConfig struct {
	Key string // empty leaves the API open
}

// OutlineConfig configures the university outline API client.
type OutlineConfig struct {
	BaseURL         string
	AccessToken     string
	CacheSize       int
	CacheTTL        time.Duration
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// ExtractionConfig carries the keyword lists the parsers match against. The
// lists were reverse-engineered from sample documents, so they stay
// configuration rather than constants. Empty lists fall back to the built-in
// defaults.
type ExtractionConfig struct {
	NonTeachingKeywords []string
	NoiseKeywords       []string
	TBAPhrases          []string
	CalendarHeaders     []string
	AssessmentKeywords  []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.API.Key = viper.GetString("api.key")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.API.Key = apiKey
	}

	// Outline API
	cfg.Outline.BaseURL = viper.GetString("outline.base_url")
	cfg.Outline.AccessToken = viper.GetString("outline.access_token")
	cfg.Outline.CacheSize = viper.GetInt("outline.cache_size")
	cfg.Outline.CacheTTL = viper.GetDuration("outline.cache_ttl")
	cfg.Outline.RateLimitPerMin = viper.GetInt("outline.rate_limit_per_min")
	if outlineURL := viper.GetString("outline_base_url"); outlineURL != "" {
		cfg.Outline.BaseURL = outlineURL
	}
	if outlineToken := viper.GetString("outline_access_token"); outlineToken != "" {
		cfg.Outline.AccessToken = outlineToken
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Extraction keyword lists
	cfg.Extraction.NonTeachingKeywords = viper.GetStringSlice("extraction.non_teaching_keywords")
	cfg.Extraction.NoiseKeywords = viper.GetStringSlice("extraction.noise_keywords")
	cfg.Extraction.TBAPhrases = viper.GetStringSlice("extraction.tba_phrases")
	cfg.Extraction.CalendarHeaders = viper.GetStringSlice("extraction.calendar_headers")
	cfg.Extraction.AssessmentKeywords = viper.GetStringSlice("extraction.assessment_keywords")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("outline.cache_size", 128)
	viper.SetDefault("outline.cache_ttl", "30m")
	viper.SetDefault("outline.rate_limit_per_min", 30)

	viper.SetDefault("google_calendar.timezone", "Australia/Perth")
}
