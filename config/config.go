package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Companion core specifics
	Local          LocalLLMConfig
	OpenAI         OpenAIConfig
	Hub            HubConfig
	GoogleCalendar GoogleCalendarConfig
	Store          StoreConfig
	RateLimit      RateLimitConfig
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

// LocalLLMConfig configures the local Ollama-style endpoints.
type LocalLLMConfig struct {
	Endpoints      []string
	PrimaryModel   string
	SecondaryModel string
}

// OpenAIConfig configures the hosted chat-completion provider.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// HubConfig configures the inference-hub provider.
type HubConfig struct {
	Token  string
	Models []string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// StoreConfig bounds the in-memory profile and task caches.
type StoreConfig struct {
	ProfileCapacity int
	TaskCapacity    int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Local LLM endpoints
	cfg.Local.Endpoints = splitList(viper.GetString("local.endpoints"))
	if len(cfg.Local.Endpoints) == 0 {
		cfg.Local.Endpoints = viper.GetStringSlice("local.endpoints")
	}
	cfg.Local.PrimaryModel = viper.GetString("local.primary_model")
	cfg.Local.SecondaryModel = viper.GetString("local.secondary_model")

	// Hosted chat-completion provider
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Inference hub provider
	cfg.Hub.Token = viper.GetString("hub.token")
	cfg.Hub.Models = splitList(viper.GetString("hub.models"))
	if len(cfg.Hub.Models) == 0 {
		cfg.Hub.Models = viper.GetStringSlice("hub.models")
	}
	if token := viper.GetString("hub_token"); token != "" {
		cfg.Hub.Token = token
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Store capacities
	cfg.Store.ProfileCapacity = viper.GetInt("store.profile_capacity")
	cfg.Store.TaskCapacity = viper.GetInt("store.task_capacity")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

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

	// Local LLM defaults
	viper.SetDefault("local.endpoints", "http://localhost:11434")
	viper.SetDefault("local.primary_model", "llama3.2")
	viper.SetDefault("local.secondary_model", "llama3.2:1b")

	// Hosted provider defaults
	viper.SetDefault("openai.model", "gpt-4o-mini")

	// Calendar defaults
	viper.SetDefault("google_calendar.timezone", "UTC")

	// Rate limiting defaults
	viper.SetDefault("rate_limit.requests_per_min", 120)
}

// splitList splits a comma-separated string, since viper may deliver list
// values as a single string when they come from the environment.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
