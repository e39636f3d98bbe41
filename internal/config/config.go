package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	Chat    ChatConfig
	Log     LogConfig
	Swagger bool
}

type ServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LLMConfig struct {
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	// OpenAIBaseURL points the OpenAI client at a compatible server.
	OpenAIBaseURL string
	Timeout       time.Duration
	// Temperature is nil when LLM_TEMPERATURE is unset.
	Temperature *float32
}

type ChatConfig struct {
	MaxMessages   int
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// APIKey returns the key of the selected provider.
func (c LLMConfig) APIKey() string {
	if strings.EqualFold(c.Provider, "openai") {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// BaseURL returns the endpoint override of the selected provider, if any.
func (c LLMConfig) BaseURL() string {
	if strings.EqualFold(c.Provider, "openai") {
		return c.OpenAIBaseURL
	}
	return ""
}

// Model returns the model name of the selected provider.
func (c LLMConfig) Model() string {
	if strings.EqualFold(c.Provider, "openai") {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

func defaults(v *viper.Viper) {
	v.SetDefault("port", 8000)
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("llm_provider", "gemini")
	v.SetDefault("google_api_key", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("openai_base_url", "")
	v.SetDefault("llm_timeout", "60s")
	v.SetDefault("llm_temperature", "")

	v.SetDefault("chat_max_messages", 100)
	v.SetDefault("chat_session_ttl", "24h")
	v.SetDefault("chat_sweep_interval", "10m")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("enable_swagger", false)
}

// Load reads .env files (when present) into the environment, then builds the
// config from environment variables.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// a missing .env is normal outside local development
		_ = godotenv.Load(f)
	}

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("port"),
			Mode:            strings.ToLower(v.GetString("gin_mode")),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(strings.TrimSpace(v.GetString("llm_provider"))),
			GeminiAPIKey:  firstNonEmpty(v.GetString("google_api_key"), v.GetString("gemini_api_key")),
			GeminiModel:   v.GetString("gemini_model"),
			OpenAIAPIKey:  v.GetString("openai_api_key"),
			OpenAIModel:   v.GetString("openai_model"),
			OpenAIBaseURL: v.GetString("openai_base_url"),
			Timeout:       v.GetDuration("llm_timeout"),
		},
		Chat: ChatConfig{
			MaxMessages:   v.GetInt("chat_max_messages"),
			SessionTTL:    v.GetDuration("chat_session_ttl"),
			SweepInterval: v.GetDuration("chat_sweep_interval"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
		Swagger: v.GetBool("enable_swagger"),
	}

	if raw := strings.TrimSpace(v.GetString("llm_temperature")); raw != "" {
		t := float32(v.GetFloat64("llm_temperature"))
		cfg.LLM.Temperature = &t
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode: %s, must be 'debug', 'release' or 'test'", c.Server.Mode)
	}

	switch c.LLM.Provider {
	case "gemini":
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required when using Gemini provider")
		}
	case "openai":
		if c.LLM.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		return fmt.Errorf("unsupported llm provider: %s. Use 'gemini' or 'openai'", c.LLM.Provider)
	}

	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm timeout must not be negative")
	}
	if t := c.LLM.Temperature; t != nil && (*t < 0 || *t > 2) {
		return fmt.Errorf("llm temperature must be between 0 and 2, got %v", *t)
	}

	if c.Chat.MaxMessages < 0 {
		return fmt.Errorf("chat max messages must not be negative")
	}
	if c.Chat.SessionTTL < 0 || c.Chat.SweepInterval < 0 {
		return fmt.Errorf("chat session ttl and sweep interval must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'console'", c.Log.Format)
	}

	return nil
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
