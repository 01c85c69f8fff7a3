package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/studyhub/internal/content"
	"github.com/abhisek/studyhub/internal/llm"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from an optional config
// file, an optional .env file and STUDYHUB_* environment variables.
type Config struct {
	Env     string  `mapstructure:"env"` // local, production, ...
	HTTP    HTTP    `mapstructure:"http"`
	Session Session `mapstructure:"session"`
	Quiz    Quiz    `mapstructure:"quiz"`
	DB      DB      `mapstructure:"db"`
	Log     Log     `mapstructure:"log"`
	LLM     LLM     `mapstructure:"llm"`
}

type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Session struct {
	TTL time.Duration `mapstructure:"ttl"` // idle sessions are dropped after this
}

type Quiz struct {
	TimedWindow     time.Duration `mapstructure:"timed_window"`
	DefaultTestSize int           `mapstructure:"default_test_size"`
}

type DB struct {
	Path string `mapstructure:"path"` // empty uses the XDG data dir
}

type Log struct {
	File string `mapstructure:"file"` // empty logs to stderr, or nowhere in the TUI
}

// LLM selects and configures the question generator.
type LLM struct {
	Provider   string        `mapstructure:"provider"` // empty discovers from API keys
	Timeout    time.Duration `mapstructure:"timeout"`
	Topic      string        `mapstructure:"topic"`
	OpenAI     ProviderKey   `mapstructure:"openai"`
	Anthropic  ProviderKey   `mapstructure:"anthropic"`
	Gemini     ProviderKey   `mapstructure:"gemini"`
	OpenRouter ProviderKey   `mapstructure:"openrouter"`
}

type ProviderKey struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Load reads configuration. When file is empty, config.yaml is looked up in
// the working directory and ./config and may be absent; an explicit file
// must exist.
func Load(file string) (*Config, error) {
	// An absent .env is fine; variables already in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	defaults := llm.DefaultConfig()
	v.SetDefault("env", "local")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("session.ttl", "2h")
	v.SetDefault("quiz.timed_window", "60s")
	v.SetDefault("quiz.default_test_size", 10)
	v.SetDefault("db.path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", defaults.Timeout.String())
	v.SetDefault("llm.topic", content.DefaultTopic)
	for _, p := range []struct{ name, model string }{
		{"openai", defaults.OpenAI.Model},
		{"anthropic", defaults.Anthropic.Model},
		{"gemini", defaults.Gemini.Model},
		{"openrouter", defaults.OpenRouter.Model},
	} {
		v.SetDefault("llm."+p.name+".api_key", "")
		v.SetDefault("llm."+p.name+".model", p.model)
		v.SetDefault("llm."+p.name+".base_url", "")
	}

	v.SetEnvPrefix("studyhub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // http.addr -> STUDYHUB_HTTP_ADDR
	v.AutomaticEnv()

	// Short names, plus the vendor-standard key variables as fallbacks.
	_ = v.BindEnv("db.path", "STUDYHUB_DB_PATH")
	_ = v.BindEnv("log.file", "STUDYHUB_LOG_FILE")
	_ = v.BindEnv("llm.openai.api_key", "STUDYHUB_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.openai.model", "STUDYHUB_OPENAI_MODEL")
	_ = v.BindEnv("llm.anthropic.api_key", "STUDYHUB_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.anthropic.model", "STUDYHUB_ANTHROPIC_MODEL")
	_ = v.BindEnv("llm.gemini.api_key", "STUDYHUB_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.gemini.model", "STUDYHUB_GEMINI_MODEL")
	_ = v.BindEnv("llm.openrouter.api_key", "STUDYHUB_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	_ = v.BindEnv("llm.openrouter.model", "STUDYHUB_OPENROUTER_MODEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the rest of the program cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Session.TTL <= 0:
		return fmt.Errorf("%w: session.ttl must be positive", ErrInvalidConfig)
	case c.Quiz.TimedWindow <= 0:
		return fmt.Errorf("%w: quiz.timed_window must be positive", ErrInvalidConfig)
	case c.Quiz.DefaultTestSize <= 0:
		return fmt.Errorf("%w: quiz.default_test_size must be positive", ErrInvalidConfig)
	case c.HTTP.ShutdownTimeout < 0:
		return fmt.Errorf("%w: http.shutdown_timeout must not be negative", ErrInvalidConfig)
	}
	lc := c.LLMConfig()
	if err := lc.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LLMConfig converts the llm section, discovering the provider from
// whichever API key is present when none is named.
func (c *Config) LLMConfig() llm.Config {
	lc := llm.DefaultConfig()
	lc.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Timeout > 0 {
		lc.Timeout = c.LLM.Timeout
	}

	lc.OpenAI.APIKey = c.LLM.OpenAI.APIKey
	lc.OpenAI.BaseURL = c.LLM.OpenAI.BaseURL
	lc.Anthropic.APIKey = c.LLM.Anthropic.APIKey
	lc.Anthropic.BaseURL = c.LLM.Anthropic.BaseURL
	lc.Gemini.APIKey = c.LLM.Gemini.APIKey
	lc.OpenRouter.APIKey = c.LLM.OpenRouter.APIKey
	if c.LLM.OpenRouter.BaseURL != "" {
		lc.OpenRouter.BaseURL = c.LLM.OpenRouter.BaseURL
	}
	if m := c.LLM.OpenAI.Model; m != "" {
		lc.OpenAI.Model = m
	}
	if m := c.LLM.Anthropic.Model; m != "" {
		lc.Anthropic.Model = m
	}
	if m := c.LLM.Gemini.Model; m != "" {
		lc.Gemini.Model = m
	}
	if m := c.LLM.OpenRouter.Model; m != "" {
		lc.OpenRouter.Model = m
	}

	lc.Discover()
	return lc
}
