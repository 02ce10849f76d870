// Package config loads application configuration from file, environment,
// and flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"intervue/internal/llm"
)

// ErrMissingConfiguration lists required settings that are absent. The
// caller surfaces it before any backend call is attempted.
type ErrMissingConfiguration struct {
	Missing []string
}

func (e *ErrMissingConfiguration) Error() string {
	return fmt.Sprintf("missing configuration: %s", strings.Join(e.Missing, ", "))
}

// Config is the full application configuration.
type Config struct {
	// Provider selects the model backend: openai, compatible, anthropic,
	// gemini, or mock.
	Provider string `mapstructure:"provider"`

	// BaseURL points the openai/compatible providers at an
	// OpenAI-compatible endpoint.
	BaseURL string `mapstructure:"base-url"`

	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"`

	// ElevenLabsKey enables speech output when set.
	ElevenLabsKey string `mapstructure:"elevenlabs-key"`

	// Language is the session language: "en" or "es".
	Language string `mapstructure:"language"`

	// DBPath overrides the session history database location.
	DBPath string `mapstructure:"db-path"`

	// Timeout bounds each model request.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from the given file (or intervue.yaml in the
// working directory), with INTERVUE_* environment variables taking
// precedence over the file.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	v.SetDefault("provider", "compatible")
	v.SetDefault("language", "en")
	v.SetDefault("timeout", llm.DefaultTimeout)

	// Register every key so AutomaticEnv picks them up without a file.
	for _, k := range []string{"base-url", "api-key", "model", "elevenlabs-key", "db-path"} {
		v.SetDefault(k, "")
	}

	v.SetEnvPrefix("INTERVUE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("intervue")
		v.SetConfigType("yaml")
		// Absent default config file is fine; env and flags may be enough.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the selected provider has everything it needs.
func (c *Config) Validate() error {
	var missing []string

	switch c.Provider {
	case "mock":
		return nil
	case "compatible":
		if c.BaseURL == "" {
			missing = append(missing, "base-url")
		}
		fallthrough
	case "openai", "anthropic", "gemini":
		if c.APIKey == "" {
			missing = append(missing, "api-key")
		}
		if c.Model == "" {
			missing = append(missing, "model")
		}
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	if c.Language != "en" && c.Language != "es" {
		return fmt.Errorf("unsupported language %q (want en or es)", c.Language)
	}

	if len(missing) > 0 {
		return &ErrMissingConfiguration{Missing: missing}
	}
	return nil
}

// LLM returns the provider configuration slice of this config.
func (c *Config) LLM() llm.Config {
	return llm.Config{
		Provider: c.Provider,
		BaseURL:  c.BaseURL,
		APIKey:   c.APIKey,
		Model:    c.Model,
		Timeout:  c.Timeout,
	}
}
