// Package config loads engine settings. Non-secret settings come from an
// optional YAML file, secrets from the environment; a .env file is picked
// up when present. Environment values win over file values.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvStoreURL      = "POCKETBASE_URL"
	EnvStoreEmail    = "POCKETBASE_EMAIL"
	EnvStorePassword = "POCKETBASE_PASSWORD"
	EnvHintURL       = "HINT_API_URL"
	EnvHintKey       = "HINT_API_KEY"
	EnvHintModel     = "HINT_MODEL"
)

// Config collects the settings of the engine's outer surfaces.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Hint   HintConfig   `yaml:"hint"`
	Server ServerConfig `yaml:"server"`
}

// StoreConfig points at the PocketBase instance puzzles are saved to.
// Credentials never come from the YAML file.
type StoreConfig struct {
	URL        string `yaml:"url"`
	Collection string `yaml:"collection"`
	Email      string `yaml:"-"`
	Password   string `yaml:"-"`
}

// HintConfig points at the chat-completion service used for hints.
type HintConfig struct {
	URL        string   `yaml:"url"`
	Model      string   `yaml:"model"`
	Timeout    Duration `yaml:"timeout"`
	MaxRetries int      `yaml:"maxRetries"`
	APIKey     string   `yaml:"-"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Duration wraps time.Duration so YAML can carry values like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in settings used when no file is given.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Collection: "sudokus",
		},
		Hint: HintConfig{
			Model:      "gpt-4o-mini",
			Timeout:    Duration(15 * time.Second),
			MaxRetries: 2,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then the environment on top. A missing
// .env file is not an error since the variables may come from the real
// environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	_ = godotenv.Load()
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Store.URL, EnvStoreURL)
	setFromEnv(&cfg.Store.Email, EnvStoreEmail)
	setFromEnv(&cfg.Store.Password, EnvStorePassword)
	setFromEnv(&cfg.Hint.URL, EnvHintURL)
	setFromEnv(&cfg.Hint.APIKey, EnvHintKey)
	setFromEnv(&cfg.Hint.Model, EnvHintModel)
}

func setFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
