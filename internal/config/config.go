// Package config loads moodreel settings from a YAML file, the environment
// and an optional .env file.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
)

type contextKey string

const configKey contextKey = "config"

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Capability backends.
const (
	BackendNone        = "none"
	BackendOllama      = "ollama"
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig  `yaml:"server"`
	Log        LogConfig     `yaml:"log"`
	Storage    StorageConfig `yaml:"storage"`
	Classifier BackendConfig `yaml:"classifier"`
	Generator  BackendConfig `yaml:"generator"`
	Poster     PosterConfig  `yaml:"poster"`
	Mood       MoodConfig    `yaml:"mood"`

	// CapabilityTimeout bounds each call to a model backend.
	CapabilityTimeout time.Duration `yaml:"capability_timeout"`
	// Concurrency is the number of model calls allowed to run side by side.
	Concurrency int `yaml:"concurrency"`

	// Secrets only come from the environment.
	OpenAIKey        string `yaml:"-"`
	HuggingFaceToken string `yaml:"-"`
}

type ServerConfig struct {
	Addr       string `yaml:"addr"`
	CORSOrigin string `yaml:"cors_origin"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver"`
	SQLitePath  string `yaml:"sqlite_path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

// BackendConfig selects one optional model capability.
type BackendConfig struct {
	Backend string `yaml:"backend"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type PosterConfig struct {
	Render bool `yaml:"render"`
}

type MoodConfig struct {
	Normalization string `yaml:"normalization"`
	MaxInputRunes int    `yaml:"max_input_runes"`
}

// Load reads configuration from file or returns defaults, then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:       ":8080",
			CORSOrigin: "*",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Storage: StorageConfig{
			Driver:      DriverMemory,
			SQLitePath:  "moodreel.db",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "moodreel:",
		},
		Classifier: BackendConfig{Backend: BackendNone},
		Generator:  BackendConfig{Backend: BackendNone},
		Poster:     PosterConfig{Render: true},
		Mood: MoodConfig{
			Normalization: string(domain.NormalizeByTotal),
			MaxInputRunes: 500,
		},
		CapabilityTimeout: 30 * time.Second,
		Concurrency:       3,
	}
}

func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		"./config.yml",
		filepath.Join(os.Getenv("HOME"), ".moodreel", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		c.Server.Addr = ":" + port
	}
	setString(&c.Server.Addr, "MOODREEL_ADDR")
	setString(&c.Server.CORSOrigin, "MOODREEL_CORS_ORIGIN")
	setString(&c.Log.Level, "MOODREEL_LOG_LEVEL")
	setString(&c.Storage.Driver, "MOODREEL_STORAGE_DRIVER", "STORAGE_DRIVER")
	setString(&c.Storage.SQLitePath, "MOODREEL_SQLITE_PATH")
	setString(&c.Storage.RedisAddr, "MOODREEL_REDIS_ADDR", "REDIS_URL")
	setString(&c.Classifier.Backend, "MOODREEL_CLASSIFIER")
	setString(&c.Classifier.Model, "MOODREEL_CLASSIFIER_MODEL")
	setString(&c.Generator.Backend, "MOODREEL_GENERATOR")
	setString(&c.Generator.Model, "MOODREEL_GENERATOR_MODEL")
	setString(&c.Mood.Normalization, "MOODREEL_NORMALIZATION")
	setString(&c.OpenAIKey, "OPENAI_API_KEY")
	setString(&c.HuggingFaceToken, "HF_API_TOKEN")

	if host := strings.TrimSpace(os.Getenv("OLLAMA_HOST")); host != "" {
		for _, b := range []*BackendConfig{&c.Classifier, &c.Generator} {
			if b.Backend == BackendOllama && b.BaseURL == "" {
				b.BaseURL = host
			}
		}
	}

	if v := os.Getenv("MOODREEL_LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: MOODREEL_LOG_PRETTY: %w", err)
		}
		c.Log.Pretty = b
	}
	if v := os.Getenv("MOODREEL_RENDER_POSTER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: MOODREEL_RENDER_POSTER: %w", err)
		}
		c.Poster.Render = b
	}
	if v := os.Getenv("MOODREEL_MAX_INPUT_RUNES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: MOODREEL_MAX_INPUT_RUNES: %w", err)
		}
		c.Mood.MaxInputRunes = n
	}
	if v := os.Getenv("MOODREEL_CAPABILITY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: MOODREEL_CAPABILITY_TIMEOUT: %w", err)
		}
		c.CapabilityTimeout = d
	}
	return nil
}

// Validate rejects unknown drivers and backends and missing credentials.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Classifier.Backend {
	case BackendNone, BackendOllama, BackendHuggingFace, BackendOpenAI:
	default:
		return fmt.Errorf("config: unknown classifier backend %q", c.Classifier.Backend)
	}
	switch c.Generator.Backend {
	case BackendNone, BackendOllama, BackendOpenAI:
	default:
		return fmt.Errorf("config: unknown generator backend %q", c.Generator.Backend)
	}
	if (c.Classifier.Backend == BackendOpenAI || c.Generator.Backend == BackendOpenAI) && c.OpenAIKey == "" {
		return fmt.Errorf("config: OPENAI_API_KEY is required for the openai backend")
	}

	if _, err := domain.ParseNormalization(c.Mood.Normalization); err != nil {
		return fmt.Errorf("config: mood normalization %q: %w", c.Mood.Normalization, err)
	}
	if c.Mood.MaxInputRunes <= 0 {
		return fmt.Errorf("config: max_input_runes must be positive, got %d", c.Mood.MaxInputRunes)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("config: concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.CapabilityTimeout <= 0 {
		return fmt.Errorf("config: capability_timeout must be positive, got %s", c.CapabilityTimeout)
	}
	return nil
}

// Normalization returns the parsed mood normalization.
func (c *Config) Normalization() domain.Normalization {
	n, _ := domain.ParseNormalization(c.Mood.Normalization)
	return n
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
