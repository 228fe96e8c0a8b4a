package config

import (
	"errors"
	"fmt"
	"os"

	"ppa-agent/internal/application/port/output"
	"ppa-agent/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

const (
	CredentialEnv        = "GEMINI_API_KEY"
	DefaultModel         = "gemini-2.5-flash"
	DefaultOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultConfigFile    = "ppaa.yaml"
	DefaultLogDir        = "log"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrUnknownProvider   = errors.New("unknown provider")
)

// Config читается один раз при старте и передаётся дальше явно.
type Config struct {
	APIKey        string   `yaml:"-"`
	Provider      Provider `yaml:"provider"`
	Model         string   `yaml:"model"`
	BaseURL       string   `yaml:"base_url"`
	MaxIterations int      `yaml:"max_iterations"`
	Temperature   float32  `yaml:"temperature"`
	LogDir        string   `yaml:"log_dir"`
	LogLevel      string   `yaml:"log_level"`
	SystemPrompt  string   `yaml:"system_prompt"`
}

func Default() Config {
	return Config{
		Provider:      ProviderGemini,
		Model:         DefaultModel,
		MaxIterations: entity.DefaultMaxIterations,
		LogDir:        DefaultLogDir,
		LogLevel:      "debug",
	}
}

// Load собирает конфиг: значения по умолчанию, затем YAML-файл, затем переменные окружения.
func Load(env output.ConfigPort) (Config, error) {
	cfg := Default()

	path := env.Get("PPAA_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	if err := mergeFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}

	cfg.APIKey = env.Get(CredentialEnv)
	cfg.Provider = Provider(env.GetWithDefault("PPAA_PROVIDER", string(cfg.Provider)))
	cfg.Model = env.GetWithDefault("PPAA_MODEL", cfg.Model)
	cfg.BaseURL = env.GetWithDefault("PPAA_BASE_URL", cfg.BaseURL)
	cfg.MaxIterations = env.GetInt("PPAA_MAX_ITERATIONS", cfg.MaxIterations)
	cfg.Temperature = float32(env.GetFloat("PPAA_TEMPERATURE", float64(cfg.Temperature)))
	cfg.LogDir = env.GetWithDefault("PPAA_LOG_DIR", cfg.LogDir)
	cfg.LogLevel = env.GetWithDefault("PPAA_LOG_LEVEL", cfg.LogLevel)

	if cfg.Provider == ProviderOpenAI && cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIBaseURL
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: %s environment variable not set", ErrMissingCredential, CredentialEnv)
	}
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	return nil
}
