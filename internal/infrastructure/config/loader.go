// Package config loads YAML configuration and applies environment overrides.
package config

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/ports"
)

// Environment variables honored by the loader. Precedence is
// CLI flag > environment > config file > built-in defaults.
const (
	EnvEndpoint     = "OLLAMA_API_URL"
	EnvDefaultModel = "OLLAMA_DEFAULT_MODEL"
	EnvConfigPath   = "OLLASH_CONFIG"
)

// FileLoader loads configuration from ~/.ollash/config.yaml (overridable via
// OLLASH_CONFIG) and layers environment overrides on top.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path means the default
// location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, domain.WrapFailure(domain.FailConfig, err, "could not create config directory")
	}

	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := writeDefault(path, cfg); err != nil {
			return domain.Config{}, domain.WrapFailure(domain.FailConfig, err, "could not write default config")
		}
	case err != nil:
		return domain.Config{}, domain.WrapFailure(domain.FailConfig, err, "could not read config file %s", path)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, domain.WrapFailure(domain.FailConfig, err, "invalid config file %s", path)
		}
	}

	cfg = applyEnv(cfg)
	cfg = hydrateDefaults(cfg)
	if err := validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".ollash", "config.yaml")
}

func applyEnv(cfg domain.Config) domain.Config {
	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if model := os.Getenv(EnvDefaultModel); model != "" {
		cfg.DefaultModel = model
	}
	return cfg
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Endpoint:            domain.DefaultEndpoint,
		DefaultModel:        domain.DefaultModel,
		TimeoutSeconds:      domain.DefaultTimeoutSeconds,
		Execution: domain.ExecutionSettings{
			Shell: "auto",
		},
		Security: domain.SecuritySettings{
			RulesFile: filepath.Join(userHomeDir(), ".ollash", "rules.yaml"),
		},
		History: domain.HistorySettings{
			Enabled: true,
			Path:    filepath.Join(userHomeDir(), ".ollash", "history", "history.db"),
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Endpoint == "" {
		cfg.Endpoint = domain.DefaultEndpoint
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = domain.DefaultModel
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = domain.DefaultTimeoutSeconds
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(userHomeDir(), ".ollash", "history", "history.db")
	}
	return cfg
}

func validate(cfg domain.Config) error {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return domain.NewFailure(domain.FailConfig, "endpoint %q is not a valid URL", cfg.Endpoint)
	}
	if strings.TrimSpace(cfg.DefaultModel) == "" {
		return domain.NewFailure(domain.FailConfig, "no default model configured")
	}
	return nil
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
