package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/ollash/internal/domain"
)

func TestLoadWritesAndReturnsDefaults(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvDefaultModel, "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Endpoint != domain.DefaultEndpoint {
		t.Errorf("Endpoint = %q, want default", cfg.Endpoint)
	}
	if cfg.DefaultModel != domain.DefaultModel {
		t.Errorf("DefaultModel = %q, want default", cfg.DefaultModel)
	}
	if cfg.TimeoutSeconds != domain.DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want default", cfg.TimeoutSeconds)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	file := `endpoint: http://filehost:11434/api/generate
default_model: file-model
timeout: 30
`
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(EnvEndpoint, "http://envhost:11434/api/generate")
	t.Setenv(EnvDefaultModel, "env-model")

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := struct {
		Endpoint string
		Model    string
		Timeout  int
	}{"http://envhost:11434/api/generate", "env-model", 30}
	got := struct {
		Endpoint string
		Model    string
		Timeout  int
	}{cfg.Endpoint, cfg.DefaultModel, cfg.TimeoutSeconds}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolved config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileUsedWithoutEnv(t *testing.T) {
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvDefaultModel, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	file := `endpoint: http://filehost:11434/api/generate
default_model: file-model
`
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultModel != "file-model" {
		t.Errorf("DefaultModel = %q, want file value", cfg.DefaultModel)
	}
	if cfg.TimeoutSeconds != domain.DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want hydrated default", cfg.TimeoutSeconds)
	}
}

func TestLoadRejectsInvalidEndpoint(t *testing.T) {
	t.Setenv(EnvDefaultModel, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvEndpoint, "not a url at all")

	_, err := NewFileLoader(path).Load(context.Background())
	if domain.KindOf(err) != domain.FailConfig {
		t.Fatalf("error = %v, want config failure", err)
	}
}
