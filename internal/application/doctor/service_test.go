package doctor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/ollash/internal/domain"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

func TestRunReportsInstalledModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"models":[{"name":"gemma3:1b"},{"name":"codellama:7b"}]}`))
	}))
	defer server.Close()

	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{
			Endpoint:     server.URL + "/api/generate",
			DefaultModel: "gemma3:1b",
		}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if diff := cmp.Diff([]string{"gemma3:1b", "codellama:7b"}, report.Models); diff != "" {
		t.Fatalf("models mismatch (-want +got):\n%s", diff)
	}
	for _, check := range report.Checks {
		if check.Status != domain.HealthOK {
			t.Errorf("check %s = %s (%s), want ok", check.Name, check.Status, check.Details)
		}
	}
}

func TestRunWarnsWhenDefaultModelMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"codellama:7b"}]}`))
	}))
	defer server.Close()

	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{
			Endpoint:     server.URL + "/api/generate",
			DefaultModel: "gemma3:1b",
		}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	warned := false
	for _, check := range report.Checks {
		if check.Name == "Default model" && check.Status == domain.HealthWarn {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("missing model did not produce a warning: %+v", report.Checks)
	}
}

func TestRunReportsUnreachableService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{
			Endpoint:     server.URL + "/api/generate",
			DefaultModel: "gemma3:1b",
		}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	failed := false
	for _, check := range report.Checks {
		if check.Name == "Ollama service" && check.Status == domain.HealthError {
			failed = true
		}
	}
	if !failed {
		t.Fatalf("unreachable service not reported: %+v", report.Checks)
	}
}
