// Package doctor runs environment diagnostics for the Ollama setup.
package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/ports"
)

// Service runs environment diagnostics: config sanity, endpoint
// reachability, and the models installed on the Ollama instance.
type Service struct {
	ConfigProvider ports.ConfigProvider
	HTTPClient     *http.Client
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var report domain.HealthReport

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		report.Checks = append(report.Checks, fail("Config", err.Error()))
		return report, err
	}
	report.Checks = append(report.Checks, ok("Config", fmt.Sprintf("endpoint %s, model %s", cfg.Endpoint, cfg.DefaultModel)))

	models, err := s.listModels(ctx, cfg)
	if err != nil {
		report.Checks = append(report.Checks, fail("Ollama service",
			fmt.Sprintf("unreachable: %v (is Ollama running?)", err)))
		return report, nil
	}
	report.Checks = append(report.Checks, ok("Ollama service", "reachable"))
	report.Models = models

	found := false
	for _, name := range models {
		if name == cfg.DefaultModel {
			found = true
			break
		}
	}
	if found {
		report.Checks = append(report.Checks, ok("Default model", cfg.DefaultModel+" installed"))
	} else {
		report.Checks = append(report.Checks, warn("Default model",
			fmt.Sprintf("%s not found locally; run `ollama pull %s`", cfg.DefaultModel, cfg.DefaultModel)))
	}

	return report, nil
}

// listModels queries the Ollama tags API on the same host as the generate
// endpoint.
func (s *Service) listModels(ctx context.Context, cfg domain.Config) ([]string, error) {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	tagsURL := fmt.Sprintf("%s://%s/api/tags", parsed.Scheme, parsed.Host)

	client := s.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tagsURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", resp.Status)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags.Models))
	for _, model := range tags.Models {
		names = append(names, model.Name)
	}
	return names, nil
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
