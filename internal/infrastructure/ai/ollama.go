package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/ports"
)

// maxBodyExcerpt bounds how much of an error body is surfaced to the user.
const maxBodyExcerpt = 300

// OllamaClient talks to the local Ollama generate endpoint. One synchronous
// POST per invocation, no retries.
type OllamaClient struct {
	endpoint     string
	defaultModel string
	httpClient   *http.Client
	logger       ports.Logger
}

type generateRequest struct {
	Model     string          `json:"model"`
	Prompt    string          `json:"prompt"`
	Stream    bool            `json:"stream"`
	KeepAlive int             `json:"keep_alive"`
	Options   generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64  `json:"temperature"`
	Stop        []string `json:"stop"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewOllamaClient builds a client from the resolved configuration. The
// request timeout is explicit (config `timeout`, default 60s) rather than a
// library default.
func NewOllamaClient(cfg domain.Config, log ports.Logger) *OllamaClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = domain.DefaultTimeoutSeconds * time.Second
	}
	return &OllamaClient{
		endpoint:     cfg.Endpoint,
		defaultModel: cfg.DefaultModel,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       log,
	}
}

func (c *OllamaClient) Name() string {
	return "ollama"
}

// SetTimeout replaces the request timeout for this invocation, in either
// direction. Non-positive durations are ignored.
func (c *OllamaClient) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// Suggest implements ports.InferenceClient.
func (c *OllamaClient) Suggest(ctx context.Context, req ports.InferenceRequest) (ports.CommandSuggestion, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	prompt, err := FormatPrompt(req.Prompt)
	if err != nil {
		return ports.CommandSuggestion{}, err
	}

	payload := generateRequest{
		Model:     model,
		Prompt:    prompt,
		Stream:    false,
		KeepAlive: 0,
		Options: generateOptions{
			Temperature: 0.1,
			Stop:        StopMarkers,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.CommandSuggestion{}, err
	}

	if c.logger != nil {
		c.logger.Debug("sending prompt to ollama", map[string]interface{}{
			"model":    model,
			"endpoint": c.endpoint,
		})
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.CommandSuggestion{}, domain.WrapFailure(domain.FailConfig, err,
			"invalid endpoint URL %q", c.endpoint)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.CommandSuggestion{}, domain.WrapFailure(domain.FailEndpointUnreachable, err,
			"could not reach Ollama at %s (is the Ollama service running?)", c.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.CommandSuggestion{}, domain.NewFailure(domain.FailInferenceService,
			"Ollama returned %s: %s", resp.Status, bodyExcerpt(resp.Body))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.CommandSuggestion{}, domain.WrapFailure(domain.FailMalformedResponse, err,
			"could not decode Ollama response")
	}

	if req.Debug && c.logger != nil {
		c.logger.Debug("raw model reply", map[string]interface{}{"reply": decoded.Response})
	}

	command, err := ExtractCommand(decoded.Response)
	if err != nil {
		return ports.CommandSuggestion{}, err
	}

	return ports.CommandSuggestion{
		Command:  command,
		RawReply: decoded.Response,
		Model:    model,
	}, nil
}

func bodyExcerpt(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxBodyExcerpt))
	if err != nil {
		return ""
	}
	excerpt := strings.TrimSpace(string(raw))
	// Truncation is judged on the raw read, before trimming shortens it.
	if len(raw) == maxBodyExcerpt {
		excerpt += "..."
	}
	return excerpt
}

var _ ports.InferenceClient = (*OllamaClient)(nil)
