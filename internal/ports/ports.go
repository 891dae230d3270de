// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// pattern, these interfaces allow the application to remain independent of
// specific implementations like the HTTP inference client, the SQLite
// history store, or the CLI framework.
package ports

import (
	"context"

	"github.com/doeshing/ollash/internal/domain"
)

// ConfigProvider loads the resolved configuration (environment over file
// over defaults). Implementations typically read ~/.ollash/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// InferenceRequest contains all data needed to generate one command.
type InferenceRequest struct {
	Prompt string
	Model  string
	Debug  bool
}

// CommandSuggestion is the processed model answer: the extracted candidate
// command alongside the raw reply it was derived from.
type CommandSuggestion struct {
	Command  string
	RawReply string
	Model    string
}

// InferenceClient issues one synchronous request to the local model endpoint
// and extracts a single candidate command from the response. Single attempt,
// no retries.
type InferenceClient interface {
	Name() string
	Suggest(ctx context.Context, req InferenceRequest) (CommandSuggestion, error)
}

// CommandClassifier decides whether a candidate command is destructive.
type CommandClassifier interface {
	Classify(command string) domain.Classification
}

// CommandExecutor runs a confirmed command line in the user's shell,
// streaming child output through unmodified.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// ConfirmationPrompter handles the interactive yes/no confirmation in the
// Confirm-Required gate state. Enabled reports whether stdin can actually
// answer a prompt.
type ConfirmationPrompter interface {
	Confirm(command string, classification domain.Classification) (bool, error)
	Enabled() bool
}

// HistoryRepository persists invocation history.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	ExportJSON(dest string) error
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
