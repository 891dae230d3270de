// Package query orchestrates the request → display → optional-exec pipeline.
package query

import (
	"context"
	"errors"
	"time"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/ports"
)

// Service orchestrates the query lifecycle end-to-end: inference, command
// extraction, the safety gate, and optional execution.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Client         ports.InferenceClient
	Classifier     ports.CommandClassifier
	Executor       ports.CommandExecutor
	Prompter       ports.ConfirmationPrompter
	History        ports.HistoryRepository
	Logger         ports.Logger
}

// Run processes a single natural-language query. The returned error, when
// non-nil, is terminal and carries its taxonomy kind for exit-code mapping.
func (s *Service) Run(req domain.QueryRequest) (domain.QueryResponse, error) {
	if s.ConfigProvider == nil || s.Client == nil || s.Classifier == nil ||
		s.Executor == nil || s.Logger == nil {
		return domain.QueryResponse{}, errors.New("query.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.QueryResponse{}, err
	}

	model := req.ModelOverride
	if model == "" {
		model = cfg.DefaultModel
	}

	s.Logger.Debug("calling inference client", map[string]interface{}{
		"client": s.Client.Name(),
		"model":  model,
	})

	suggestion, err := s.Client.Suggest(ctx, ports.InferenceRequest{
		Prompt: req.Prompt,
		Model:  model,
		Debug:  req.Debug,
	})
	if err != nil {
		return domain.QueryResponse{}, err
	}

	resp := domain.QueryResponse{
		Command:         suggestion.Command,
		NaturalLanguage: req.Prompt,
		RawReply:        suggestion.RawReply,
		Model:           suggestion.Model,
		Gate:            domain.EntryState(req.Interactive, req.SkipConfirm),
	}

	// Classified up front so the history record carries the destructive flag
	// even when the gate stops at display. The gate decision itself never
	// consults the classification in the display-only state.
	resp.Classification = s.Classifier.Classify(suggestion.Command)

	if resp.Gate == domain.GateDisplayOnly {
		resp.Outcome = domain.OutcomeDisplayed
		s.record(resp)
		return resp, nil
	}

	confirmed := false
	if resp.Gate == domain.GateConfirmRequired {
		if s.Prompter == nil || !s.Prompter.Enabled() {
			s.Logger.Warn("confirmation required but stdin is not interactive; command not executed", nil)
			resp.Outcome = domain.OutcomeDisplayed
			s.record(resp)
			return resp, nil
		}
		confirmed, err = s.Prompter.Confirm(suggestion.Command, resp.Classification)
		if err != nil {
			confirmed = false
		}
	}

	resp.Outcome = domain.Decide(resp.Gate, resp.Classification, confirmed)
	if resp.Outcome == domain.OutcomeAborted {
		s.record(resp)
		return resp, domain.NewFailure(domain.FailUserAborted, "execution cancelled by user")
	}

	if resp.Gate == domain.GateAutoExecute && resp.Classification.Destructive {
		s.Logger.Warn("executing destructive command without confirmation (-y)", map[string]interface{}{
			"command": suggestion.Command,
		})
	}

	execResult, execErr := s.Executor.Execute(ctx, suggestion.Command)
	resp.ExecutionResult = &execResult
	s.record(resp)
	return resp, execErr
}

func (s *Service) record(resp domain.QueryResponse) {
	if s.History == nil {
		return
	}
	record := domain.HistoryRecord{
		Timestamp:   time.Now(),
		Prompt:      resp.NaturalLanguage,
		Command:     resp.Command,
		Model:       resp.Model,
		Destructive: resp.Classification.Destructive,
	}
	if resp.ExecutionResult != nil {
		record.Executed = resp.ExecutionResult.Ran
		record.ExitCode = resp.ExecutionResult.ExitCode
		record.DurationMS = resp.ExecutionResult.DurationMS
	}
	if err := s.History.Save(record); err != nil {
		s.Logger.Warn("could not save history record", map[string]interface{}{"error": err.Error()})
	}
}

var _ domain.QueryService = (*Service)(nil)
