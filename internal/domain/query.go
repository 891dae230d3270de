package domain

import "context"

// QueryRequest captures user intent originating from the CLI.
type QueryRequest struct {
	Context       context.Context
	Prompt        string
	ModelOverride string
	Interactive   bool
	SkipConfirm   bool
	Debug         bool
}

// InferenceResult holds the unprocessed model output for one request.
type InferenceResult struct {
	RawText string
	Model   string
}

// QueryResponse is the canonical response propagated back to the CLI.
type QueryResponse struct {
	Command         string
	NaturalLanguage string
	RawReply        string
	Model           string
	Gate            GateState
	Outcome         GateOutcome
	Classification  Classification
	ExecutionResult *ExecutionResult
}

// ExecutionResult wraps details from the command executor. Child output is
// streamed straight to the user's terminal, so only the verdict is kept.
type ExecutionResult struct {
	Ran        bool
	ExitCode   int
	DurationMS int64
}

// QueryService exposes the use-case boundary for handling a query.
type QueryService interface {
	Run(QueryRequest) (QueryResponse, error)
}
