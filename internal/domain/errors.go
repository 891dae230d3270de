package domain

import (
	"errors"
	"fmt"
)

// FailureKind enumerates the terminal failure taxonomy. Every invocation
// either completes one full pipeline pass or stops at the first failing
// stage with exactly one of these kinds.
type FailureKind string

const (
	FailConfig              FailureKind = "config_error"
	FailEndpointUnreachable FailureKind = "endpoint_unreachable"
	FailInferenceService    FailureKind = "inference_service_error"
	FailMalformedResponse   FailureKind = "malformed_response"
	FailEmptyCommand        FailureKind = "empty_command"
	FailExecution           FailureKind = "execution_failed"
	FailUserAborted         FailureKind = "user_aborted"
)

// Process exit codes. Executed commands that fail mirror the child's exit
// code instead of these.
const (
	ExitSuccess             = 0
	ExitConfigError         = 2
	ExitEndpointUnreachable = 3
	ExitInferenceService    = 4
	ExitMalformedResponse   = 5
	ExitEmptyCommand        = 6
	ExitExecutionFailed     = 7
	ExitUserAborted         = 8
)

// Failure is a terminal pipeline error carrying its taxonomy kind.
type Failure struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Cause)
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// NewFailure builds a Failure without an underlying cause.
func NewFailure(kind FailureKind, format string, args ...interface{}) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapFailure builds a Failure around an underlying cause.
func WrapFailure(kind FailureKind, cause error, format string, args ...interface{}) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// CommandFailure reports an executed command that exited non-zero. The tool's
// own exit code mirrors the child's, with no reinterpretation.
type CommandFailure struct {
	ExitCode int
}

func (c *CommandFailure) Error() string {
	return fmt.Sprintf("command exited with code %d", c.ExitCode)
}

// KindOf extracts the taxonomy kind from an error chain, or "" when the
// error is not a pipeline Failure.
func KindOf(err error) FailureKind {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind
	}
	return ""
}

// ExitCodeFor maps an error chain to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var child *CommandFailure
	if errors.As(err, &child) {
		return child.ExitCode
	}
	switch KindOf(err) {
	case FailConfig:
		return ExitConfigError
	case FailEndpointUnreachable:
		return ExitEndpointUnreachable
	case FailInferenceService:
		return ExitInferenceService
	case FailMalformedResponse:
		return ExitMalformedResponse
	case FailEmptyCommand:
		return ExitEmptyCommand
	case FailExecution:
		return ExitExecutionFailed
	case FailUserAborted:
		return ExitUserAborted
	default:
		return 1
	}
}
