// Package executor runs confirmed commands in the user's shell.
package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/ports"
)

// LocalExecutor runs a single command line via `$SHELL -c`, streaming child
// output through to the user unmodified and mirroring the child's exit code.
type LocalExecutor struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLocalExecutor builds a new executor, shell defaults to $SHELL then /bin/sh.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" || shell == "auto" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{
		shell:  shell,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams overrides the child's standard streams. Used by tests.
func (e *LocalExecutor) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *LocalExecutor {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Execute implements ports.CommandExecutor. It blocks until the child
// terminates. A non-zero child exit is reported as a CommandFailure so the
// process exit code can mirror it; a spawn failure is an ExecutionFailed
// pipeline error.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, e.shell, "-c", command)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{DurationMS: duration}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.Ran = true
		result.ExitCode = exitErr.ExitCode()
		return result, &domain.CommandFailure{ExitCode: result.ExitCode}
	}
	if err != nil {
		return result, domain.WrapFailure(domain.FailExecution, err,
			"could not execute command with %s", e.shell)
	}
	result.Ran = true
	result.ExitCode = 0
	return result, nil
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
