package executor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/doeshing/ollash/internal/domain"
)

func TestExecutePassesOutputThrough(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := NewLocalExecutor("/bin/sh").WithStreams(nil, &stdout, &stderr)

	result, err := exec.Execute(context.Background(), "echo hello; echo oops 1>&2")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !result.Ran || result.ExitCode != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if got := strings.TrimSpace(stdout.String()); got != "hello" {
		t.Errorf("stdout = %q, want %q", got, "hello")
	}
	if got := strings.TrimSpace(stderr.String()); got != "oops" {
		t.Errorf("stderr = %q, want %q", got, "oops")
	}
}

func TestExecuteMirrorsExitCode(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh").WithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{})

	result, err := exec.Execute(context.Background(), "exit 3")
	if result.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", result.ExitCode)
	}
	var child *domain.CommandFailure
	if !errors.As(err, &child) || child.ExitCode != 3 {
		t.Fatalf("error = %v, want CommandFailure{3}", err)
	}
	if domain.ExitCodeFor(err) != 3 {
		t.Fatalf("process exit code does not mirror child: %d", domain.ExitCodeFor(err))
	}
}

func TestExecuteSpawnFailure(t *testing.T) {
	exec := NewLocalExecutor("/nonexistent/shell").WithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := exec.Execute(context.Background(), "echo hi")
	if domain.KindOf(err) != domain.FailExecution {
		t.Fatalf("error = %v, want execution failure", err)
	}
}

func TestNewLocalExecutorShellFallback(t *testing.T) {
	t.Setenv("SHELL", "")
	exec := NewLocalExecutor("")
	if exec.shell != "/bin/sh" {
		t.Fatalf("shell = %q, want /bin/sh", exec.shell)
	}
}
