package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(domain.ExitCodeFor(err))
	}

	if err := root.ExecuteContext(ctx); err != nil {
		// Clean aborts and child exit codes were already reported by the
		// renderer; everything else gets one error line.
		var child *domain.CommandFailure
		if domain.KindOf(err) != domain.FailUserAborted && !errors.As(err, &child) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(domain.ExitCodeFor(err))
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("OLLASH_DEBUG"), "1") || strings.EqualFold(os.Getenv("OLLASH_DEBUG"), "true")
}
