// Package cli wires the cobra command tree and the terminal adapters.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/ollash/internal/app"
	"github.com/doeshing/ollash/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.QueryService.Prompter = NewPrompter(nil, nil)

	var (
		prompt      string
		interactive bool
		skipConfirm bool
		model       string
		timeout     time.Duration
		debug       bool
	)

	root := &cobra.Command{
		Use:   "ollash",
		Short: "Translate natural language into shell commands via local Ollama",
		Long: `ollash sends a natural-language request to a locally hosted Ollama
instance, extracts a single shell command from the reply, and optionally
executes it after a safety confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				container.Logger.SetVerbose(true)
			}
			ctx := cmd.Context()
			if timeout > 0 {
				container.Inference.SetTimeout(timeout)
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			resp, err := container.QueryService.Run(domain.QueryRequest{
				Context:       ctx,
				Prompt:        prompt,
				ModelOverride: model,
				Interactive:   interactive,
				SkipConfirm:   skipConfirm,
				Debug:         debug,
			})
			RenderResponse(resp)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&prompt, "prompt", "p", "", "Natural language description of the desired command")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for confirmation before executing the command")
	root.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation when used with -i; executes even destructive commands without asking (USE WITH EXTREME CAUTION)")
	root.Flags().StringVar(&model, "model", "", "Ollama model name to use for this invocation (default from config)")
	root.Flags().DurationVar(&timeout, "timeout", 0, "Override the request timeout for this invocation")
	root.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging")
	_ = root.MarkFlagRequired("prompt")

	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check config and the local Ollama service",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			RenderDoctor(report)
			return err
		},
	}
}
