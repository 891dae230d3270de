package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/ports"
)

// Prompter implements ConfirmationPrompter using stdin/stdout.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter constructs a prompter referencing stdio. Passing nil streams
// binds to the real terminal; injected streams are always considered
// interactive (tests).
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	interactive := true
	if in == nil {
		in = os.Stdin
		interactive = isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Enabled reports whether stdin can answer a prompt.
func (p *Prompter) Enabled() bool {
	return p.interactive
}

// Confirm asks the user for explicit yes/no confirmation. Destructive
// commands get an additional warning in the prompt text.
func (p *Prompter) Confirm(command string, cls domain.Classification) (bool, error) {
	fmt.Fprintf(p.out, "\nCommand:\n  %s\n", command)
	if cls.Destructive {
		fmt.Fprintln(p.out, "\nWARNING! This command appears destructive or requires elevated privileges.")
		for _, reason := range cls.Reasons {
			fmt.Fprintf(p.out, " - %s\n", reason)
		}
		return p.ask("Do you want to execute it anyway? [y/N]: ")
	}
	return p.ask("Do you want to execute this command? [y/N]: ")
}

func (p *Prompter) ask(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		// EOF or interrupt counts as "no".
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
