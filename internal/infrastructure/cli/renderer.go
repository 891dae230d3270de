package cli

import (
	"github.com/pterm/pterm"

	"github.com/doeshing/ollash/internal/domain"
)

var (
	commandStyle = pterm.NewStyle(pterm.FgLightBlue, pterm.Bold)
	noteStyle    = pterm.NewStyle(pterm.FgGray)
)

// RenderResponse prints the pipeline result to the terminal. In the
// confirmation path the prompter has already shown the command, so only the
// outcome is reported here.
func RenderResponse(resp domain.QueryResponse) {
	if resp.Command == "" {
		return
	}

	switch resp.Outcome {
	case domain.OutcomeDisplayed:
		pterm.Printfln("Suggested command: %s", commandStyle.Sprint(resp.Command))
		if resp.Gate == domain.GateDisplayOnly {
			noteStyle.Println("Command not executed. Use -i to execute with confirmation.")
		} else {
			noteStyle.Println("Confirmation required but stdin is not a terminal; command not executed.")
		}
	case domain.OutcomeAborted:
		noteStyle.Println("Execution cancelled by user.")
	case domain.OutcomeExecute:
		if resp.ExecutionResult != nil && resp.ExecutionResult.Ran && resp.ExecutionResult.ExitCode != 0 {
			pterm.Warning.Printfln("Command finished with exit code %d", resp.ExecutionResult.ExitCode)
		}
	}
}

// RenderDoctor prints a diagnostics report.
func RenderDoctor(report domain.HealthReport) {
	for _, check := range report.Checks {
		switch check.Status {
		case domain.HealthOK:
			pterm.Success.Printfln("%s: %s", check.Name, check.Details)
		case domain.HealthWarn:
			pterm.Warning.Printfln("%s: %s", check.Name, check.Details)
		default:
			pterm.Error.Printfln("%s: %s", check.Name, check.Details)
		}
	}
	if len(report.Models) > 0 {
		pterm.Println()
		pterm.Println("Installed models:")
		for _, model := range report.Models {
			pterm.Printfln("  - %s", model)
		}
	}
}
