package domain

import "strings"

// GateState enumerates the safety-gate entry states derived from CLI flags.
type GateState string

const (
	GateDisplayOnly     GateState = "display_only"
	GateConfirmRequired GateState = "confirm_required"
	GateAutoExecute     GateState = "auto_execute"
)

// GateOutcome is the terminal result of one pass through the gate.
type GateOutcome string

const (
	OutcomeDisplayed GateOutcome = "displayed"
	OutcomeExecute   GateOutcome = "execute"
	OutcomeAborted   GateOutcome = "aborted"
)

// Classification is the verdict of the destructive-command check.
type Classification struct {
	Destructive bool
	Reasons     []string
}

// DestructiveCommands lists command names that trigger a destructive
// classification when they appear as the first token. Case-sensitive,
// enumerable by tests, extendable via the security rules file.
var DestructiveCommands = []string{
	"rm", "mv", "kill", "pkill", "killall", "shutdown", "reboot", "halt",
	"shred", "dd", "mkfs", "fdisk", "userdel", "groupdel", "chmod", "chown",
	"su",
}

// DestructivePrefixes lists multi-word command prefixes that trigger a
// destructive classification when the command line starts with them.
var DestructivePrefixes = []string{
	"docker rm", "docker rmi", "kubectl delete",
}

// SudoToken marks elevated-privilege commands; its presence anywhere in the
// command line makes the command destructive.
const SudoToken = "sudo"

// EntryState derives the gate entry state from the CLI flags. Without the
// interactive flag the gate is terminal in Display-Only and the executor is
// never reached.
func EntryState(interactive, skipConfirm bool) GateState {
	switch {
	case !interactive:
		return GateDisplayOnly
	case skipConfirm:
		return GateAutoExecute
	default:
		return GateConfirmRequired
	}
}

// Decide is the pure gate transition function. Auto-Execute runs even
// destructive commands without prompting; confirmed reflects the user's
// answer and is only consulted in Confirm-Required.
func Decide(state GateState, classification Classification, confirmed bool) GateOutcome {
	switch state {
	case GateDisplayOnly:
		return OutcomeDisplayed
	case GateAutoExecute:
		return OutcomeExecute
	case GateConfirmRequired:
		if confirmed {
			return OutcomeExecute
		}
		return OutcomeAborted
	default:
		return OutcomeDisplayed
	}
}

// ClassifyCommand applies the base destructive-command rules. Infrastructure
// adapters may extend the tables from a rules file; the rule itself stays
// here so it is testable without I/O.
func ClassifyCommand(command string, commands []string, prefixes []string) Classification {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Classification{}
	}

	var cls Classification
	for _, field := range fields {
		if field == SudoToken {
			cls.Destructive = true
			cls.Reasons = append(cls.Reasons, "requires elevated privileges (sudo)")
			break
		}
	}

	first := fields[0]
	for _, name := range commands {
		if first == name {
			cls.Destructive = true
			cls.Reasons = append(cls.Reasons, "'"+name+"' can destroy data or disrupt the system")
			break
		}
	}

	trimmed := strings.TrimSpace(command)
	for _, prefix := range prefixes {
		if trimmed == prefix || strings.HasPrefix(trimmed, prefix+" ") {
			cls.Destructive = true
			cls.Reasons = append(cls.Reasons, "'"+prefix+"' removes managed resources")
			break
		}
	}

	return cls
}
