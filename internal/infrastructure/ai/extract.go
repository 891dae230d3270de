package ai

import (
	"strings"

	"github.com/doeshing/ollash/internal/domain"
)

// preamblePrefixes mark chatter lines the model sometimes emits despite the
// instruction. Matched case-insensitively.
var preamblePrefixes = []string{"here is", "here's", "the command is", "sure", "#"}

// ExtractCommand reduces a raw model reply to a single candidate command
// line: strips an enclosing code fence, skips preamble lines, removes inline
// backticks and a leading shell prompt marker, and takes the first non-empty
// line that remains. Idempotent: extracting an already-extracted command
// yields the same string.
func ExtractCommand(raw string) (string, error) {
	text := stripEnclosingFence(strings.TrimSpace(raw))

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isPreamble(line) {
			continue
		}
		line = stripInlineBackticks(line)
		line = stripPromptMarker(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "ERROR:") {
			return "", domain.NewFailure(domain.FailEmptyCommand,
				"the model declined to generate a command (raw reply: %s)", strings.TrimSpace(raw))
		}
		return line, nil
	}

	return "", domain.NewFailure(domain.FailEmptyCommand, "the model returned no usable command")
}

// stripEnclosingFence removes one pair of triple-backtick fences wrapping
// the whole reply, including an optional language tag on the opening fence.
func stripEnclosingFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	inner = strings.TrimLeft(inner, " ")
	for _, tag := range []string{"bash", "shell", "sh"} {
		if strings.HasPrefix(inner, tag+"\n") || inner == tag {
			inner = strings.TrimPrefix(inner, tag)
			break
		}
	}
	return strings.TrimSpace(inner)
}

func stripInlineBackticks(line string) string {
	if len(line) >= 2 && strings.HasPrefix(line, "`") && strings.HasSuffix(line, "`") && !strings.HasPrefix(line, "```") {
		return strings.TrimSpace(line[1 : len(line)-1])
	}
	return line
}

func stripPromptMarker(line string) string {
	for _, marker := range []string{"$ ", "> "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}

func isPreamble(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range preamblePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	// A bare fence line survives stripEnclosingFence when the reply mixes
	// fenced and unfenced text.
	return strings.HasPrefix(line, "```")
}
