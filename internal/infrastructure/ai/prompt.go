// Package ai implements the inference adapter: prompt construction, the
// HTTP client for the local Ollama generate endpoint, and extraction of a
// single candidate command from the raw model reply.
package ai

import (
	"bytes"
	"strings"
	"text/template"
)

// InstructionHeader is the fixed instruction the model always receives.
// Tests assert its presence in every formatted prompt.
const InstructionHeader = "translate the user's request into a SINGLE executable Linux terminal command"

// RefusalSentinel is what the model is told to answer when the request
// cannot be translated into a command.
const RefusalSentinel = "ERROR: Could not generate command."

// Stop markers keep the model from continuing the few-shot dialogue.
var StopMarkers = []string{"\nUser:", "\nAssistant:"}

const promptTemplate = `You are an expert Linux assistant. Your sole task is to ` + InstructionHeader + `.
DO NOT add explanations, ANY introductory or concluding text, ANY notes.
DO NOT use markdown formatting (like ` + "```bash ... ```" + `).
ONLY return the pure, executable Linux command.
If the request cannot be reasonably translated into a Linux command or is ambiguous,
return the string '` + RefusalSentinel + `'.

Examples:
User: I want to know the size of the current folder
Assistant: du -sh .
User: list the files in long format
Assistant: ls -l
User: delete the temporary file
Assistant: rm temporary.log
User: What's the weather like?
Assistant: ` + RefusalSentinel + `

User: {{.Prompt}}
Assistant:`

type templateData struct {
	Prompt string
}

// FormatPrompt wraps the user's natural-language request in the fixed
// instruction template. Pure string construction, no failure modes beyond a
// template bug.
func FormatPrompt(request string) (string, error) {
	tmpl, err := template.New("prompt").Parse(promptTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Prompt: strings.TrimSpace(request)}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
