// Package security implements the destructive-command classifier behind the
// safety gate. The base rule tables live in the domain package; this adapter
// optionally extends them from a YAML rules file.
package security

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/ollash/internal/domain"
	"github.com/doeshing/ollash/internal/ports"
)

// Classifier implements the CommandClassifier port.
type Classifier struct {
	commands []string
	prefixes []string
}

// RulesFile is the YAML schema root for user-supplied extensions.
type RulesFile struct {
	Rules struct {
		DestructiveCommands []string `yaml:"destructive_commands"`
		DestructivePrefixes []string `yaml:"destructive_prefixes"`
	} `yaml:"rules"`
}

// NewClassifier builds a classifier from the built-in tables plus any
// extensions found in the rules file. A missing file is not an error.
func NewClassifier(path string) (*Classifier, error) {
	c := &Classifier{
		commands: append([]string(nil), domain.DestructiveCommands...),
		prefixes: append([]string(nil), domain.DestructivePrefixes...),
	}

	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		return c, nil
	}
	var rules RulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, domain.WrapFailure(domain.FailConfig, err, "invalid security rules file %s", path)
	}
	c.commands = appendUnique(c.commands, rules.Rules.DestructiveCommands)
	c.prefixes = appendUnique(c.prefixes, rules.Rules.DestructivePrefixes)
	return c, nil
}

// Classify implements ports.CommandClassifier.
func (c *Classifier) Classify(command string) domain.Classification {
	return domain.ClassifyCommand(command, c.commands, c.prefixes)
}

func appendUnique(base []string, extra []string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, entry := range base {
		seen[entry] = struct{}{}
	}
	for _, entry := range extra {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		base = append(base, entry)
	}
	return base
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

var _ ports.CommandClassifier = (*Classifier)(nil)
