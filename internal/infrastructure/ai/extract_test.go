package ai

import (
	"testing"

	"github.com/doeshing/ollash/internal/domain"
)

func TestExtractCommand(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain command", "ls -la", "ls -la"},
		{"surrounding whitespace", "  \n ls -la \n", "ls -la"},
		{"bash fence", "```bash\nls -la\n```", "ls -la"},
		{"untagged fence", "```\ndu -sh .\n```", "du -sh ."},
		{"inline backticks", "`ls -la`", "ls -la"},
		{"first line wins", "ls -la\nsome explanation", "ls -la"},
		{"preamble skipped", "Here is the command:\ndf -h", "df -h"},
		{"shell prompt marker", "$ ls -la", "ls -la"},
		{"comment line skipped", "# lists files\nls -la", "ls -la"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractCommand(tc.raw)
			if err != nil {
				t.Fatalf("ExtractCommand(%q) error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("ExtractCommand(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestExtractCommandIsIdempotent(t *testing.T) {
	raws := []string{"```bash\nls -la\n```", "`du -sh .`", "$ df -h", "  tar -czf out.tgz src  "}
	for _, raw := range raws {
		once, err := ExtractCommand(raw)
		if err != nil {
			t.Fatalf("first extraction of %q: %v", raw, err)
		}
		twice, err := ExtractCommand(once)
		if err != nil {
			t.Fatalf("second extraction of %q: %v", once, err)
		}
		if once != twice {
			t.Fatalf("extraction not idempotent: %q -> %q -> %q", raw, once, twice)
		}
	}
}

func TestExtractCommandEmpty(t *testing.T) {
	for _, raw := range []string{"", "   \n\t\n", "```\n```"} {
		_, err := ExtractCommand(raw)
		if domain.KindOf(err) != domain.FailEmptyCommand {
			t.Fatalf("ExtractCommand(%q) error = %v, want empty-command failure", raw, err)
		}
	}
}

func TestExtractCommandRefusal(t *testing.T) {
	_, err := ExtractCommand(RefusalSentinel)
	if domain.KindOf(err) != domain.FailEmptyCommand {
		t.Fatalf("refusal sentinel error = %v, want empty-command failure", err)
	}
}
