package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/doeshing/ollash/internal/domain"
)

func TestPrompterAcceptsYes(t *testing.T) {
	for _, answer := range []string{"y\n", "Y\n", "yes\n", "YES\n"} {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(answer), &out)
		ok, err := p.Confirm("ls -la", domain.Classification{})
		if err != nil {
			t.Fatalf("Confirm error: %v", err)
		}
		if !ok {
			t.Errorf("answer %q not accepted", strings.TrimSpace(answer))
		}
	}
}

func TestPrompterRejectsEverythingElse(t *testing.T) {
	for _, answer := range []string{"n\n", "no\n", "\n", "maybe\n"} {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(answer), &out)
		ok, err := p.Confirm("ls -la", domain.Classification{})
		if err != nil {
			t.Fatalf("Confirm error: %v", err)
		}
		if ok {
			t.Errorf("answer %q accepted", strings.TrimSpace(answer))
		}
	}
}

func TestPrompterWarnsOnDestructive(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("n\n"), &out)
	cls := domain.Classification{
		Destructive: true,
		Reasons:     []string{"requires elevated privileges (sudo)"},
	}
	if _, err := p.Confirm("sudo rm -rf /tmp/x", cls); err != nil {
		t.Fatalf("Confirm error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "WARNING") {
		t.Errorf("destructive prompt has no warning:\n%s", text)
	}
	if !strings.Contains(text, "sudo rm -rf /tmp/x") {
		t.Errorf("prompt does not show the command:\n%s", text)
	}
	if !strings.Contains(text, "requires elevated privileges") {
		t.Errorf("prompt does not list reasons:\n%s", text)
	}
}

func TestPrompterBenignHasNoWarning(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("y\n"), &out)
	if _, err := p.Confirm("ls -la", domain.Classification{}); err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if strings.Contains(out.String(), "WARNING") {
		t.Errorf("benign prompt carries a warning:\n%s", out.String())
	}
}

func TestPrompterEOFCountsAsNo(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)
	ok, _ := p.Confirm("ls -la", domain.Classification{})
	if ok {
		t.Fatal("EOF treated as confirmation")
	}
}
