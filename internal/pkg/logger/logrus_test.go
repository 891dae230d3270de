package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugSuppressedByDefault(t *testing.T) {
	log := New(false)
	var buf bytes.Buffer
	log.l.SetOutput(&buf)

	log.Debug("hidden", map[string]interface{}{"key": "value"})
	if buf.Len() != 0 {
		t.Fatalf("debug output emitted at warn level:\n%s", buf.String())
	}

	log.Warn("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn output missing:\n%s", buf.String())
	}
}

func TestSetVerboseEnablesDebugOutput(t *testing.T) {
	log := New(false)
	var buf bytes.Buffer
	log.l.SetOutput(&buf)

	log.SetVerbose(true)
	log.Debug("visible", map[string]interface{}{"key": "value"})
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug output missing after SetVerbose(true):\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "key=value") {
		t.Fatalf("fields missing from debug output:\n%s", buf.String())
	}
}

func TestSetVerboseCanLowerLevelAgain(t *testing.T) {
	log := New(true)
	var buf bytes.Buffer
	log.l.SetOutput(&buf)

	log.SetVerbose(false)
	log.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("debug output emitted after SetVerbose(false):\n%s", buf.String())
	}
}
