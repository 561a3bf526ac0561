package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"chatty", log.InfoLevel},
		{"Fatal", log.FatalLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLoggingFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, "warn", false)
	t.Cleanup(func() { SetupLogging(&bytes.Buffer{}, "info", false) })

	Info("hidden")
	Warn("shown", "path", "/tmp/A.java")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "/tmp/A.java") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestSetupLoggingVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, "error", true)
	t.Cleanup(func() { SetupLogging(&bytes.Buffer{}, "info", false) })

	Debug("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("verbose should enable debug output: %q", buf.String())
	}
}

func TestCreated(t *testing.T) {
	var buf bytes.Buffer
	Created(&buf, "class", "com.example.Foo", "/src/Foo.java")

	out := buf.String()
	for _, want := range []string{"created class", "com.example.Foo", "/src/Foo.java"} {
		if !strings.Contains(out, want) {
			t.Errorf("Created() output %q missing %q", out, want)
		}
	}
}
