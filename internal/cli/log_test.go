package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("info message not logged")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)

	c.Logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message not logged after SetLogLevel")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	prog.done("Sorted 3 nodes")

	out := buf.String()
	if !strings.Contains(out, "Sorted 3 nodes") {
		t.Errorf("output = %q", out)
	}
	// Elapsed duration is appended in parentheses.
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("missing elapsed time: %q", out)
	}
}
