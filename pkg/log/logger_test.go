package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	tests := []struct {
		name     string
		level    Level
		log      func()
		expected bool
	}{
		{"debug hidden at notice", Notice, func() { logger.Debug("debug message") }, false},
		{"info hidden at notice", Notice, func() { logger.Info("info message") }, false},
		{"notice shown at notice", Notice, func() { logger.Notice("notice message") }, true},
		{"error shown at notice", Notice, func() { logger.Error("error message") }, true},
		{"info shown at info", Info, func() { logger.Infof("info %d", 1) }, true},
		{"debug shown at debug", Debug, func() { logger.Debugf("debug %d", 2) }, true},
		{"warning hidden at error", Error, func() { logger.Warning("warning message") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			SetLevel(tt.level)
			tt.log()

			if got := buf.Len() > 0; got != tt.expected {
				t.Errorf("Expected output=%v, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("renderer").Noticef("rendered %d scanlines", 42)

	out := buf.String()
	if !strings.Contains(out, "[renderer]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
	if !strings.Contains(out, "rendered 42 scanlines") {
		t.Errorf("Expected formatted message in output, got %q", out)
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(Debug)
	defer SetLevel(Notice)

	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("test").Debug("still visible")
	if buf.Len() == 0 {
		t.Error("Expected debug output after replacing the sink")
	}
}

func TestSetLevelIgnoresUnknownLevels(t *testing.T) {
	SetLevel(Warning)
	defer SetLevel(Notice)

	SetLevel(Level(42))
	if got := CurrentLevel(); got != Warning {
		t.Errorf("Expected level %d to be kept, got %d", Warning, got)
	}
}
