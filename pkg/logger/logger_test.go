package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
}

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(&buf, level)
	l.clock = fixedClock
	return l, &buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	if strings.Contains(out, "DEBUG") || strings.Contains(out, "INFO") {
		t.Errorf("levels below threshold emitted: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "ERROR") {
		t.Errorf("levels at or above threshold missing: %q", out)
	}
}

func TestLineFormat(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	l.Info("validated %d documents", 3)

	got := buf.String()
	want := "09:30:00.000 INFO  mits-validator: validated 3 documents\n"
	if got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestWithSubsystem(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	l.With("engine").Warn("slow phase")

	if !strings.Contains(buf.String(), "mits-validator/engine:") {
		t.Errorf("subsystem prefix missing: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	l, buf := newTestLogger(LevelNone)
	l.Error("dropped")
	if buf.Len() != 0 {
		t.Fatalf("LevelNone emitted: %q", buf.String())
	}

	l.SetLevel(LevelError)
	l.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("message missing after SetLevel: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"off", LevelNone, false},
		{"none", LevelNone, false},
		{"loud", LevelNone, true},
		{"", LevelNone, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelDebug.String() != "DEBUG" || Level(99).String() != "" {
		t.Error("Level.String mismatch")
	}
}
