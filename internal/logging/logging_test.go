package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogWritesTargetAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Info)
	l.Log(Info, "editor", "applied event")

	out := buf.String()
	if !strings.Contains(out, "editor") || !strings.Contains(out, "applied event") {
		t.Errorf("log output missing target/message: %s", out)
	}
}

func TestLogFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Warn)
	l.Log(Debug, "editor", "should not appear")
	l.Log(Info, "editor", "should not appear either")

	if buf.Len() != 0 {
		t.Errorf("expected no output below min level, got %s", buf.String())
	}

	l.Log(Warn, "editor", "should appear")
	if buf.Len() == 0 {
		t.Error("expected output at min level")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log(Error, "editor", "should not panic")
}

func TestDiscardDropsEverything(t *testing.T) {
	l := Discard()
	l.Log(Error, "editor", "dropped")
}
