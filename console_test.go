package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleNoColor(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	c := NewConsole(buf, "never")
	c.Banner("Creating archive...")
	c.Success("done")
	c.Error("broken")
	c.Field("Location", "/tmp/x.zip")
	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Error("escape sequence", out)
	}
	for _, expect := range []string{
		"\n  Creating archive...\n",
		"\n  [SUCCESS] done\n",
		"\n  [ERROR] broken\n",
		"  Location: /tmp/x.zip\n",
	} {
		if !strings.Contains(out, expect) {
			t.Error("missing", expect, out)
		}
	}
}

func TestConsoleAlwaysColor(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	c := NewConsole(buf, "always")
	c.Error("broken")
	if !strings.Contains(buf.String(), "\x1b[31m") {
		t.Error("red expected", buf.String())
	}
}

func TestConsoleAutoNotTerminal(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	c := NewConsole(buf, "auto")
	if c.terminal {
		t.Error("buffer is not a terminal")
	}
	c.Heading("Archive: a.zip")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Error("heading lines", lines)
	}
	if lines[0] != strings.Repeat("=", ruleWidth) {
		t.Error("rule", lines[0])
	}
}
