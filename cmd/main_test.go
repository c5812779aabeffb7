package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNextCommand(t *testing.T) {
	out, err := run(t, "next", "p5_600_009")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if strings.TrimSpace(out) != "p5_600_010" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := run(t, "next", "p5_600_999"); err == nil {
		t.Fatalf("expected error at the end of the sequence")
	}
}

func TestEndpointCommands(t *testing.T) {
	t.Setenv("SETTINGS_BACKEND", "sqlite")
	t.Setenv("SETTINGS_SQLITE_PATH", filepath.Join(t.TempDir(), "settings.db"))
	const hook = "https://script.google.com/macros/s/XYZ/exec"

	if _, err := run(t, "endpoint", "set", "https://example.com/hook"); err == nil {
		t.Fatalf("expected foreign url to be rejected")
	}
	if _, err := run(t, "endpoint", "set", hook); err != nil {
		t.Fatalf("set: %v", err)
	}
	out, err := run(t, "endpoint", "get")
	if err != nil || strings.TrimSpace(out) != hook {
		t.Fatalf("get: %q, %v", out, err)
	}
	if _, err := run(t, "endpoint", "clear"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if out, _ := run(t, "endpoint", "get"); strings.TrimSpace(out) != "" {
		t.Fatalf("expected cleared url, got %q", out)
	}

	if _, err := run(t, "results", "export", "--out", filepath.Join(t.TempDir(), "r.xlsx")); err == nil {
		t.Fatalf("expected export to fail without an endpoint")
	}
}
