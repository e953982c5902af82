package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSearchCmd(t *testing.T) {
	cmd := NewSearchCmd()

	if cmd == nil {
		t.Fatal("NewSearchCmd() returned nil")
	}

	if cmd.Use != "search [query]" {
		t.Errorf("Expected Use='search [query]', got %q", cmd.Use)
	}
}

func TestSearchCommandHelp(t *testing.T) {
	cmd := NewSearchCmd()
	cmd.SetArgs([]string{"--help"})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("Execute() with --help failed: %v", err)
	}

	output := buf.String()

	expectedStrings := []string{
		"search",
		"--category",
		"--limit",
		"--json",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Help output missing %q", expected)
		}
	}
}

func TestSearchCommandRequiresQuery(t *testing.T) {
	cmd := NewSearchCmd()
	cmd.SetArgs([]string{})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when no query argument is given")
	}
}

func TestSearchCommandFlags(t *testing.T) {
	cmd := NewSearchCmd()

	requiredFlags := []string{"category", "limit", "json"}
	for _, flag := range requiredFlags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Flag %q not registered", flag)
		}
	}
}
