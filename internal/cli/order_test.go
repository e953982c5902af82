package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewOrderCmd(t *testing.T) {
	cmd := NewOrderCmd()

	if cmd == nil {
		t.Fatal("NewOrderCmd() returned nil")
	}

	if cmd.Use != "order [item names...]" {
		t.Errorf("Expected Use='order [item names...]', got %q", cmd.Use)
	}
}

func TestOrderCommandFlags(t *testing.T) {
	cmd := NewOrderCmd()

	requiredFlags := []string{"discount", "json"}
	for _, flag := range requiredFlags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Flag %q not registered", flag)
		}
	}
}

func TestOrderCommandRequiresItems(t *testing.T) {
	cmd := NewOrderCmd()
	cmd.SetArgs([]string{})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when no item names are given")
	}
}

func TestOrderCommandHelp(t *testing.T) {
	cmd := NewOrderCmd()
	cmd.SetArgs([]string{"--help"})

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("Execute() with --help failed: %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"order", "--discount", "--json"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Help output missing %q", expected)
		}
	}
}
