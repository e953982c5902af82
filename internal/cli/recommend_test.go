package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRecommendCmd(t *testing.T) {
	cmd := NewRecommendCmd()

	if cmd == nil {
		t.Fatal("NewRecommendCmd() returned nil")
	}

	if cmd.Use != "recommend" {
		t.Errorf("Expected Use='recommend', got %q", cmd.Use)
	}
}

func TestRecommendCommandHelp(t *testing.T) {
	cmd := NewRecommendCmd()
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
		"recommend",
		"--category",
		"--diet",
		"--query",
		"--occasion",
		"--mood",
		"--weather-temp",
		"--weather-condition",
		"--user",
		"--limit",
		"--json",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Help output missing %q", expected)
		}
	}
}

func TestRecommendCommandFlags(t *testing.T) {
	cmd := NewRecommendCmd()

	requiredFlags := []string{
		"category", "diet", "query", "occasion", "mood",
		"weather-temp", "weather-condition", "user", "limit", "json",
	}
	for _, flag := range requiredFlags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Flag %q not registered", flag)
		}
	}
}

func TestRecommendCommandFlagShortcuts(t *testing.T) {
	cmd := NewRecommendCmd()

	tests := []struct {
		long  string
		short string
	}{
		{"category", "c"},
		{"diet", "d"},
		{"query", "q"},
		{"occasion", "o"},
		{"mood", "m"},
		{"user", "u"},
		{"limit", "l"},
		{"json", "j"},
	}

	for _, tt := range tests {
		flag := cmd.Flags().Lookup(tt.long)
		if flag == nil {
			t.Errorf("Flag %q not found", tt.long)
			continue
		}
		if flag.Shorthand != tt.short {
			t.Errorf("Flag %q shorthand = %q, want %q", tt.long, flag.Shorthand, tt.short)
		}
	}
}

func TestRecommendCommandFlagTypes(t *testing.T) {
	cmd := NewRecommendCmd()

	tests := []struct {
		name     string
		flagType string
	}{
		{"category", "string"},
		{"diet", "stringArray"},
		{"weather-temp", "float64"},
		{"limit", "int"},
		{"json", "bool"},
	}

	for _, tt := range tests {
		flag := cmd.Flags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("Flag %q not found", tt.name)
			continue
		}
		if flag.Value.Type() != tt.flagType {
			t.Errorf("Flag %q type = %q, want %q", tt.name, flag.Value.Type(), tt.flagType)
		}
	}
}

func TestRecommendCommandExamples(t *testing.T) {
	cmd := NewRecommendCmd()

	if cmd.Example == "" {
		t.Error("Command missing examples")
	}

	expectedPatterns := []string{
		"quickbites recommend",
		"--query",
		"--diet",
		"--json",
	}

	for _, pattern := range expectedPatterns {
		if !strings.Contains(cmd.Example, pattern) {
			t.Errorf("Examples missing pattern %q", pattern)
		}
	}
}
