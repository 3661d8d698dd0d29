package config

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// ─────────────────────────────────────────────────────────────────────────────
// Exhaustive Validation Tests
// ─────────────────────────────────────────────────────────────────────────────

// TestValidateBudget tests all budget validation scenarios.
func TestValidateBudget(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		budget      int
		expectError bool
	}{
		{"NegativeBudget", -1, true},
		{"LargeNegativeBudget", -1000000, true},
		{"ZeroBudget", 0, true},
		{"SmallBudget", 1, false},
		{"DefaultBudget", DefaultBudget, false},
		{"LargeBudget", 1000000, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := AppConfig{Budget: tc.budget}

			err := cfg.Validate()
			if tc.expectError && err == nil {
				t.Error("Expected validation error but got nil")
			}
			if !tc.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

// TestValidateModeExclusions tests every pairwise combination of the
// mutually-exclusive mode flags.
func TestValidateModeExclusions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		cfg         AppConfig
		expectError bool
	}{
		{"ServerAlone", AppConfig{Budget: 10, ServerMode: true}, false},
		{"InteractiveAlone", AppConfig{Budget: 10, Interactive: true}, false},
		{"SeedAlone", AppConfig{Budget: 10, SeedFile: "s.txt"}, false},
		{"ServerAndInteractive", AppConfig{Budget: 10, ServerMode: true, Interactive: true}, true},
		{"ServerAndSeed", AppConfig{Budget: 10, ServerMode: true, SeedFile: "s.txt"}, true},
		{"InteractiveAndSeed", AppConfig{Budget: 10, Interactive: true, SeedFile: "s.txt"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.expectError && err == nil {
				t.Error("Expected validation error but got nil")
			}
			if !tc.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ParseConfig Tests
// ─────────────────────────────────────────────────────────────────────────────

// TestParseConfigDefaults tests that default values are correctly set.
func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	cfg, err := ParseConfig("test", []string{}, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Budget != DefaultBudget {
		t.Errorf("Default Budget: expected %d, got %d", DefaultBudget, cfg.Budget)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Default Port: expected '%s', got '%s'", DefaultPort, cfg.Port)
	}
	if cfg.Interactive {
		t.Error("Default Interactive should be false")
	}
	if cfg.ServerMode {
		t.Error("Default ServerMode should be false")
	}
	if cfg.SeedFile != "" {
		t.Error("Default SeedFile should be empty")
	}
	if cfg.NoColor {
		t.Error("Default NoColor should be false")
	}
	if cfg.JSONOutput {
		t.Error("Default JSONOutput should be false")
	}
}

// TestParseConfigAllFlags tests parsing of the budget, interactive, seed and
// no-color flags together.
func TestParseConfigAllFlags(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	args := []string{
		"-budget", "12345",
		"-interactive",
		"-seed", "/path/to/script.txt",
		"-no-color",
	}

	cfg, err := ParseConfig("test", args, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Budget != 12345 {
		t.Errorf("Budget: expected 12345, got %d", cfg.Budget)
	}
	if !cfg.Interactive {
		t.Error("Interactive should be true")
	}
	if cfg.SeedFile != "/path/to/script.txt" {
		t.Errorf("SeedFile: expected '/path/to/script.txt', got '%s'", cfg.SeedFile)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be true")
	}
}

// TestParseConfigInvalidFlags tests handling of invalid flags.
func TestParseConfigInvalidFlags(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		args []string
	}{
		{"UnknownFlag", []string{"-unknown"}},
		{"InvalidBudgetValue", []string{"-budget", "notanumber"}},
		{"MissingFlagValue", []string{"-budget"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := ParseConfig("test", tc.args, &buf)
			if err == nil {
				t.Error("Expected error for invalid flags")
			}
		})
	}
}

// TestParseConfigValidationErrors tests that validation errors are reported
// on the supplied error writer.
func TestParseConfigValidationErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		args          []string
		errorContains string
	}{
		{"ZeroBudget", []string{"-budget", "0"}, "budget"},
		{"NegativeBudget", []string{"-budget", "-5"}, "budget"},
		{"ServerAndInteractive", []string{"-server", "-interactive"}, "mutually exclusive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := ParseConfig("test", tc.args, &buf)
			if err == nil {
				t.Error("Expected validation error")
			}
			if !strings.Contains(buf.String(), tc.errorContains) {
				t.Errorf("Expected error output to contain %q, got: %s", tc.errorContains, buf.String())
			}
		})
	}
}

// TestParseConfigHelpFlag tests that -h/-help returns an error.
func TestParseConfigHelpFlag(t *testing.T) {
	t.Parallel()

	helpFlags := []string{"-h", "-help", "--help"}

	for _, flag := range helpFlags {
		t.Run(flag, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			_, err := ParseConfig("test", []string{flag}, &buf)
			if err == nil {
				t.Error("Expected error for help flag")
			}
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Tests
// ─────────────────────────────────────────────────────────────────────────────

// TestNoColorFlag tests that -no-color flag exists and works.
func TestNoColorFlag(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer

	cfg, err := ParseConfig("test", []string{"-no-color"}, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be true")
	}
}

// TestParseConfigWithNoColorEnv confirms the config layer's own -no-color
// flag is independent of the process-wide NO_COLOR variable consumed by
// internal/ui; ParseConfig only reacts to FIBHEAP_NO_COLOR.
func TestParseConfigWithNoColorEnv(t *testing.T) {
	oldVal := os.Getenv("NO_COLOR")
	defer os.Setenv("NO_COLOR", oldVal)

	os.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	cfg, err := ParseConfig("test", []string{}, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.NoColor {
		t.Error("Config NoColor should be false; NO_COLOR is handled by internal/ui, not this package")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Boundary Value Tests
// ─────────────────────────────────────────────────────────────────────────────

// TestParseConfigBoundaryValues tests edge cases for numeric values.
func TestParseConfigBoundaryValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"BudgetOne", []string{"-budget", "1"}, false},
		{"BudgetZero", []string{"-budget", "0"}, true},
		{"BudgetNegative", []string{"-budget", "-1"}, true},
		{"PortEmpty", []string{"-port", ""}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			_, err := ParseConfig("test", tc.args, &buf)
			if tc.expectError && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tc.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
