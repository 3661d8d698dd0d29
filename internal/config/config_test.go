package config

import (
	"io"
	"os"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("fibheap", []string{}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if cfg.Budget != DefaultBudget {
			t.Errorf("Expected default Budget %d, got %d", DefaultBudget, cfg.Budget)
		}
		if cfg.Port != DefaultPort {
			t.Errorf("Expected default Port %s, got %s", DefaultPort, cfg.Port)
		}
		if cfg.Interactive || cfg.ServerMode || cfg.NoColor || cfg.JSONOutput {
			t.Error("Expected all boolean flags to default false")
		}
	})

	t.Run("ValidFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{
			"-budget", "100",
			"-server",
			"-port", "9090",
			"-json",
		}
		cfg, err := ParseConfig("fibheap", args, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if cfg.Budget != 100 {
			t.Errorf("Expected Budget 100, got %d", cfg.Budget)
		}
		if !cfg.ServerMode {
			t.Error("Expected ServerMode true")
		}
		if cfg.Port != "9090" {
			t.Errorf("Expected Port 9090, got %s", cfg.Port)
		}
		if !cfg.JSONOutput {
			t.Error("Expected JSONOutput true")
		}
	})

	t.Run("MaxRuntimeFlag", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("fibheap", []string{"-max-runtime", "5m"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.MaxRuntime != 5*time.Minute {
			t.Errorf("Expected MaxRuntime 5m, got %s", cfg.MaxRuntime)
		}
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		env := map[string]string{
			"FIBHEAP_BUDGET":      "500",
			"FIBHEAP_SERVER":      "false",
			"FIBHEAP_PORT":        "3000",
			"FIBHEAP_INTERACTIVE": "true",
			"FIBHEAP_NO_COLOR":    "true",
			"FIBHEAP_JSON":        "true",
			"FIBHEAP_SEED":        "script.txt",
			"FIBHEAP_MAX_RUNTIME": "90s",
		}

		for k, v := range env {
			os.Setenv(k, v)
		}
		defer func() {
			for k := range env {
				os.Unsetenv(k)
			}
		}()

		cfg, err := ParseConfig("fibheap", []string{}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if cfg.Budget != 500 {
			t.Errorf("Expected Budget 500 from env, got %d", cfg.Budget)
		}
		if cfg.ServerMode {
			t.Error("Expected ServerMode false from env")
		}
		if !cfg.Interactive {
			t.Error("Expected Interactive true from env")
		}
		if cfg.Port != "3000" {
			t.Errorf("Expected Port 3000, got %s", cfg.Port)
		}
		if !cfg.NoColor {
			t.Error("Expected NoColor true from env")
		}
		if !cfg.JSONOutput {
			t.Error("Expected JSONOutput true from env")
		}
		if cfg.SeedFile != "script.txt" {
			t.Errorf("Expected SeedFile script.txt, got %s", cfg.SeedFile)
		}
		if cfg.MaxRuntime != 90*time.Second {
			t.Errorf("Expected MaxRuntime 90s from env, got %s", cfg.MaxRuntime)
		}
	})

	t.Run("FlagPrecedenceOverEnv", func(t *testing.T) {
		os.Setenv("FIBHEAP_BUDGET", "200")
		defer os.Unsetenv("FIBHEAP_BUDGET")

		cfg, err := ParseConfig("fibheap", []string{"-budget", "300"}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if cfg.Budget != 300 {
			t.Errorf("Expected Budget 300 from flag, got %d", cfg.Budget)
		}
	})

	t.Run("InvalidFlags", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig("fibheap", []string{"-unknown"}, io.Discard)
		if err == nil {
			t.Error("Expected error for unknown flag")
		}
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig("fibheap", []string{"-budget", "0"}, io.Discard)
		if err == nil {
			t.Error("Expected error for non-positive budget")
		}
	})

	t.Run("MutuallyExclusiveServerAndInteractive", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig("fibheap", []string{"-server", "-interactive"}, io.Discard)
		if err == nil {
			t.Error("Expected error for -server combined with -interactive")
		}
	})

	t.Run("MutuallyExclusiveServerAndSeed", func(t *testing.T) {
		t.Parallel()
		_, err := ParseConfig("fibheap", []string{"-server", "-seed", "script.txt"}, io.Discard)
		if err == nil {
			t.Error("Expected error for -server combined with -seed")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		c := AppConfig{Budget: 100}
		if err := c.Validate(); err != nil {
			t.Errorf("Unexpected validation error: %v", err)
		}
	})

	t.Run("InvalidBudget", func(t *testing.T) {
		t.Parallel()
		c := AppConfig{Budget: 0}
		if err := c.Validate(); err == nil {
			t.Error("Expected error for zero budget")
		}
	})

	t.Run("NegativeBudget", func(t *testing.T) {
		t.Parallel()
		c := AppConfig{Budget: -1}
		if err := c.Validate(); err == nil {
			t.Error("Expected error for negative budget")
		}
	})

	t.Run("ServerAndInteractive", func(t *testing.T) {
		t.Parallel()
		c := AppConfig{Budget: 100, ServerMode: true, Interactive: true}
		if err := c.Validate(); err == nil {
			t.Error("Expected error for ServerMode combined with Interactive")
		}
	})

	t.Run("ServerAndSeed", func(t *testing.T) {
		t.Parallel()
		c := AppConfig{Budget: 100, ServerMode: true, SeedFile: "script.txt"}
		if err := c.Validate(); err == nil {
			t.Error("Expected error for ServerMode combined with SeedFile")
		}
	})
}

func TestEnvHelpers(t *testing.T) {
	prefix := EnvPrefix

	t.Run("getEnvString", func(t *testing.T) {
		key := "TEST_STRING"
		os.Setenv(prefix+key, "value")
		defer os.Unsetenv(prefix + key)
		if val := getEnvString(key, "default"); val != "value" {
			t.Errorf("Expected 'value', got '%s'", val)
		}
		if val := getEnvString("NONEXISTENT", "default"); val != "default" {
			t.Errorf("Expected 'default', got '%s'", val)
		}
	})

	t.Run("getEnvInt", func(t *testing.T) {
		key := "TEST_INT"
		os.Setenv(prefix+key, "-123")
		defer os.Unsetenv(prefix + key)
		if val := getEnvInt(key, 0); val != -123 {
			t.Errorf("Expected -123, got %d", val)
		}
		os.Setenv(prefix+"INVALID_INT", "abc")
		defer os.Unsetenv(prefix + "INVALID_INT")
		if val := getEnvInt("INVALID_INT", 999); val != 999 {
			t.Errorf("Expected default 999 for invalid input, got %d", val)
		}
	})

	t.Run("getEnvDuration", func(t *testing.T) {
		key := "TEST_DURATION"
		os.Setenv(prefix+key, "2m30s")
		defer os.Unsetenv(prefix + key)
		if val := getEnvDuration(key, 0); val != 2*time.Minute+30*time.Second {
			t.Errorf("Expected 2m30s, got %s", val)
		}
		os.Setenv(prefix+"INVALID_DURATION", "notaduration")
		defer os.Unsetenv(prefix + "INVALID_DURATION")
		if val := getEnvDuration("INVALID_DURATION", time.Minute); val != time.Minute {
			t.Errorf("Expected default 1m for invalid input, got %s", val)
		}
	})

	t.Run("getEnvBool", func(t *testing.T) {
		key := "TEST_BOOL"
		os.Setenv(prefix+key, "true")
		defer os.Unsetenv(prefix + key)
		if val := getEnvBool(key, false); !val {
			t.Error("Expected true")
		}

		os.Setenv(prefix+key, "0")
		if val := getEnvBool(key, true); val {
			t.Error("Expected false for '0'")
		}

		os.Setenv(prefix+key, "invalid")
		if val := getEnvBool(key, true); !val {
			t.Error("Expected default true for invalid input")
		}
	})
}
