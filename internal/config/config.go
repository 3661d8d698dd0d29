// Package config provides configuration management for the fibheap
// application: it defines AppConfig, parses command-line flags, and applies
// environment variable overrides for flags not explicitly set on the
// command line. Grounded on the teacher's internal/config/config.go.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibheap/internal/apperrors"
)

// EnvPrefix is the prefix for every environment variable fibheap reads.
const EnvPrefix = "FIBHEAP_"

// Default configuration values.
const (
	DefaultBudget = 16000
	DefaultPort   = "8080"
)

// AppConfig aggregates the application's configuration, parsed from
// command-line flags and environment variable overrides.
type AppConfig struct {
	// Budget is the total budget passed to heap.New: the heap emits one
	// free block per Fibonacci number <= Budget.
	Budget int
	// Interactive starts the application in menu-driven REPL mode.
	Interactive bool
	// ServerMode starts the application as an HTTP server.
	ServerMode bool
	// Port is the port to listen on in server mode.
	Port string
	// MaxRuntime bounds how long server mode runs before shutting down on
	// its own, in addition to shutting down on SIGINT/SIGTERM. Zero means
	// unlimited. Ignored outside server mode.
	MaxRuntime time.Duration
	// SeedFile, if set, replays a JSON script of operations against a
	// fresh heap before exiting (non-interactive).
	SeedFile string
	// NoColor disables colored CLI output (also respects NO_COLOR).
	NoColor bool
	// JSONOutput, if true, renders one-shot and seed-script output as JSON
	// instead of the colored textual report.
	JSONOutput bool
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.Budget <= 0 {
		return apperrors.NewConfigError("budget must be strictly positive, got %d", c.Budget)
	}
	if c.ServerMode && c.Interactive {
		return apperrors.NewConfigError("-server and -interactive are mutually exclusive")
	}
	if c.ServerMode && c.SeedFile != "" {
		return apperrors.NewConfigError("-server and -seed are mutually exclusive")
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and
// validates the result.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.IntVar(&config.Budget, "budget", DefaultBudget, "Total heap budget: one free block is created per Fibonacci number <= budget.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive menu-driven REPL mode.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.DurationVar(&config.MaxRuntime, "max-runtime", 0, "Maximum duration server mode runs before shutting down on its own (0 = unlimited).")
	fs.StringVar(&config.SeedFile, "seed", "", "Path to a JSON operation script to replay non-interactively.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Render one-shot/seed-script output as JSON.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
