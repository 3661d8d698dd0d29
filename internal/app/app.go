// Package app wires configuration, the heap core, and its collaborator
// packages (CLI, server) into the fibheap binary's mode dispatch. Grounded
// on the teacher's internal/app/app.go.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/fibheap/internal/apperrors"
	"github.com/agbru/fibheap/internal/cli"
	"github.com/agbru/fibheap/internal/config"
	"github.com/agbru/fibheap/internal/heap"
	"github.com/agbru/fibheap/internal/logging"
	"github.com/agbru/fibheap/internal/scenario"
	"github.com/agbru/fibheap/internal/server"
	"github.com/agbru/fibheap/internal/ui"
)

// Application aggregates the parsed configuration and the writers the
// running process should use.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New parses command-line arguments into an Application.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "fibheap"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// IsHelpError reports whether err came from the -h/-help flag.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run dispatches to the configured mode and returns a process exit code.
// Modes are tried in the same if-chain order as the teacher: server ->
// interactive REPL -> seed-script one-shot -> default one-shot summary.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if a.Config.ServerMode {
		return a.runServer()
	}
	if a.Config.Interactive {
		return a.runREPL()
	}
	if a.Config.SeedFile != "" {
		return a.runSeedScript(out)
	}
	return a.runSummary(out)
}

func (a *Application) newHeap() *heap.Heap {
	return heap.New(a.Config.Budget, heap.WithLogger(logging.NewDefaultLogger()))
}

// runServer starts the HTTP server mode and blocks until shutdown, bounded
// by an optional max-runtime on top of the usual SIGINT/SIGTERM trigger.
func (a *Application) runServer() int {
	h := a.newHeap()
	srv := server.NewServer(h, a.Config)

	var ctx context.Context
	var lifecycle *CancelFuncs
	if a.Config.MaxRuntime > 0 {
		ctx, lifecycle = SetupLifecycle(context.Background(), a.Config.MaxRuntime)
	} else {
		var stop context.CancelFunc
		ctx, stop = SetupSignals(context.Background())
		lifecycle = &CancelFuncs{StopSignals: stop}
	}
	defer lifecycle.Cleanup()

	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive menu-driven session.
func (a *Application) runREPL() int {
	h := a.newHeap()
	defer h.Teardown()

	repl := cli.NewREPL(h)
	repl.Start()
	return apperrors.ExitSuccess
}

// runSeedScript replays a JSON operation script against a fresh heap,
// non-interactively, then reports the result.
func (a *Application) runSeedScript(out io.Writer) int {
	h := a.newHeap()
	defer h.Teardown()

	ops, err := scenario.LoadFile(a.Config.SeedFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error loading seed script: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	results := scenario.Replay(h, ops)

	if a.Config.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	for i, r := range results {
		if r.Error != "" {
			fmt.Fprintf(out, "%s✗ [%d] %s: %s%s\n", ui.ColorRed(), i, r.Operation.Op, r.Error, ui.ColorReset())
			continue
		}
		fmt.Fprintf(out, "%s✓ [%d] %s%s\n", ui.ColorGreen(), i, r.Operation.Op, ui.ColorReset())
	}
	cli.DisplayHeap(h, out)
	cli.DisplayStats(h, out)
	return apperrors.ExitSuccess
}

// runSummary prints a one-shot snapshot of a freshly-initialized heap, the
// default mode when neither -server, -interactive, nor -seed is given.
func (a *Application) runSummary(out io.Writer) int {
	h := a.newHeap()
	defer h.Teardown()

	if a.Config.JSONOutput {
		snapshot := map[string]any{
			"blocks": h.IterateBlocks(),
			"stats":  h.Stats(),
			"budget": h.TotalBudget(),
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snapshot); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	cli.DisplayHeap(h, out)
	cli.DisplayStats(h, out)
	return apperrors.ExitSuccess
}
