// The main package is the entry point of the fibheap application. It parses
// command-line configuration and dispatches to the configured mode via
// internal/app.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agbru/fibheap/internal/app"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errWriter io.Writer) int {
	if app.HasVersionFlag(args[1:]) {
		app.PrintVersion(out)
		return 0
	}

	application, err := app.New(args, errWriter)
	if err != nil {
		if app.IsHelpError(err) {
			return 0
		}
		fmt.Fprintln(errWriter, "Configuration error:", err)
		return 4
	}

	ctx, cancel := app.SetupSignals(context.Background())
	defer cancel()

	return application.Run(ctx, out)
}
