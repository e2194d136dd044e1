// Package main is the entry point for the ecstagger Lambda and its local tooling.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecstagger/cmd/ecstagger/commands"
	"go.trai.ch/ecstagger/internal/app"
	_ "go.trai.ch/ecstagger/internal/wiring"
)

// lambdaRuntimeAPIEnv is set by the Lambda execution environment.
const lambdaRuntimeAPIEnv = "AWS_LAMBDA_RUNTIME_API"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The deployed bootstrap binary is started without arguments.
	if len(args) == 0 && os.Getenv(lambdaRuntimeAPIEnv) != "" {
		args = []string{"serve"}
	}

	// 1. Components are only built by commands that need them
	var components *app.Components
	cli := commands.New(func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, err
		}
		components = c
		return c, nil
	})
	cli.SetArgs(args)

	// 2. Execution
	if err := cli.Execute(ctx); err != nil {
		if components != nil {
			components.Logger.Error(err)
			return 1
		}
		// Logger is not available if initialization failed
		_, _ = fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}
	return 0
}
