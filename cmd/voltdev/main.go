// Package main is the entry point for the voltdev tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/voltdev/cmd/voltdev/commands"
	"go.trai.ch/voltdev/internal/app"
	_ "go.trai.ch/voltdev/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}
	defer func() { _ = components.App.Close() }()

	cli := commands.New(components.App)
	if j, ok := components.Logger.(interface{ SetJSON(bool) }); ok {
		cli.SetJSONHook(j.SetJSON)
	}

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
