// Skilldeck - a terminal client for the skills service.
//
// Browse, search and sort your skill associations, adjust levels, and
// add skills from the catalog, all without leaving the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lunar-gate/skilldeck/internal/cli"
	"github.com/lunar-gate/skilldeck/internal/config"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load config and open the session store for the persistent
	// tracking ID
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	store, err := session.Open(paths.Database)
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = store.Close()
	}()

	telemetryClient := telemetry.New(store)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
