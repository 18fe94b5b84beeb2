// Package main запускает CLI showharvest.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"showharvest/cmd/showharvest/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl+C прерывает сбор, уже собранные треки сохраняются
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.ExecuteContext(ctx)
}
