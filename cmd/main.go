package main

// Entry point: runs the cobra root command once
// Any returned error is printed and the process exits with status 1

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mario-graph/cmd/commands"
	"mario-graph/internal/infra/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	cancel()
	log.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
