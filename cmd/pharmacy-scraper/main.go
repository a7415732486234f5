package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/RachelGal/pharmacy-scraper/internal/adapters/driving/cli"
)

func main() {
	// A .env in the working directory supplies environment overrides
	// without exporting them. Variables already set win.
	_ = godotenv.Load()

	// An interrupt cancels the command's context, stopping a run
	// between records.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
