package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/marcelocantos/sift/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.Execute(ctx)
}
