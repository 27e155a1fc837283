package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/custodia-labs/blast-util/internal/adapters/driving/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Operation failed:\n%s\n", err)
		os.Exit(1)
	}

	code := cli.Run(ctx, cli.Env{
		Args:   os.Args[1:],
		Dir:    dir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	stop()
	os.Exit(code)
}
