// Command levelsolver finds the best move sequence across timed obstacle courses.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-megaman/levelsolver/internal/cli"
)

func run(ctx context.Context, args []string) int {
	return cli.Run(ctx, os.Stdin, os.Stdout, os.Stderr, args)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args)
	stop()
	os.Exit(code)
}
