package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/arthur-debert/dots/internal/cli"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.Run(ctx, args[1:], cli.Streams{In: stdin, Out: stdout, Err: stderr})
}
