package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/wordcliques/internal/cli"
)

// main is the entrypoint for the wordcliques command.
func main() {
	// Use a minimal logger until the run's own logger is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the command with args, writing to outW and errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cmd := cli.NewCommand(outW, errW, nil)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
