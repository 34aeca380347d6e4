// ckpt is a command line tool to snapshot the current working copy:
// it stages all pending changes, commits them, and pushes the result
// to the configured upstream.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/ckpt-sh/ckpt/internal/xec"
	"go.abhg.dev/log/silog"
)

func main() {
	logger := silog.New(os.Stderr, &silog.Options{
		Level: silog.LevelInfo,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		select {
		case <-sigc:
			logger.Info("Cleaning up. Press Ctrl-C again to exit immediately.")
			cancel()
		case <-ctx.Done():
		}
	}()

	var cmd mainCmd
	parser, err := kong.New(&cmd,
		kong.Name("ckpt"),
		kong.Description("ckpt stages all changes, commits them, "+
			"and pushes the result to the configured upstream."),
		kong.Bind(logger),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Vars{
			"defaultMessage": _defaultMessage,
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		logger.Fatalf("ckpt: %v", err)
	}

	if err := kctx.Run(); err != nil {
		logger.Errorf("ckpt: %v", err)
		os.Exit(exitCode(err))
	}
}

// exitCode reports the exit code for the given error,
// mirroring the underlying process exit code when one is available.
func exitCode(err error) int {
	var exitErr *xec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
