// Command szdb inspects and explodes encoded archive databases.
//
// Usage:
//
//	szdb [flags] info <database>
//	szdb [flags] list <database>
//	szdb -out <dir> [flags] explode <database>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/felixge/fgprof"
)

type config struct {
	action    string
	input     string
	outDir    string
	overwrite bool
	threads   string
	verbose   bool
	fgProfile string
}

var errUsage = errors.New("usage: szdb [flags] info|list|explode <database>")

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(cfg, logger); err != nil {
		logger.Error(cfg.action+" failed", "error", err)
		os.Exit(1)
	}
}

//nolint:gocritic // hugeParam acceptable for config struct in CLI tool
func execute(cfg config, logger *slog.Logger) error {
	if cfg.fgProfile != "" {
		fgFile, err := os.Create(cfg.fgProfile)
		if err != nil {
			return err
		}
		stopFG := fgprof.Start(fgFile, fgprof.FormatPprof)
		defer func() {
			if err := stopFG(); err != nil {
				logger.Error("fgprof stop", "error", err)
			}
			_ = fgFile.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx, cfg, os.Stdout, logger)
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("szdb", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.outDir, "out", "", "output directory for explode")
	fs.BoolVar(&cfg.overwrite, "overwrite", false, "overwrite existing partition files")
	fs.StringVar(&cfg.threads, "mt", "", "worker threads: a count, on, or off (default one per CPU)")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	fs.StringVar(&cfg.fgProfile, "fgprofile", "", "write fgprof (wall clock) profile to file")
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 2 {
		return config{}, errUsage
	}
	cfg.action, cfg.input = fs.Arg(0), fs.Arg(1)
	switch cfg.action {
	case "info", "list":
	case "explode":
		if cfg.outDir == "" {
			return config{}, fmt.Errorf("%w: explode requires -out", errUsage)
		}
	default:
		return config{}, fmt.Errorf("%w: unknown action %q", errUsage, cfg.action)
	}
	return cfg, nil
}
