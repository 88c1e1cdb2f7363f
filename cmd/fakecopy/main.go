package main

import (
	"context"
	"errors"
	"fakecopy/internal/log"
	"fakecopy/internal/mirror"
	"fakecopy/internal/settings"
	"fakecopy/pkg/helpers/iout"
	"fakecopy/pkg/helpers/run"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitInternal = 3
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	stg, err := settings.New(args, flag.ContinueOnError)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			settings.Usage(stdout)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		settings.Usage(stderr)
		return exitUsage
	}

	logger, err := log.New(stg.LogLevel, stg.LogJSON)
	if err != nil {
		fmt.Fprintln(stderr, "cannot create logger:", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = mirror.New(logger, iout.NewOSFS(), stg.MirrorOptions(stdout)).Run(ctx)
	if err != nil {
		logger.Error("mirroring aborted", log.Cause(err))
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, run.ErrPanic), errors.Is(err, mirror.ErrPathMirroring):
		return exitInternal
	default:
		return exitFailure
	}
}
