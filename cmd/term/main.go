// Package main implements the terminal frontend of the CHIP-8 VM
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/internal/cli"
	"github.com/mnafees/c8vm/internal/config"
	"github.com/mnafees/c8vm/internal/loader"
	"github.com/mnafees/c8vm/internal/options"
	"github.com/mnafees/c8vm/pkg/term"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

const name = "c8vm-term"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags(name, os.Args[1:])
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
			os.Exit(1)
		}
		config.CreateLogger(opts).Fatal(err.Error())
	}

	logger := config.CreateLogger(opts)
	logger.Info(name, log.String("version", buildinfo.Version(version, commit, date)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error("Emulation failed", nil, log.Err(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options.Program, logger *log.Logger) error {
	rom, err := loader.Load(opts.Input)
	if err != nil {
		return err
	}
	vm := internal.NewC8VM(internal.WithLogger(logger), internal.WithTrace(opts.Trace))
	if err := vm.LoadROM(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	return term.New(vm, opts, logger).Run(ctx)
}
