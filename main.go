package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to an optional JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(os.Stderr, "termlife: %v\n", err)
			os.Exit(1)
		}
		config = utils.DefaultConfig()
	}

	if err = run(config); err != nil {
		fmt.Fprintf(os.Stderr, "termlife: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of the simulation and releases it on every path
func run(config utils.Config) error {
	logger, logCloser, err := utils.NewLogger(config.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	renderer, err := model.NewTerminalRenderer(config.Glyph())
	if err != nil {
		return errors.Wrap(err, "[run] cannot open terminal")
	}
	defer renderer.Close()

	sim, err := initializeGame(renderer, config, logger)
	if err != nil {
		return err
	}
	displayGameInfo(logger, config, sim)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return sim.Run(egCtx)
	})
	eg.Go(func() error {
		return watchSignals(egCtx, cancel, logger)
	})

	err = eg.Wait()
	renderer.Close()
	if err != nil {
		return errors.Wrap(err, "[run] simulation failed")
	}

	displaySummary(os.Stdout, sim)
	return nil
}
