package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/rules"
	"github.com/sheikhrachel/termlife/utils"
)

// initializeGame sets up the initial game state sized to the surface
func initializeGame(surface model.Surface, config utils.Config, logger *log.Logger) (*model.Simulation, error) {
	rng := rand.New(rand.NewSource(config.RandomSeed()))
	stats := utils.NewStats(config.StagnationWindow)
	return model.NewSimulation(surface, config, rng, stats, logger)
}

// displayGameInfo logs the initial game information
func displayGameInfo(logger *log.Logger, config utils.Config, sim *model.Simulation) {
	grid := sim.Grid()
	logger.Printf("rule %s | grid %dx%d | initial living cells: %d",
		rules.Notation, grid.Width(), grid.Height(), grid.CountLivingCells())
	logger.Printf("frame delay: %v | max generations: %d | press %q to quit",
		config.FrameDelay, config.MaxGenerations, model.QuitKey)
}

// displaySummary prints the final stats once the terminal has been released
func displaySummary(w io.Writer, sim *model.Simulation) {
	stats := sim.Stats()
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		sim.Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
	if stats.Stagnant() {
		fmt.Fprintf(w, "Pattern stagnated at generation %d\n", stats.StagnantSince)
	}
}

// watchSignals cancels the run on SIGINT or SIGTERM so the terminal is restored before exit
func watchSignals(ctx context.Context, cancel context.CancelFunc, logger *log.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Printf("received %v, shutting down", sig)
		cancel()
	case <-ctx.Done():
	}
	return nil
}
