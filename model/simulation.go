package model

import (
	"context"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/utils"
)

// State is the lifecycle state of a Simulation
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// generationsPerIteration is how many generations run between input polls
const generationsPerIteration = 2

// Simulation drives the double-buffered generation loop against a Surface
type Simulation struct {
	surface Surface
	buffers *Buffers
	config  utils.Config
	stats   *utils.Stats
	logger  *log.Logger

	state      State
	generation int
}

// NewSimulation sizes both buffers from the surface, seeds the front one and starts Running.
// stats and logger may be nil.
func NewSimulation(
	surface Surface,
	config utils.Config,
	rng *rand.Rand,
	stats *utils.Stats,
	logger *log.Logger,
) (*Simulation, error) {
	width, height := surface.Dimensions()
	buffers, err := NewBuffers(width, height, rng)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewSimulation] cannot start on a %dx%d surface", width, height)
	}

	if stats == nil {
		stats = utils.NewStats(config.StagnationWindow)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Simulation{
		surface: surface,
		buffers: buffers,
		config:  config,
		stats:   stats,
		logger:  logger,
		state:   Running,
	}, nil
}

// State returns the current lifecycle state
func (s *Simulation) State() State {
	return s.state
}

// Generation returns how many generations have been computed
func (s *Simulation) Generation() int {
	return s.generation
}

// Grid returns the latest generation
func (s *Simulation) Grid() *Grid {
	return s.buffers.Front()
}

// Stats returns the running statistics
func (s *Simulation) Stats() *utils.Stats {
	return s.stats
}

// Run loops until the quit key is pressed, ctx is cancelled or the generation limit is hit.
// Each iteration computes and renders two generations, then polls input once.
func (s *Simulation) Run(ctx context.Context) error {
	for s.state == Running {
		for i := 0; i < generationsPerIteration; i++ {
			if err := s.advance(ctx); err != nil {
				return errors.Wrapf(err, "[Run] generation %d", s.generation)
			}
			if s.limitReached() {
				s.stop("generation limit reached")
				break
			}
		}

		if key, ok := s.surface.PollInput(); ok && key == QuitKey {
			s.stop("quit key pressed")
		}
		if ctx.Err() != nil {
			s.stop("context done")
		}
	}
	return nil
}

// advance computes one generation, renders it and waits out the frame delay
func (s *Simulation) advance(ctx context.Context) error {
	start := time.Now()

	grid, err := s.buffers.Step()
	if err != nil {
		return err
	}
	s.surface.Render(grid)
	s.generation++

	if s.stats.Update(s.generation, grid.CountLivingCells(), grid.Hash(), time.Since(start)) {
		s.logger.Printf("generation %d: pattern is stagnant", s.generation)
	}

	if s.config.FrameDelay > 0 {
		timer := time.NewTimer(s.config.FrameDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	return nil
}

func (s *Simulation) limitReached() bool {
	return s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations
}

func (s *Simulation) stop(reason string) {
	if s.state == Stopped {
		return
	}
	s.state = Stopped
	s.logger.Printf("stopping after %d generations: %s", s.generation, reason)
}
