package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Buffers holds the two grids a simulation alternates between.
// Grids are never allocated after NewBuffers; stepping only swaps their roles.
type Buffers struct {
	grids   [2]*Grid
	current int // index of the grid holding the latest generation
}

// NewBuffers creates a randomly seeded front grid and an empty back grid of the same size
func NewBuffers(width, height int, rng *rand.Rand) (*Buffers, error) {
	front, err := NewGrid(width, height, InitRandomUniform, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBuffers] failed to create front grid")
	}

	back, err := NewGrid(width, height, InitEmpty, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBuffers] failed to create back grid")
	}

	return &Buffers{grids: [2]*Grid{front, back}}, nil
}

// Front returns the grid holding the latest generation
func (b *Buffers) Front() *Grid {
	return b.grids[b.current]
}

// Back returns the grid the next generation will be written into
func (b *Buffers) Back() *Grid {
	return b.grids[1-b.current]
}

// Step computes the next generation into the back grid and makes it the front
func (b *Buffers) Step() (*Grid, error) {
	if err := ApplyRule(b.Front(), b.Back()); err != nil {
		return nil, errors.Wrap(err, "[Step] failed to apply rule")
	}
	b.Swap()
	return b.Front(), nil
}

// Swap exchanges the roles of the two grids
func (b *Buffers) Swap() {
	b.current = 1 - b.current
}
