package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/rules"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrDimensionMismatch is returned when two grids of different sizes are stepped together
	ErrDimensionMismatch = errors.New("grid dimensions do not match")
	// ErrAliasedBuffers is returned when the source and destination of a step are the same grid
	ErrAliasedBuffers = errors.New("source and destination grids are the same buffer")
)

// InitType selects how a new grid is populated
type InitType int

const (
	// InitEmpty leaves every cell dead
	InitEmpty InitType = iota
	// InitRandomUniform makes each cell alive with probability 1/3
	InitRandomUniform
)

// randomOutcomes is the number of equally likely draws per cell, one of which is alive
const randomOutcomes = 3

func (t InitType) String() string {
	switch t {
	case InitEmpty:
		return "empty"
	case InitRandomUniform:
		return "random-uniform"
	default:
		return fmt.Sprintf("InitType(%d)", int(t))
	}
}

// Grid is one generation of a toroidal board. Any integer coordinate wraps onto a cell.
type Grid struct {
	width  int
	height int
	cells  []bool // row-major, len == width*height
}

// NewGrid creates a grid of the given dimensions populated according to init.
// rng is only consulted for InitRandomUniform and may be nil otherwise.
func NewGrid(width, height int, init InitType, rng *rand.Rand) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}

	switch init {
	case InitEmpty:
	case InitRandomUniform:
		if rng == nil {
			return nil, errors.New("[NewGrid] random initialization requires a source")
		}
		g.Randomize(rng)
	default:
		return nil, errors.Errorf("[NewGrid] unknown init type: %v", init)
	}

	return g, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// wrap is true modulo: the result is always in [0, bound)
func wrap(v, bound int) int {
	return ((v % bound) + bound) % bound
}

// Index maps any coordinate to its storage slot
func (g *Grid) Index(x, y int) int {
	return wrap(y, g.height)*g.width + wrap(x, g.width)
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.Index(x, y)]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[g.Index(x, y)] = alive
}

// NeighborCount counts the living cells among the 8 surrounding the given one
func (g *Grid) NeighborCount(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// Clear clears all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Randomize refills every cell with an independent 1-in-3 chance of life
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = rng.Intn(randomOutcomes) == 0
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ApplyRule writes the generation following source into destination.
// Only source is read, so the order cells are visited in does not matter.
func ApplyRule(source, destination *Grid) error {
	if source == destination {
		return errors.Wrap(ErrAliasedBuffers, "[ApplyRule]")
	}
	if source.width != destination.width || source.height != destination.height {
		return errors.Wrapf(ErrDimensionMismatch, "[ApplyRule] source %dx%d, destination %dx%d",
			source.width, source.height, destination.width, destination.height)
	}

	for y := 0; y < source.height; y++ {
		for x := 0; x < source.width; x++ {
			destination.Set(x, y, rules.ApplyConwayRules(source.NeighborCount(x, y), source.Get(x, y)))
		}
	}
	return nil
}
