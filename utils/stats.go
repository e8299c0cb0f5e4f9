package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	StagnantSince        int // generation stagnation was first seen, 0 if never

	window  int
	history []string // recent grid hashes for cycle detection
}

// NewStats tracks the last window grid hashes for stagnation; window 0 disables it
func NewStats(window int) *Stats {
	return &Stats{StartTime: time.Now(), window: window}
}

// Update records one generation. It returns true the first time the grid
// matches one of the recent generations, i.e. it became still or periodic.
func (s *Stats) Update(generation, population int, hash string, duration time.Duration) bool {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	if s.window == 0 {
		return false
	}

	stagnant := false
	for _, h := range s.history {
		if h == hash {
			stagnant = true
			break
		}
	}

	s.history = append(s.history, hash)
	if len(s.history) > s.window {
		s.history = s.history[1:]
	}

	if stagnant && s.StagnantSince == 0 {
		s.StagnantSince = generation
		return true
	}
	return false
}

// Stagnant reports whether a repeating state has been seen
func (s *Stats) Stagnant() bool {
	return s.StagnantSince != 0
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
