package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulator
type Config struct {
	FrameDelay       time.Duration `json:"frame_delay"`
	MaxGenerations   int           `json:"max_generations"`
	Seed             int64         `json:"seed"`
	AliveGlyph       string        `json:"alive_glyph"`
	LogFile          string        `json:"log_file"`
	StagnationWindow int           `json:"stagnation_window"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameDelay:       60 * time.Millisecond,
		MaxGenerations:   0, // run until quit
		Seed:             0, // seed from the clock
		AliveGlyph:       "O",
		LogFile:          "",
		StagnationWindow: 5,
	}
}

// LoadConfig loads configuration from JSON file, starting from the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first field holding an unusable value
func (c Config) Validate() error {
	if c.FrameDelay < 0 {
		return errors.Errorf("frame_delay must not be negative, got %v", c.FrameDelay)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StagnationWindow < 0 {
		return errors.Errorf("stagnation_window must not be negative, got %d", c.StagnationWindow)
	}
	if utf8.RuneCountInString(c.AliveGlyph) != 1 {
		return errors.Errorf("alive_glyph must be a single character, got %q", c.AliveGlyph)
	}
	return nil
}

// Glyph returns the character drawn for living cells
func (c Config) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(c.AliveGlyph)
	return r
}

// RandomSeed returns the configured seed, or one derived from the clock when unset
func (c Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
