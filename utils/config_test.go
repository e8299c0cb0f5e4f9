package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if config.Glyph() != 'O' {
		t.Errorf("Expected default glyph 'O', got %q", config.Glyph())
	}
	if config.MaxGenerations != 0 {
		t.Errorf("Expected unlimited generations by default, got %d", config.MaxGenerations)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"frame_delay": 1000000, "seed": 99, "alive_glyph": "█"}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.FrameDelay != time.Millisecond {
		t.Errorf("Expected 1ms frame delay, got %v", config.FrameDelay)
	}
	if config.Seed != 99 || config.RandomSeed() != 99 {
		t.Errorf("Expected seed 99, got %d", config.Seed)
	}
	if config.Glyph() != '█' {
		t.Errorf("Expected block glyph, got %q", config.Glyph())
	}
	if config.StagnationWindow != DefaultConfig().StagnationWindow {
		t.Errorf("Expected unset fields to keep defaults, got window %d", config.StagnationWindow)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("Expected a not-exist cause, got %v", err)
	}
	if config != DefaultConfig() {
		t.Error("Expected defaults alongside the error")
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"seed": `},
		{"negative delay", `{"frame_delay": -5}`},
		{"negative limit", `{"max_generations": -1}`},
		{"negative window", `{"stagnation_window": -2}`},
		{"empty glyph", `{"alive_glyph": ""}`},
		{"long glyph", `{"alive_glyph": "OO"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestRandomSeedFromClock(t *testing.T) {
	if DefaultConfig().RandomSeed() == 0 {
		t.Error("Expected a non-zero seed when none is configured")
	}
}
