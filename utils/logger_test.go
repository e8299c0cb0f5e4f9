package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closer, err := NewLogger("")
	if err != nil {
		t.Fatal(err)
	}
	logger.Printf("dropped")
	if err = closer.Close(); err != nil {
		t.Errorf("Expected no-op close, got %v", err)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.log")
	logger, closer, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Printf("generation %d", 7)
	if err = closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "generation 7") {
		t.Errorf("Expected log line in file, got %q", data)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	if _, _, err := NewLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("Expected error for unwritable path")
	}
}
