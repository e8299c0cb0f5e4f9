package utils

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger returns a logger writing to path, or discarding output when path is empty.
// The terminal belongs to the renderer while the simulation runs, so nothing goes to stderr.
func NewLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %+v", path)
	}
	return log.New(f, "termlife ", log.LstdFlags|log.Lmicroseconds), f, nil
}
