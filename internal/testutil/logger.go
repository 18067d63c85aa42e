package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/sleeper-league-service/internal/logging"
)

// NewBufferLogger returns a debug-level text logger backed by a buffer, plus the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "debug", Output: &buf})
	return logger, &buf
}
