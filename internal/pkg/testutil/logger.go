package testutil

import (
	"strings"
	"testing"

	"github.com/orlox/medusa/internal/pkg/config"
	"github.com/orlox/medusa/internal/pkg/logger"
)

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// SetupTestLogger returns a debug-level logger that writes through t.Log.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	return logger.NewConsoleLogger(config.LogLevelDebug, testWriter{t: t})
}
