// Package debug configures logging for nb.
//
// nb is interactive, so log output never goes to the terminal. Entries are
// written as JSON to a log file (by default ~/.local/state/nb/nb.log).
//
// Debug-level logging is enabled by setting the NB_DEBUG environment variable
// or passing --verbose:
//
//	NB_DEBUG=1 nb
//
// When disabled, the printf-style helpers are no-ops.
//
// Usage:
//
//	import "github.com/vanderheijden86/notebook/pkg/debug"
//
//	func myFunc() {
//	    debug.Log("processing %d items", count)
//	    // ...
//	    debug.LogTiming("myFunc", elapsed)
//	}
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu sync.RWMutex
	// enabled is true when NB_DEBUG is set or SetEnabled(true) was called
	enabled bool
	// sugar backs the printf-style helpers
	sugar = zap.NewNop().Sugar()
)

func init() {
	if os.Getenv("NB_DEBUG") != "" {
		enabled = true
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
// It only affects loggers built afterwards with New.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
}

// New builds the application logger writing JSON lines to path and installs
// it as the backend of the package-level helpers. An empty path disables
// logging and returns a no-op logger.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.Sampling = nil
	if Enabled() {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	SetLogger(logger)
	return logger, nil
}

// SetLogger routes the package-level helpers through logger.
func SetLogger(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = logger.Sugar()
}

func current() (*zap.SugaredLogger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return sugar, enabled
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	s, on := current()
	if !on {
		return
	}
	s.Debugf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	s, on := current()
	if !on {
		return
	}
	s.Debugw("timing", "name", name, "took", d)
}

// LogEnterExit logs function entry and exit with timing.
// Usage:
//
//	func myFunc() {
//	    defer debug.LogEnterExit("myFunc")()
//	    // ...
//	}
func LogEnterExit(name string) func() {
	s, on := current()
	if !on {
		return func() {}
	}
	s.Debugf("-> %s", name)
	start := time.Now()
	return func() {
		s.Debugf("<- %s (%v)", name, time.Since(start))
	}
}

// Trace is an alias for LogEnterExit for convenience.
var Trace = LogEnterExit
