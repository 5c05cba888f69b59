// Package logging provides categorized zap loggers for countersense.
// Categories map to pipeline stages so a single stage can be inspected
// without drowning in the rest. Logging is a silent no-op until Initialize
// is called.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a pipeline stage.
type Category string

const (
	CategoryPerception Category = "perception" // normalization and reconciliation
	CategoryUpstream   Category = "upstream"   // model calls
	CategoryCounter    Category = "counter"    // operation execution
	CategoryCLI        Category = "cli"        // command surface
)

var (
	mu   sync.RWMutex
	root *zap.Logger
)

// Initialize builds the root logger. debug selects development encoding at
// debug level; otherwise production encoding at info level.
func Initialize(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	root = logger
	mu.Unlock()
	return nil
}

// Get returns the named logger for a category. Before Initialize it returns
// a no-op logger, so library code can log unconditionally.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if root == nil {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if root != nil {
		_ = root.Sync()
	}
}
