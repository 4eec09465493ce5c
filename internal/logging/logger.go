// Package logging provides config-driven categorized logging for gocheat.
// Every category shares one zap core; debug_mode in the config is the master
// switch and per-category toggles narrow it further. A disabled category gets
// a no-op logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gocheat/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup, config loading
	CategorySheet      Category = "sheet"      // Section registry and runner
	CategoryPlayground Category = "playground" // Snippet interpreter
	CategoryUI         Category = "ui"         // Rendering and the browser
	CategoryConfig     Category = "config"     // Config init/validation
)

// AllCategories lists every category in the order they are reported.
var AllCategories = []Category{
	CategoryBoot,
	CategorySheet,
	CategoryPlayground,
	CategoryUI,
	CategoryConfig,
}

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	cfg     config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
	closer  func() error
)

// Initialize builds the shared logger from cfg. verbose forces debug level and
// turns debug mode on, mirroring the CLI's --verbose flag.
func Initialize(lc config.LoggingConfig, verbose bool) error {
	if verbose {
		lc.Level = "debug"
		lc.DebugMode = true
	}

	zc := zap.NewProductionConfig()
	if lc.Format != "json" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Sampling = nil
	zc.DisableStacktrace = !verbose

	level, err := zapcore.ParseLevel(defaultString(lc.Level, "info"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if lc.File != "" {
		if err := os.MkdirAll(filepath.Dir(lc.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = []string{lc.File}
		zc.ErrorOutputPaths = []string{lc.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Install(logger, lc)
	return nil
}

// Install replaces the shared logger directly. Tests use it with an observer
// core; Initialize uses it after building from config.
func Install(logger *zap.Logger, lc config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()

	base = logger
	cfg = lc
	loggers = make(map[Category]*zap.Logger)
	closer = logger.Sync
}

// Reset drops back to a no-op logger.
func Reset() {
	Install(zap.NewNop(), config.LoggingConfig{})
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	mu.RLock()
	fn := closer
	mu.RUnlock()
	if fn != nil {
		_ = fn()
	}
}

// L returns the uncategorized logger used by the CLI itself.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := base.Named(string(category))
	loggers[category] = l
	return l
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
