// Package logging configures the application logger. The TUI owns stdout,
// so log output goes to a file inside the data directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/listoapp/listo/internal/model"
)

// New builds a file-backed sugared logger from the log configuration.
// An empty cfg.File defaults to listo.log inside dataDir.
func New(cfg model.LogConfig, dataDir string) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	file := cfg.File
	if file == "" {
		file = filepath.Join(dataDir, "listo.log")
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{file}
	zapConfig.ErrorOutputPaths = []string{file}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Used by tests and by code
// paths that run before the real logger exists.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
