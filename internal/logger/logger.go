package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New builds the application logger: JSON production output when env is
// "production", human-readable development output otherwise. A non-empty
// file redirects all output there.
func New(env, file string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if env == "production" {
		cfg = zap.NewProductionConfig()
	}

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	return cfg.Build()
}

// ForTerminalUI returns a file logger when file is set and a no-op logger
// otherwise, since the TUI owns stdout and stderr.
func ForTerminalUI(env, file string) (*zap.Logger, error) {
	if file == "" {
		return zap.NewNop(), nil
	}
	return New(env, file)
}
