// Package logging builds the application logger. The TUI owns the
// terminal, so logs always go to a file, never stdout.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production JSON logger appending to path.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
