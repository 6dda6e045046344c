package app

import (
	"fmt"

	"flashcards/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds a production JSON logger writing to the configured sink
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}

	return zcfg.Build()
}

// syncLogger flushes buffered entries. Syncing a terminal fails on some
// platforms, so errors are only reported for file sinks.
func syncLogger(logger *zap.Logger, sink string) error {
	err := logger.Sync()
	if sink == "stderr" || sink == "stdout" {
		return nil
	}
	return err
}
