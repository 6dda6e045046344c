package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"flashcards/internal/app"
	"flashcards/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var errInterrupted = errors.New("interrupted")

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flashcards",
		Short: "Study flashcard decks from the terminal",
		Long: `Flashcards is an interactive flashcard manager. Create decks, add cards,
study them with a simple spaced-repetition schedule, track your progress
and move decks in and out as CSV or JSON files.

Configuration is read from the environment (or a .env file):
  DB_DRIVER    sqlite (default) or postgres
  DB_PATH      sqlite database file (default flashcards.db)
  DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD, DB_SSLMODE
               postgres connection settings
  LOG_LEVEL    debug, info, warn (default) or error
  LOG_FILE     log destination (default stderr)
  EXPORT_DIR   directory exported decks are written to (default .)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// run holds the database handle for the whole session and releases it on
// every exit path, including SIGINT and SIGTERM.
func run(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := app.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	a, err := app.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err))
		_ = logger.Sync()
		return err
	}
	defer func() {
		err = multierr.Append(err, a.Close())
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- a.Handler(in, out).Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("Session ended with error", zap.Error(err))
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
		return errInterrupted
	}
}
