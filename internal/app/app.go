// Package app holds the process-wide resources of a session: the
// configuration, the database handle and the repositories built on it.
package app

import (
	"database/sql"
	"fmt"
	"io"

	"flashcards/internal/config"
	"flashcards/internal/handler"
	"flashcards/internal/prompt"
	"flashcards/internal/repository"
	"flashcards/internal/repository/postgres"
	"flashcards/internal/repository/sqlite"
	"flashcards/internal/service"
	"flashcards/internal/srs"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// App owns the database handle for the lifetime of a session
type App struct {
	cfg    *config.Config
	db     *sql.DB
	decks  repository.DeckRepository
	cards  repository.CardRepository
	logger *zap.Logger
}

// Open connects to the configured database and prepares its schema
func Open(cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger}

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.decks = sqlite.NewDeckRepo(db)
		a.cards = sqlite.NewCardRepo(db)

	case config.DriverPostgres:
		db, err := postgres.Connect(cfg.DSN())
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db, logger); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		a.decks = postgres.NewDeckRepo(db)
		a.cards = postgres.NewCardRepo(db)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	logger.Info("Database connection established", zap.String("driver", cfg.Database.Driver))
	return a, nil
}

// Handler builds the interactive session over the given streams
func (a *App) Handler(in io.Reader, out io.Writer) *handler.Handler {
	deckService := service.NewDeckService(a.decks, a.cards, a.logger)
	cardService := service.NewCardService(a.cards, srs.NewScheduler(), a.logger)
	progressService := service.NewProgressService(a.decks, a.cards, a.logger)
	transferService := service.NewTransferService(a.decks, a.cards, a.cfg.ExportDir, a.logger)

	return handler.NewHandler(
		prompt.NewConsole(in, out),
		deckService,
		cardService,
		progressService,
		transferService,
		a.logger,
	)
}

// Close releases the database handle and flushes the logger
func (a *App) Close() error {
	err := a.db.Close()
	if err == nil {
		a.logger.Info("Database connection closed")
	}
	return multierr.Append(err, syncLogger(a.logger, a.cfg.Log.File))
}
