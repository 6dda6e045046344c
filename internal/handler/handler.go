package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"flashcards/internal/domain"
	"flashcards/internal/prompt"
	"flashcards/internal/service"

	"go.uber.org/zap"
)

const (
	bannerText = "Quiz time"
	goodbye    = "Thank you for using Flashcard Study System. Goodbye! 👋"
)

// Handler runs the interactive session
type Handler struct {
	console         *prompt.Console
	deckService     *service.DeckService
	cardService     *service.CardService
	progressService *service.ProgressService
	transferService *service.TransferService
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	console *prompt.Console,
	deckService *service.DeckService,
	cardService *service.CardService,
	progressService *service.ProgressService,
	transferService *service.TransferService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		console:         console,
		deckService:     deckService,
		cardService:     cardService,
		progressService: progressService,
		transferService: transferService,
		logger:          logger,
	}
}

// Run shows the menu until the user exits or the input ends.
// Input errors are reported and the session goes on; any other error ends it.
func (h *Handler) Run(ctx context.Context) error {
	h.console.Banner(bannerText)

	actions := Actions()
	labels := menuLabels()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		idx, err := h.console.Select("What would you like to do?", labels)
		if errors.Is(err, io.EOF) {
			h.logger.Info("Input closed, ending session")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		action := actions[idx]
		if action == ActionExit {
			h.console.Info(goodbye)
			return nil
		}

		err = h.dispatch(ctx, action)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			h.logger.Info("Input closed, ending session", zap.Stringer("action", action))
			return nil
		case domain.IsUserError(err):
			h.logger.Warn("Action rejected", zap.Stringer("action", action), zap.Error(err))
			h.console.Error("Error: %v", err)
		default:
			h.logger.Error("Action failed", zap.Stringer("action", action), zap.Error(err))
			return err
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, a Action) error {
	switch a {
	case ActionCreateDeck:
		return h.createDeck(ctx)
	case ActionViewDecks:
		return h.viewDecks(ctx)
	case ActionAddFlashcard:
		return h.addFlashcard(ctx)
	case ActionStudyDeck:
		return h.studyDeck(ctx)
	case ActionViewProgress:
		return h.viewProgress(ctx)
	case ActionDeleteDeck:
		return h.deleteDeck(ctx)
	case ActionDeleteFlashcard:
		return h.deleteFlashcard(ctx)
	case ActionImportDeck:
		return h.importDeck(ctx)
	case ActionExportDeck:
		return h.exportDeck(ctx)
	case ActionExit:
		return nil
	}
	return fmt.Errorf("unknown action %s", a)
}

// pickDeck lets the user choose a deck. It returns nil after printing
// emptyMsg when there are no decks.
func (h *Handler) pickDeck(ctx context.Context, label, emptyMsg string) (*domain.Deck, error) {
	decks, err := h.deckService.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(decks) == 0 {
		h.console.Info(emptyMsg)
		return nil, nil
	}

	names := make([]string, len(decks))
	for i, d := range decks {
		names[i] = d.Name
	}

	idx, err := h.console.Select(label, names)
	if err != nil {
		return nil, err
	}
	return &decks[idx], nil
}
