package handler

import (
	"context"
	"strconv"

	"flashcards/internal/domain"
)

const noDecks = "No decks available. Create a deck first!"

func (h *Handler) createDeck(ctx context.Context) error {
	name, err := h.console.Input("Enter the name of the new deck:")
	if err != nil {
		return err
	}

	stop := h.console.Spin("Creating deck...")
	deck, err := h.deckService.Create(ctx, name)
	stop()
	if err != nil {
		return err
	}

	h.console.Success("Deck \"%s\" created successfully! 🎉", deck.Name)
	return nil
}

func (h *Handler) viewDecks(ctx context.Context) error {
	decks, err := h.deckService.List(ctx)
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		h.console.Info(noDecks)
		return nil
	}

	rows := make([][]string, len(decks))
	for i, d := range decks {
		rows[i] = []string{d.Name, d.CreatedDisplay()}
	}
	h.console.Table([]string{"Deck Name", "Created At"}, rows)
	return nil
}

func (h *Handler) deleteDeck(ctx context.Context) error {
	deck, err := h.pickDeck(ctx, "Choose a deck to delete:", "No decks available to delete.")
	if err != nil || deck == nil {
		return err
	}

	stop := h.console.Spin("Deleting deck...")
	err = h.deckService.Delete(ctx, deck.ID)
	stop()
	if err != nil {
		return err
	}

	h.console.Success("Deck and associated flashcards deleted successfully! 🗑️")
	return nil
}

func (h *Handler) viewProgress(ctx context.Context) error {
	progress, err := h.progressService.Progress(ctx)
	if err != nil {
		return err
	}
	if len(progress) == 0 {
		h.console.Info("No flashcards yet. Add some cards to track your progress!")
		return nil
	}

	rows := make([][]string, len(progress))
	for i, p := range progress {
		rows[i] = progressRow(p)
	}
	h.console.Table([]string{"Deck", "Total Cards", "Mastered", "Learning", "New"}, rows)
	return nil
}

func progressRow(p domain.DeckProgress) []string {
	return []string{
		p.DeckName,
		strconv.Itoa(p.Total),
		strconv.Itoa(p.Mastered),
		strconv.Itoa(p.Learning),
		strconv.Itoa(p.New),
	}
}
