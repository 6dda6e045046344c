package handler

import (
	"context"
	"fmt"

	"flashcards/internal/srs"
)

func (h *Handler) addFlashcard(ctx context.Context) error {
	deck, err := h.pickDeck(ctx, "Choose a deck to add the flashcard to:", noDecks)
	if err != nil || deck == nil {
		return err
	}

	front, err := h.console.Input("Enter the question or front side of the flashcard:")
	if err != nil {
		return err
	}
	back, err := h.console.Input("Enter the answer or back side of the flashcard:")
	if err != nil {
		return err
	}

	stop := h.console.Spin("Adding flashcard...")
	_, err = h.cardService.Add(ctx, deck.ID, front, back)
	stop()
	if err != nil {
		return err
	}

	h.console.Success("Flashcard added successfully! 🃏")
	return nil
}

func (h *Handler) studyDeck(ctx context.Context) error {
	deck, err := h.pickDeck(ctx, "Choose a deck to study:", noDecks)
	if err != nil || deck == nil {
		return err
	}

	cards, err := h.cardService.List(ctx, deck.ID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		h.console.Info("This deck has no flashcards yet. Add some cards first!")
		return nil
	}

	ratings := srs.Ratings()
	labels := make([]string, len(ratings))
	for i, r := range ratings {
		labels[i] = ratingLabel(r)
	}

	for i := range cards {
		card := &cards[i]

		h.console.Highlight(card.Front)
		if err := h.console.Pause("Press enter to see the answer..."); err != nil {
			return err
		}
		h.console.Success("Answer: %s", card.Back)

		idx, err := h.console.Select("How difficult was this card?", labels)
		if err != nil {
			return err
		}

		if err := h.cardService.Review(ctx, card, ratings[idx]); err != nil {
			return err
		}
	}

	h.console.Success("\nGreat job! You've reviewed all cards in this deck. 🎉")
	return nil
}

func (h *Handler) deleteFlashcard(ctx context.Context) error {
	deck, err := h.pickDeck(ctx, "Choose a deck:", noDecks)
	if err != nil || deck == nil {
		return err
	}

	cards, err := h.cardService.List(ctx, deck.ID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		h.console.Info("This deck has no flashcards to delete.")
		return nil
	}

	options := make([]string, len(cards))
	for i, c := range cards {
		options[i] = fmt.Sprintf("%s - %s", c.Front, c.Back)
	}

	idx, err := h.console.Select("Choose a flashcard to delete:", options)
	if err != nil {
		return err
	}

	stop := h.console.Spin("Deleting flashcard...")
	err = h.cardService.Delete(ctx, cards[idx].ID)
	stop()
	if err != nil {
		return err
	}

	h.console.Success("Flashcard deleted successfully! 🗑️🃏")
	return nil
}

func ratingLabel(r srs.Rating) string {
	switch r {
	case srs.Easy:
		return "Easy 😊"
	case srs.Medium:
		return "Medium 😐"
	case srs.Hard:
		return "Hard 😓"
	}
	return r.String()
}
