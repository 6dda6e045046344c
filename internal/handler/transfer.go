package handler

import (
	"context"
	"fmt"

	"flashcards/internal/transfer"
)

func (h *Handler) importDeck(ctx context.Context) error {
	path, err := h.console.Input("Enter the path to the import file:")
	if err != nil {
		return err
	}
	format, err := h.pickFormat("Select the file type:")
	if err != nil {
		return err
	}

	stop := h.console.Spin("Importing deck...")
	deck, count, err := h.transferService.Import(ctx, path, format)
	stop()
	if err != nil {
		return fmt.Errorf("importing deck: %w", err)
	}

	h.console.Success("Deck \"%s\" imported successfully with %d cards! 🎉", deck.Name, count)
	return nil
}

func (h *Handler) exportDeck(ctx context.Context) error {
	deck, err := h.pickDeck(ctx, "Choose a deck to export:", noDecks)
	if err != nil || deck == nil {
		return err
	}
	format, err := h.pickFormat("Select the export file type:")
	if err != nil {
		return err
	}

	stop := h.console.Spin("Exporting deck...")
	path, err := h.transferService.Export(ctx, deck.ID, format)
	stop()
	if err != nil {
		return fmt.Errorf("exporting deck: %w", err)
	}

	h.console.Success("Deck \"%s\" exported successfully as %s! 📤", deck.Name, format)
	h.console.Info("Saved to %s", path)
	return nil
}

func (h *Handler) pickFormat(label string) (transfer.Format, error) {
	formats := transfer.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}

	idx, err := h.console.Select(label, names)
	if err != nil {
		return 0, err
	}
	return formats[idx], nil
}
