package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/repository"
	"flashcards/internal/transfer"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// TransferService imports and exports decks as files
type TransferService struct {
	deckRepo  repository.DeckRepository
	cardRepo  repository.CardRepository
	exportDir string
	logger    *zap.Logger
}

// NewTransferService creates a new transfer service writing exports to exportDir
func NewTransferService(deckRepo repository.DeckRepository, cardRepo repository.CardRepository, exportDir string, logger *zap.Logger) *TransferService {
	return &TransferService{
		deckRepo:  deckRepo,
		cardRepo:  cardRepo,
		exportDir: exportDir,
		logger:    logger,
	}
}

// Import reads a deck file and stores it as a new deck named after the file.
// Cards are inserted one by one; a storage failure midway leaves the
// cards inserted so far in place.
func (s *TransferService) Import(ctx context.Context, path string, format transfer.Format) (*domain.Deck, int, error) {
	path = strings.TrimSpace(path)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if path == "" || name == "" || name == "." {
		return nil, 0, fmt.Errorf("%w: no file name in %q", domain.ErrInvalidImport, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}
	defer f.Close()

	contents, err := transfer.Decode(f, format)
	if err != nil {
		return nil, 0, err
	}

	deck := domain.NewDeck(name)
	if err := s.deckRepo.Insert(ctx, deck); err != nil {
		return nil, 0, err
	}

	for i, c := range contents {
		if err := s.cardRepo.Insert(ctx, domain.NewCard(deck.ID, c.Front, c.Back)); err != nil {
			s.logger.Error("Import stopped midway",
				zap.Stringer("deck_id", deck.ID),
				zap.Int("imported", i),
				zap.Int("total", len(contents)),
				zap.Error(err),
			)
			return nil, i, err
		}
	}

	s.logger.Info("Deck imported",
		zap.Stringer("deck_id", deck.ID),
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("cards", len(contents)),
	)
	return deck, len(contents), nil
}

// Export writes the cards of a deck to <deck name><ext> in the export
// directory and returns the path of the written file.
func (s *TransferService) Export(ctx context.Context, deckID uuid.UUID, format transfer.Format) (string, error) {
	deck, err := s.deckRepo.FindByID(ctx, deckID)
	if err != nil {
		return "", err
	}
	if deck == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrDeckNotFound, deckID)
	}

	cards, err := s.cardRepo.FindByDeck(ctx, deckID)
	if err != nil {
		return "", err
	}

	contents := make([]domain.CardContent, 0, len(cards))
	for _, c := range cards {
		contents = append(contents, c.Content())
	}

	path := filepath.Join(s.exportDir, ExportFileName(deck.Name, format))
	if err := writeFile(path, format, contents); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	s.logger.Info("Deck exported",
		zap.Stringer("deck_id", deckID),
		zap.String("path", path),
		zap.Int("cards", len(contents)),
	)
	return path, nil
}

// ExportFileName returns the file name a deck is exported under.
// Path separators in the deck name are replaced so the file stays in
// the export directory.
func ExportFileName(deckName string, format transfer.Format) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, deckName)
	if name == "" || name == "." || name == ".." {
		name = "deck"
	}
	return name + format.Ext()
}

func writeFile(path string, format transfer.Format, contents []domain.CardContent) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	return transfer.Encode(f, format, contents)
}
