package service

import (
	"context"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeckService handles deck-related business logic
type DeckService struct {
	deckRepo repository.DeckRepository
	cardRepo repository.CardRepository
	logger   *zap.Logger
}

// NewDeckService creates a new deck service
func NewDeckService(deckRepo repository.DeckRepository, cardRepo repository.CardRepository, logger *zap.Logger) *DeckService {
	return &DeckService{
		deckRepo: deckRepo,
		cardRepo: cardRepo,
		logger:   logger,
	}
}

// Create saves a new deck with the given name
func (s *DeckService) Create(ctx context.Context, name string) (*domain.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyDeckName
	}

	deck := domain.NewDeck(name)
	if err := s.deckRepo.Insert(ctx, deck); err != nil {
		return nil, err
	}

	s.logger.Info("Deck created", zap.Stringer("deck_id", deck.ID), zap.String("name", deck.Name))
	return deck, nil
}

// List returns all decks
func (s *DeckService) List(ctx context.Context) ([]domain.Deck, error) {
	return s.deckRepo.FindAll(ctx)
}

// Delete removes a deck together with all of its cards.
// Cards go first so a failure never leaves orphans behind.
func (s *DeckService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.cardRepo.DeleteByDeck(ctx, id); err != nil {
		s.logger.Error("Failed to delete deck cards", zap.Stringer("deck_id", id), zap.Error(err))
		return err
	}

	if err := s.deckRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete deck", zap.Stringer("deck_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("Deck deleted", zap.Stringer("deck_id", id))
	return nil
}
