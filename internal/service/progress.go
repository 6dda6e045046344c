package service

import (
	"context"

	"flashcards/internal/domain"
	"flashcards/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProgressService aggregates study progress across decks
type ProgressService struct {
	deckRepo repository.DeckRepository
	cardRepo repository.CardRepository
	logger   *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(deckRepo repository.DeckRepository, cardRepo repository.CardRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		deckRepo: deckRepo,
		cardRepo: cardRepo,
		logger:   logger,
	}
}

// Progress buckets every card by deck and mastery tier.
// Decks appear in the order their first card is seen; decks without cards are omitted.
func (s *ProgressService) Progress(ctx context.Context) ([]domain.DeckProgress, error) {
	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var order []uuid.UUID
	groups := make(map[uuid.UUID]*domain.DeckProgress)
	for _, c := range cards {
		p, ok := groups[c.DeckID]
		if !ok {
			p = &domain.DeckProgress{DeckID: c.DeckID}
			groups[c.DeckID] = p
			order = append(order, c.DeckID)
		}
		p.Add(c)
	}

	result := make([]domain.DeckProgress, 0, len(order))
	for _, id := range order {
		p := groups[id]

		deck, err := s.deckRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if deck != nil {
			p.DeckName = deck.Name
		} else {
			p.DeckName = domain.UnknownDeckName
			s.logger.Warn("Cards reference a missing deck", zap.Stringer("deck_id", id), zap.Int("cards", p.Total))
		}

		result = append(result, *p)
	}

	return result, nil
}
