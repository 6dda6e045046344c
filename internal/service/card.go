package service

import (
	"context"
	"fmt"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/repository"
	"flashcards/internal/srs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CardService handles card-related business logic
type CardService struct {
	cardRepo  repository.CardRepository
	scheduler *srs.Scheduler
	logger    *zap.Logger
}

// NewCardService creates a new card service
func NewCardService(cardRepo repository.CardRepository, scheduler *srs.Scheduler, logger *zap.Logger) *CardService {
	return &CardService{
		cardRepo:  cardRepo,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Add saves a new card in the given deck
func (s *CardService) Add(ctx context.Context, deckID uuid.UUID, front, back string) (*domain.Card, error) {
	front, back = strings.TrimSpace(front), strings.TrimSpace(back)
	if front == "" || back == "" {
		return nil, domain.ErrEmptyCardSide
	}

	card := domain.NewCard(deckID, front, back)
	if err := s.cardRepo.Insert(ctx, card); err != nil {
		return nil, err
	}

	s.logger.Info("Card added", zap.Stringer("card_id", card.ID), zap.Stringer("deck_id", deckID))
	return card, nil
}

// List returns the cards of a deck
func (s *CardService) List(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	return s.cardRepo.FindByDeck(ctx, deckID)
}

// Delete removes a single card
func (s *CardService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.cardRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Card deleted", zap.Stringer("card_id", id))
	return nil
}

// Review reschedules a card after the user rated it and persists the result.
// The card is updated in place.
func (s *CardService) Review(ctx context.Context, card *domain.Card, rating srs.Rating) error {
	if !rating.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRating, rating)
	}

	next := s.scheduler.Review(*card, rating)
	if err := s.cardRepo.UpdateSchedule(ctx, card.ID, next); err != nil {
		return err
	}
	card.Schedule(next)

	s.logger.Debug("Card reviewed",
		zap.Stringer("card_id", card.ID),
		zap.Stringer("rating", rating),
		zap.Float64("ease_factor", next.EaseFactor),
		zap.Float64("interval", next.Interval),
	)
	return nil
}
