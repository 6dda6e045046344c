package testutil

import (
	"time"

	"flashcards/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDeck creates a test deck
func NewTestDeck(name string) *domain.Deck {
	return &domain.Deck{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// NewTestCard creates a never-reviewed test card
func NewTestCard(deckID uuid.UUID, front, back string) domain.Card {
	return *domain.NewCard(deckID, front, back)
}

// NewReviewedCard creates a test card reviewed once with the given interval
func NewReviewedCard(deckID uuid.UUID, interval float64) domain.Card {
	c := domain.NewCard(deckID, "front", "back")
	c.Schedule(domain.Schedule{
		EaseFactor:   domain.DefaultEaseFactor,
		Interval:     interval,
		LastReviewed: time.Now(),
	})
	return *c
}
