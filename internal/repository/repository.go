package repository

import (
	"context"

	"flashcards/internal/domain"

	"github.com/google/uuid"
)

// DeckRepository defines deck data operations
type DeckRepository interface {
	Insert(ctx context.Context, deck *domain.Deck) error
	FindAll(ctx context.Context) ([]domain.Deck, error)
	// FindByID returns nil, nil when the deck does not exist
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CardRepository defines card data operations
type CardRepository interface {
	Insert(ctx context.Context, card *domain.Card) error
	FindAll(ctx context.Context) ([]domain.Card, error)
	FindByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
	UpdateSchedule(ctx context.Context, id uuid.UUID, s domain.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDeck(ctx context.Context, deckID uuid.UUID) error
}
