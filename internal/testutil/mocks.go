package testutil

import (
	"context"

	"flashcards/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDeckRepository is a mock for DeckRepository
type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) Insert(ctx context.Context, deck *domain.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckRepository) FindAll(ctx context.Context) ([]domain.Deck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCardRepository is a mock for CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Insert(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) FindAll(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) FindByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, s domain.Schedule) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteByDeck(ctx context.Context, deckID uuid.UUID) error {
	args := m.Called(ctx, deckID)
	return args.Error(0)
}
