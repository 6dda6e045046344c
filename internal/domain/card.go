package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultEaseFactor is the ease factor every new card starts with
	DefaultEaseFactor = 2.5
	// DefaultInterval is the interval of a card that was never reviewed
	DefaultInterval = 0.0
	// MasteredInterval is the interval a card must exceed to count as mastered
	MasteredInterval = 30.0
)

// Card represents a flashcard owned by a deck
type Card struct {
	ID           uuid.UUID
	DeckID       uuid.UUID
	Front        string
	Back         string
	CreatedAt    time.Time
	LastReviewed *time.Time
	EaseFactor   float64
	Interval     float64
}

// NewCard creates a card with default scheduling fields
func NewCard(deckID uuid.UUID, front, back string) *Card {
	return &Card{
		ID:         uuid.New(),
		DeckID:     deckID,
		Front:      front,
		Back:       back,
		CreatedAt:  time.Now(),
		EaseFactor: DefaultEaseFactor,
		Interval:   DefaultInterval,
	}
}

// Tier returns the derived mastery tier of the card
func (c Card) Tier() MasteryTier {
	return ClassifyTier(c.LastReviewed, c.Interval)
}

// Schedule applies a scheduling result to the card
func (c *Card) Schedule(s Schedule) {
	reviewed := s.LastReviewed
	c.EaseFactor = s.EaseFactor
	c.Interval = s.Interval
	c.LastReviewed = &reviewed
}

// Schedule is the set of fields written back after a review
type Schedule struct {
	EaseFactor   float64
	Interval     float64
	LastReviewed time.Time
}

// CardContent is the exported shape of a card, without scheduling fields
type CardContent struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Content returns the front/back pair of the card
func (c Card) Content() CardContent {
	return CardContent{Front: c.Front, Back: c.Back}
}
