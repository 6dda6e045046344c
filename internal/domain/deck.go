package domain

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// UnknownDeckName is shown for cards whose deck no longer exists
const UnknownDeckName = "Unknown Deck"

// Deck represents a named collection of cards
type Deck struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewDeck creates a deck with a fresh id
func NewDeck(name string) *Deck {
	return &Deck{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// CreatedDisplay returns the creation time as "October 17th 2026, 6:18:00 am"
func (d Deck) CreatedDisplay() string {
	t := d.CreatedAt.Local()
	return t.Format("January ") + humanize.Ordinal(t.Day()) + t.Format(" 2006, 3:04:05 pm")
}

// DeckProgress holds per-deck counts of cards by mastery tier
type DeckProgress struct {
	DeckID   uuid.UUID
	DeckName string
	Total    int
	Mastered int
	Learning int
	New      int
}

// Add counts one card into the matching tier bucket
func (p *DeckProgress) Add(c Card) {
	p.Total++
	switch c.Tier() {
	case TierNew:
		p.New++
	case TierMastered:
		p.Mastered++
	default:
		p.Learning++
	}
}
