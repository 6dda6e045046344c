package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeck_CreatedDisplay(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "morning",
			date:     time.Date(2026, 10, 17, 6, 18, 0, 0, time.Local),
			expected: "October 17th 2026, 6:18:00 am",
		},
		{
			name:     "afternoon on the first",
			date:     time.Date(2024, 6, 1, 15, 4, 5, 0, time.Local),
			expected: "June 1st 2024, 3:04:05 pm",
		},
		{
			name:     "second of the month",
			date:     time.Date(2024, 1, 2, 0, 0, 9, 0, time.Local),
			expected: "January 2nd 2024, 12:00:09 am",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := Deck{CreatedAt: tt.date}
			assert.Equal(t, tt.expected, deck.CreatedDisplay())
		})
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck("Spanish")

	assert.NotEqual(t, uuid.Nil, deck.ID)
	assert.Equal(t, "Spanish", deck.Name)
	assert.False(t, deck.CreatedAt.IsZero())
}

func TestDeckProgress_Add(t *testing.T) {
	reviewed := time.Now()
	cards := []Card{
		{LastReviewed: nil},
		{LastReviewed: nil},
		{LastReviewed: &reviewed, Interval: 31},
		{LastReviewed: &reviewed, Interval: 5},
	}

	var progress DeckProgress
	for _, c := range cards {
		progress.Add(c)
	}

	assert.Equal(t, 4, progress.Total)
	assert.Equal(t, 2, progress.New)
	assert.Equal(t, 1, progress.Mastered)
	assert.Equal(t, 1, progress.Learning)
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(ErrEmptyDeckName))
	assert.True(t, IsUserError(ErrEmptyCardSide))
	assert.True(t, IsUserError(errors.Join(ErrInvalidImport, errors.New("bad csv"))))
	assert.True(t, IsUserError(ErrExportFailed))
	assert.False(t, IsUserError(errors.New("connection refused")))
	assert.False(t, IsUserError(ErrDeckNotFound))
}
