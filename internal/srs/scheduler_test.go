package srs

import (
	"math"
	"testing"
	"time"

	"flashcards/internal/domain"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func TestNext_Easy(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	params := DefaultParams()

	tests := []struct {
		name             string
		easeFactor       float64
		interval         float64
		expectedEase     float64
		expectedInterval float64
	}{
		{
			name:             "new card",
			easeFactor:       2.5,
			interval:         0,
			expectedEase:     2.6,
			expectedInterval: 1,
		},
		{
			name:             "grown interval uses the new ease factor",
			easeFactor:       2.5,
			interval:         10,
			expectedEase:     2.6,
			expectedInterval: 26,
		},
		{
			name:             "small product is raised to one",
			easeFactor:       1.0,
			interval:         0.5,
			expectedEase:     1.1,
			expectedInterval: 1,
		},
		{
			name:             "no ceiling on ease factor",
			easeFactor:       9.95,
			interval:         2,
			expectedEase:     10.05,
			expectedInterval: 20.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(params, tt.easeFactor, tt.interval, Easy, now)

			assert.InDelta(t, tt.expectedEase, got.EaseFactor, delta)
			assert.InDelta(t, tt.expectedInterval, got.Interval, delta)
			assert.Equal(t, now, got.LastReviewed)
		})
	}
}

func TestNext_Medium(t *testing.T) {
	now := time.Now()
	params := DefaultParams()

	tests := []struct {
		name             string
		easeFactor       float64
		interval         float64
		expectedInterval float64
	}{
		{name: "new card", easeFactor: 2.5, interval: 0, expectedInterval: 1},
		{name: "ten days", easeFactor: 2.5, interval: 10, expectedInterval: 25},
		{name: "low ease factor", easeFactor: 0.2, interval: 3, expectedInterval: 1},
		{name: "fractional interval", easeFactor: 1.5, interval: 3.5, expectedInterval: 5.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(params, tt.easeFactor, tt.interval, Medium, now)

			assert.Equal(t, tt.easeFactor, got.EaseFactor)
			assert.InDelta(t, tt.expectedInterval, got.Interval, delta)
			assert.Equal(t, now, got.LastReviewed)
		})
	}
}

func TestNext_Hard(t *testing.T) {
	now := time.Now()
	params := DefaultParams()

	tests := []struct {
		name         string
		easeFactor   float64
		interval     float64
		expectedEase float64
	}{
		{name: "default ease factor", easeFactor: 2.5, interval: 40, expectedEase: 2.35},
		{name: "below 1.3 is not clamped", easeFactor: 1.3, interval: 3, expectedEase: 1.15},
		{name: "goes negative", easeFactor: 0.1, interval: 0, expectedEase: -0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(params, tt.easeFactor, tt.interval, Hard, now)

			assert.InDelta(t, tt.expectedEase, got.EaseFactor, delta)
			assert.Equal(t, 1.0, got.Interval)
		})
	}
}

func TestNext_Properties(t *testing.T) {
	now := time.Now()
	params := DefaultParams()
	eases := []float64{-1, 0, 0.5, 1.3, 2.5, 4}
	intervals := []float64{0, 0.3, 1, 7, 31, 365}

	for _, e := range eases {
		for _, i := range intervals {
			easy := Next(params, e, i, Easy, now)
			assert.InDelta(t, e+0.1, easy.EaseFactor, delta)
			assert.InDelta(t, math.Max(1, i*(e+0.1)), easy.Interval, delta)

			medium := Next(params, e, i, Medium, now)
			assert.Equal(t, e, medium.EaseFactor)
			assert.InDelta(t, math.Max(1, i*e), medium.Interval, delta)

			hard := Next(params, e, i, Hard, now)
			assert.InDelta(t, e-0.15, hard.EaseFactor, delta)
			assert.Equal(t, 1.0, hard.Interval)
		}
	}
}

func TestNext_RepeatedHardHasNoFloor(t *testing.T) {
	params := DefaultParams()
	ease := 2.5
	for i := 0; i < 20; i++ {
		ease = Next(params, ease, 1, Hard, time.Now()).EaseFactor
	}

	assert.InDelta(t, -0.5, ease, 1e-6)
}

func TestNext_InvalidRatingLeavesValues(t *testing.T) {
	now := time.Now()

	got := Next(DefaultParams(), 2.5, 10, Rating(0), now)

	assert.Equal(t, 2.5, got.EaseFactor)
	assert.Equal(t, 10.0, got.Interval)
	assert.Equal(t, now, got.LastReviewed)
}

func TestScheduler_Review(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSchedulerWithClock(DefaultParams(), func() time.Time { return fixed })
	card := domain.Card{EaseFactor: 2.5, Interval: 10}

	got := s.Review(card, Medium)

	assert.Equal(t, domain.Schedule{EaseFactor: 2.5, Interval: 25, LastReviewed: fixed}, got)
}

func TestRating_String(t *testing.T) {
	assert.Equal(t, "Easy", Easy.String())
	assert.Equal(t, "Medium", Medium.String())
	assert.Equal(t, "Hard", Hard.String())
	assert.Equal(t, "Rating(7)", Rating(7).String())
	assert.False(t, Rating(0).IsValid())
	assert.Equal(t, []Rating{Easy, Medium, Hard}, Ratings())
}
