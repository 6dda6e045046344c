// Package srs implements the simplified spaced-repetition update applied
// after each study review.
//
// The ease factor is unbounded: Hard may drive it below zero
// and Easy has no ceiling.
package srs

import (
	"math"
	"time"

	"flashcards/internal/domain"
)

// Next computes the schedule that follows a review rated r.
// An invalid rating leaves ease factor and interval unchanged.
func Next(p Params, easeFactor, interval float64, r Rating, now time.Time) domain.Schedule {
	newEase := easeFactor
	newInterval := interval

	switch r {
	case Easy:
		newEase = easeFactor + p.EasyBonus
		newInterval = math.Max(p.MinInterval, interval*newEase)
	case Medium:
		newInterval = math.Max(p.MinInterval, interval*easeFactor)
	case Hard:
		newEase = easeFactor - p.HardPenalty
		newInterval = p.ResetInterval
	}

	return domain.Schedule{
		EaseFactor:   newEase,
		Interval:     newInterval,
		LastReviewed: now,
	}
}

// Scheduler applies Next with fixed params and a clock
type Scheduler struct {
	params Params
	now    func() time.Time
}

// NewScheduler creates a scheduler with default params and the wall clock
func NewScheduler() *Scheduler {
	return &Scheduler{params: DefaultParams(), now: time.Now}
}

// NewSchedulerWithClock creates a scheduler reading time from now
func NewSchedulerWithClock(p Params, now func() time.Time) *Scheduler {
	return &Scheduler{params: p, now: now}
}

// Review returns the next schedule for card rated r
func (s *Scheduler) Review(card domain.Card, r Rating) domain.Schedule {
	return Next(s.params, card.EaseFactor, card.Interval, r, s.now())
}
