package domain

import "time"

// MasteryTier is a card's learning stage, derived on read and never stored
type MasteryTier string

const (
	TierNew      MasteryTier = "new"
	TierLearning MasteryTier = "learning"
	TierMastered MasteryTier = "mastered"
)

// ClassifyTier derives the tier from the last review time and interval
func ClassifyTier(lastReviewed *time.Time, interval float64) MasteryTier {
	if lastReviewed == nil {
		return TierNew
	}
	if interval > MasteredInterval {
		return TierMastered
	}
	return TierLearning
}
