package srs

// Params holds the constants of the review policy
type Params struct {
	// EasyBonus is added to the ease factor on Easy
	EasyBonus float64
	// HardPenalty is subtracted from the ease factor on Hard
	HardPenalty float64
	// MinInterval is the lower bound of a grown interval
	MinInterval float64
	// ResetInterval is the interval after a Hard review
	ResetInterval float64
}

// DefaultParams returns the policy used by the study loop
func DefaultParams() Params {
	return Params{
		EasyBonus:     0.1,
		HardPenalty:   0.15,
		MinInterval:   1,
		ResetInterval: 1,
	}
}
