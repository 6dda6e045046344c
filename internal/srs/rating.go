package srs

import "fmt"

// Rating is the user's judgement of how hard a card was to recall
type Rating int

const (
	Easy Rating = iota + 1
	Medium
	Hard
)

var ratingNames = [...]string{Easy: "Easy", Medium: "Medium", Hard: "Hard"}

// Ratings lists every rating in menu order
func Ratings() []Rating {
	return []Rating{Easy, Medium, Hard}
}

// IsValid reports whether r is one of Easy, Medium, Hard
func (r Rating) IsValid() bool {
	return r >= Easy && r <= Hard
}

// String returns the rating name, or "Rating(n)" for invalid values
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}
