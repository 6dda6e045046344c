package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when user-supplied values are rejected
	ErrValidation = errors.New("validation failed")

	// ErrEmptyDeckName is returned when a deck is created without a name
	ErrEmptyDeckName = fmt.Errorf("%w: deck name cannot be empty", ErrValidation)

	// ErrEmptyCardSide is returned when a card has an empty front or back
	ErrEmptyCardSide = fmt.Errorf("%w: front and back cannot be empty", ErrValidation)

	// ErrInvalidImport is returned when an import file cannot be read or parsed
	ErrInvalidImport = errors.New("invalid import file")

	// ErrExportFailed is returned when an export file cannot be written
	ErrExportFailed = errors.New("export failed")

	// ErrDeckNotFound is returned when an operation targets a missing deck
	ErrDeckNotFound = errors.New("deck not found")

	// ErrInvalidRating is returned for a rating outside Easy, Medium, Hard
	ErrInvalidRating = errors.New("invalid rating")
)

// IsUserError reports whether err should be shown to the user
// instead of ending the session
func IsUserError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidImport) ||
		errors.Is(err, ErrExportFailed)
}
