// apps/solver/internal/solver/errors.go
//
// Sentinel errors for guess construction. Callers branch with errors.Is;
// the constructors wrap these with the offending input.

package solver

import "errors"

var (
	// ErrWordLength is returned when a guess does not have WordLength letters.
	ErrWordLength = errors.New("solver: guess must have exactly 5 letters")

	// ErrScoreLength is returned when a score string does not have one digit per letter.
	ErrScoreLength = errors.New("solver: scores must have exactly 5 digits")

	// ErrInvalidLetter is returned for characters outside a–z.
	ErrInvalidLetter = errors.New("solver: guess letters must be a-z")

	// ErrInvalidTier is returned for a score digit other than 0, 1 or 2.
	ErrInvalidTier = errors.New("solver: score digits must be 0, 1 or 2")
)
