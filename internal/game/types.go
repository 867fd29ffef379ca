// apps/solver/internal/game/types.go
//
// Core type definitions for the puzzle oracle.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Game: state for a single game played against a known answer.

package game

import "github.com/robalobadob/wordle/apps/solver/internal/solver"

// Mark represents the evaluation result for a single letter in a guess.
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer (or is used up).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Tier converts a mark into the solver's feedback tier.
func (m Mark) Tier() solver.Tier {
	switch m {
	case MarkHit:
		return solver.TierCorrect
	case MarkPresent:
		return solver.TierWrongPosition
	}
	return solver.TierAbsent
}

// Game holds the state of a single game.
type Game struct {
	ID       string              // Unique game identifier (random hex string).
	Answer   string              // The solution word (always lowercase).
	Rows     int                 // Maximum number of scored guesses (typically 6).
	Guesses  []string            // Scored guesses so far (lowercased).
	Rejected []string            // Guesses refused as not in the word list.
	Finished bool                // True once the game is over (won or lost).
	Won      bool                // True if the game was finished with a win.
	allowed  map[string]struct{} // nil accepts every well-formed word
}
