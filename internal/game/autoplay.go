// apps/solver/internal/game/autoplay.go
//
// Autoplay drives a solver session against a game until the game ends or
// the solver runs out of suggestions.

package game

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Step is one scored guess of an autoplayed game.
type Step struct {
	Guess     string `json:"guess"`
	Scores    string `json:"scores"`
	Remaining int    `json:"remaining"`
}

// Outcome summarises an autoplayed game.
type Outcome struct {
	Steps []Step `json:"steps"`
	State string `json:"state"`          // won | lost | stuck
	Last  string `json:"last,omitempty"` // last suggestion, if any
}

// Autoplay guesses opener first, then follows the session's suggestions.
// Invalid-word answers are fed back into the session like any other record.
func Autoplay(g *Game, s *solver.Session, opener string) (Outcome, error) {
	var out Outcome
	guess := opener
	// Rejected guesses do not use up rows, so bound the loop separately.
	for attempts := 0; attempts < g.Rows*4; attempts++ {
		rec, state, err := g.ApplyGuess(guess)
		if err != nil {
			return out, err
		}
		s.Apply(rec)
		plain, _ := s.Remaining()
		out.Steps = append(out.Steps, Step{Guess: rec.Word(), Scores: rec.Scores(), Remaining: plain})
		log.Debug().Str("guess", rec.Word()).Str("scores", rec.Scores()).Int("remaining", plain).Msg("autoplay step")

		if state != "playing" {
			out.State = state
			return out, nil
		}
		next, ok := s.Recommend()
		if !ok {
			out.State = "stuck"
			return out, nil
		}
		out.Last = next
		guess = next
	}
	out.State = "stuck"
	return out, nil
}
