// apps/solver/internal/game/engine.go
//
// Puzzle oracle: plays the part of the word game so the solver can be run
// end to end (CLI simulate, tests).
// Responsibilities:
//   - Create games with a fixed answer and an optional allowed-word set.
//   - Validate guesses (length, alphabetic) and refuse words outside the
//     allowed set the way the real puzzle does: as an invalid-word record,
//     not an error.
//   - Score guesses using the classic two-pass algorithm and hand them back
//     as solver.GuessRecord values.
//   - Track state transitions: playing → won/lost.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

const defaultRows = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrBadAnswer    = errors.New("answer must be 5 letters a-z")
)

// New constructs a game for answer. allowed may be nil to accept any
// well-formed word; the answer is always accepted.
func New(answer string, allowed map[string]struct{}) (*Game, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if !solver.ValidWord(answer) {
		return nil, fmt.Errorf("%w: %q", ErrBadAnswer, answer)
	}
	return &Game{
		ID:      randomID(),
		Answer:  answer,
		Rows:    defaultRows,
		Guesses: []string{},
		allowed: allowed,
	}, nil
}

// ApplyGuess scores guess and returns the record plus the new state string
// ("playing"/"won"/"lost").
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly 5 letters a–z.
//   - A guess outside the allowed set is answered with an invalid-word
//     record and does not use up a row.
func (g *Game) ApplyGuess(guess string) (solver.GuessRecord, string, error) {
	if g.Finished {
		return solver.GuessRecord{}, g.state(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if !solver.ValidWord(guess) {
		return solver.GuessRecord{}, g.state(), fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if !g.isAllowed(guess) {
		g.Rejected = append(g.Rejected, guess)
		rec, err := solver.ParseGuess(guess, solver.InvalidScores)
		return rec, g.state(), err
	}

	marks := scoreGuess(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	fb := make([]solver.LetterFeedback, len(marks))
	for i, m := range marks {
		fb[i] = solver.LetterFeedback{Letter: guess[i], Tier: m.Tier()}
	}
	rec, err := solver.NewGuessRecord(fb)
	if err != nil {
		return solver.GuessRecord{}, g.state(), err
	}

	if rec.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return rec, g.state(), nil
}

func (g *Game) isAllowed(w string) bool {
	if g.allowed == nil || w == g.Answer {
		return true
	}
	_, ok := g.allowed[w]
	return ok
}

// state reports a coarse string representation of the current game state.
func (g *Game) state() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// scoreGuess implements the standard two-pass scoring algorithm.
//
// Pass 1: mark exact matches as Hit and count the remaining answer letters.
// Pass 2: for each non-hit guess letter, mark Present while unused copies
// remain in the answer, otherwise Miss.
func scoreGuess(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else {
			counts[answer[i]-'a']++
		}
	}
	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
