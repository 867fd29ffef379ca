// apps/solver/internal/solver/record.go
//
// Per-letter feedback and the GuessRecord built from one scored guess.
//
// Tiers use the digits players type when scoring a guess:
//   0 = absent, 1 = present in another position, 2 = correct.
// A guess the puzzle refused as "not a word" is scored with the literal
// string "invalid", which marks every position with TierInvalid.
//
// A GuessRecord is validated once at construction and is immutable; all
// derived views (correct/wrong positions, present/absent letters) are
// computed up front.

package solver

import (
	"fmt"
	"strings"
)

// Tier is the feedback classification of one letter occurrence.
type Tier int8

const (
	TierInvalid       Tier = -1 // puzzle rejected the guessed word
	TierAbsent        Tier = 0
	TierWrongPosition Tier = 1
	TierCorrect       Tier = 2
)

func (t Tier) String() string {
	switch t {
	case TierAbsent:
		return "absent"
	case TierWrongPosition:
		return "present"
	case TierCorrect:
		return "correct"
	case TierInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Tier(%d)", int8(t))
}

// InvalidScores is the score input that marks a rejected guess.
const InvalidScores = "invalid"

// LetterFeedback is one letter of a guess plus its tier.
type LetterFeedback struct {
	Letter byte
	Tier   Tier
}

// GuessRecord is one fully scored guess.
type GuessRecord struct {
	feedback [WordLength]LetterFeedback
	correct  [WordLength]byte // 0 where not CORRECT
	wrong    [WordLength]byte // 0 where not WRONG_POSITION
	present  LetterSet
	absent   LetterSet
	invalid  bool
	solved   bool
}

// NewGuessRecord validates fb and derives the cached views.
// Letters are lower-cased; anything outside a–z is rejected.
func NewGuessRecord(fb []LetterFeedback) (GuessRecord, error) {
	var r GuessRecord
	if len(fb) != WordLength {
		return r, fmt.Errorf("%w: got %d", ErrWordLength, len(fb))
	}
	r.solved = true
	for i, f := range fb {
		c := f.Letter
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if idx(c) < 0 {
			return GuessRecord{}, fmt.Errorf("%w: %q at position %d", ErrInvalidLetter, f.Letter, i)
		}
		switch f.Tier {
		case TierCorrect:
			r.correct[i] = c
			r.present = r.present.Add(c)
		case TierWrongPosition:
			r.wrong[i] = c
			r.present = r.present.Add(c)
		case TierAbsent:
			r.absent = r.absent.Add(c)
		case TierInvalid:
			r.invalid = true
		default:
			return GuessRecord{}, fmt.Errorf("%w: %d at position %d", ErrInvalidTier, f.Tier, i)
		}
		if f.Tier != TierCorrect {
			r.solved = false
		}
		r.feedback[i] = LetterFeedback{Letter: c, Tier: f.Tier}
	}
	if r.invalid {
		// A rejected word carries no letter information.
		r.correct, r.wrong = [WordLength]byte{}, [WordLength]byte{}
		r.present, r.absent = 0, 0
	}
	return r, nil
}

// ParseGuess builds a record from a typed word and score string, e.g.
// ParseGuess("crane", "20010") or ParseGuess("xylyl", "invalid").
func ParseGuess(word, scores string) (GuessRecord, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	scores = strings.TrimSpace(scores)
	if len(word) != WordLength {
		return GuessRecord{}, fmt.Errorf("%w: %q", ErrWordLength, word)
	}

	fb := make([]LetterFeedback, WordLength)
	if strings.EqualFold(scores, InvalidScores) {
		for i := range fb {
			fb[i] = LetterFeedback{Letter: word[i], Tier: TierInvalid}
		}
		return NewGuessRecord(fb)
	}
	if len(scores) != WordLength {
		return GuessRecord{}, fmt.Errorf("%w: %q", ErrScoreLength, scores)
	}
	for i := range fb {
		d := scores[i]
		if d < '0' || d > '2' {
			return GuessRecord{}, fmt.Errorf("%w: %q", ErrInvalidTier, scores)
		}
		fb[i] = LetterFeedback{Letter: word[i], Tier: Tier(d - '0')}
	}
	return NewGuessRecord(fb)
}

// Word returns the guessed word, lower case.
func (r GuessRecord) Word() string {
	b := make([]byte, WordLength)
	for i, f := range r.feedback {
		b[i] = f.Letter
	}
	return string(b)
}

// Scores renders the tiers back into input form ("20010" or "invalid").
func (r GuessRecord) Scores() string {
	if r.invalid {
		return InvalidScores
	}
	b := make([]byte, WordLength)
	for i, f := range r.feedback {
		b[i] = byte('0' + f.Tier)
	}
	return string(b)
}

// Feedback returns a copy of the per-position feedback.
func (r GuessRecord) Feedback() []LetterFeedback {
	out := make([]LetterFeedback, WordLength)
	copy(out, r.feedback[:])
	return out
}

// CorrectPositions holds the letter at each CORRECT position, 0 elsewhere.
func (r GuessRecord) CorrectPositions() [WordLength]byte { return r.correct }

// WrongPositions holds the letter at each WRONG_POSITION position, 0 elsewhere.
func (r GuessRecord) WrongPositions() [WordLength]byte { return r.wrong }

// Present is the set of letters scored CORRECT or WRONG_POSITION.
func (r GuessRecord) Present() LetterSet { return r.present }

// Absent is the set of letters scored ABSENT somewhere in this guess.
// It is not a global absence: see the duplicate-letter rule in Build.
func (r GuessRecord) Absent() LetterSet { return r.absent }

func (r GuessRecord) Invalid() bool { return r.invalid }

func (r GuessRecord) Solved() bool { return r.solved }

func (r GuessRecord) String() string {
	return r.Word() + " " + r.Scores()
}
