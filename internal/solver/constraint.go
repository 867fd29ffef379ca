// apps/solver/internal/solver/constraint.go
//
// Constraint records, their conjunction (Predicate), and Build, which folds a
// guess history into one Predicate.
//
// Constraints are plain tagged values evaluated by a single interpreter
// (Constraint.Matches), so a predicate can be inspected, compared in tests,
// and translated into index operations by Collection.
//
// Build rules, per record in history order:
//   1. Invalid guess   → NotEquals(word), nothing else from that record.
//   2. Unsolved guess  → NotEquals(word).
//   3. CORRECT at p    → PositionEquals(p, c).
//   4. WRONG at p      → ContainsNotAt(p, c).
//   5. ABSENT at p     → Excludes(c), unless c is CORRECT/WRONG elsewhere in
//                        the same guess, in which case only NotAt(p, c).

package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags a Constraint.
type Kind uint8

const (
	KindPositionEquals Kind = iota + 1 // word[Position] == Letter
	KindNotAt                          // word[Position] != Letter
	KindContainsNotAt                  // Letter in word, word[Position] != Letter
	KindExcludes                       // Letter not in word
	KindContainsAll                    // every letter of Letters in word
	KindContainsAny                    // some fragment of Fragments is a substring of word
	KindNotEquals                      // word != Word (case-insensitive)
)

var kindNames = map[Kind]string{
	KindPositionEquals: "position_equals",
	KindNotAt:          "not_at",
	KindContainsNotAt:  "contains_not_at",
	KindExcludes:       "excludes",
	KindContainsAll:    "contains_all",
	KindContainsAny:    "contains_any",
	KindNotEquals:      "not_equals",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// cost orders kinds cheapest first. Kinds share the order of declaration.
func (k Kind) cost() int { return int(k) }

// Constraint is one condition over a candidate word. Only the fields relevant
// to Kind are set.
type Constraint struct {
	Kind      Kind
	Position  int
	Letter    byte
	Letters   LetterSet
	Fragments []string
	Word      string
}

func PositionEquals(pos int, c byte) Constraint {
	return Constraint{Kind: KindPositionEquals, Position: pos, Letter: c}
}

func NotAt(pos int, c byte) Constraint {
	return Constraint{Kind: KindNotAt, Position: pos, Letter: c}
}

func ContainsNotAt(pos int, c byte) Constraint {
	return Constraint{Kind: KindContainsNotAt, Position: pos, Letter: c}
}

func Excludes(c byte) Constraint {
	return Constraint{Kind: KindExcludes, Letter: c}
}

func ContainsAll(ls LetterSet) Constraint {
	return Constraint{Kind: KindContainsAll, Letters: ls}
}

// ContainsAny requires at least one fragment as a contiguous substring.
// An empty fragment list matches nothing.
func ContainsAny(fragments ...string) Constraint {
	return Constraint{Kind: KindContainsAny, Fragments: fragments}
}

func NotEquals(word string) Constraint {
	return Constraint{Kind: KindNotEquals, Word: strings.ToLower(word)}
}

// Matches is the constraint interpreter.
func (c Constraint) Matches(word string) bool {
	switch c.Kind {
	case KindPositionEquals:
		l, ok := letterAt(word, c.Position)
		return ok && l == c.Letter
	case KindNotAt:
		l, ok := letterAt(word, c.Position)
		return !ok || l != c.Letter
	case KindContainsNotAt:
		if l, ok := letterAt(word, c.Position); ok && l == c.Letter {
			return false
		}
		return strings.IndexByte(word, c.Letter) >= 0
	case KindExcludes:
		return strings.IndexByte(word, c.Letter) < 0
	case KindContainsAll:
		return SetOf(word)&c.Letters == c.Letters
	case KindContainsAny:
		for _, f := range c.Fragments {
			if strings.Contains(word, f) {
				return true
			}
		}
		return false
	case KindNotEquals:
		return !strings.EqualFold(word, c.Word)
	}
	return false
}

// letterAt returns word[pos]; positions outside the word hold no letter.
func letterAt(word string, pos int) (byte, bool) {
	if pos < 0 || pos >= len(word) {
		return 0, false
	}
	return word[pos], true
}

func (c Constraint) String() string {
	switch c.Kind {
	case KindPositionEquals, KindNotAt, KindContainsNotAt:
		return fmt.Sprintf("%s(%d,%c)", c.Kind, c.Position, c.Letter)
	case KindExcludes:
		return fmt.Sprintf("%s(%c)", c.Kind, c.Letter)
	case KindContainsAll:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Letters)
	case KindContainsAny:
		return fmt.Sprintf("%s(%s)", c.Kind, strings.Join(c.Fragments, "|"))
	case KindNotEquals:
		return fmt.Sprintf("%s(%s)", c.Kind, c.Word)
	}
	return c.Kind.String()
}

// Predicate is an immutable conjunction of constraints, kept cheapest first.
// A nil *Predicate matches every word.
type Predicate struct {
	constraints []Constraint
}

// NewPredicate returns the conjunction of cs, or nil when cs is empty.
func NewPredicate(cs ...Constraint) *Predicate {
	return (*Predicate)(nil).And(cs...)
}

// And returns a new predicate with cs added. p is not modified.
func (p *Predicate) And(cs ...Constraint) *Predicate {
	if len(cs) == 0 {
		return p
	}
	var base []Constraint
	if p != nil {
		base = p.constraints
	}
	out := make([]Constraint, 0, len(base)+len(cs))
	out = append(out, base...)
	out = append(out, cs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kind.cost() < out[j].Kind.cost() })
	return &Predicate{constraints: out}
}

// Matches reports whether word satisfies every constraint.
func (p *Predicate) Matches(word string) bool {
	if p == nil {
		return true
	}
	for _, c := range p.constraints {
		if !c.Matches(word) {
			return false
		}
	}
	return true
}

// Constraints returns a copy of the constraint list.
func (p *Predicate) Constraints() []Constraint {
	if p == nil {
		return nil
	}
	out := make([]Constraint, len(p.constraints))
	copy(out, p.constraints)
	return out
}

// Len is the number of constraints; 0 for nil.
func (p *Predicate) Len() int {
	if p == nil {
		return 0
	}
	return len(p.constraints)
}

func (p *Predicate) String() string {
	if p == nil {
		return "true"
	}
	parts := make([]string, len(p.constraints))
	for i, c := range p.constraints {
		parts[i] = c.String()
	}
	return strings.Join(parts, " && ")
}

// Build folds history into a single predicate. It returns nil only for an
// empty history.
func Build(history []GuessRecord) *Predicate {
	if len(history) == 0 {
		return nil
	}
	var cs []Constraint
	for _, r := range history {
		cs = append(cs, recordConstraints(r)...)
	}
	if len(cs) == 0 {
		// A history made only of solved records with nothing to add still
		// yields a non-nil (always true) predicate.
		return &Predicate{}
	}
	return NewPredicate(cs...)
}

// recordConstraints derives the constraints of a single record.
func recordConstraints(r GuessRecord) []Constraint {
	word := r.Word()
	if r.Invalid() {
		return []Constraint{NotEquals(word)}
	}

	var cs []Constraint
	if !r.Solved() {
		cs = append(cs, NotEquals(word))
	}
	for pos, c := range r.CorrectPositions() {
		if c != 0 {
			cs = append(cs, PositionEquals(pos, c))
		}
	}
	for pos, c := range r.WrongPositions() {
		if c != 0 {
			cs = append(cs, ContainsNotAt(pos, c))
		}
	}

	present := r.Present()
	excluded := LetterSet(0)
	for pos, f := range r.feedback {
		if f.Tier != TierAbsent {
			continue
		}
		switch {
		case present.Has(f.Letter):
			// The other occurrence is in the word; only this slot is ruled out.
			cs = append(cs, NotAt(pos, f.Letter))
		case !excluded.Has(f.Letter):
			excluded = excluded.Add(f.Letter)
			cs = append(cs, Excludes(f.Letter))
		}
	}
	return cs
}
