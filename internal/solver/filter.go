// apps/solver/internal/solver/filter.go
//
// Candidate filtering.
//
//   - Narrow / Probe are the plain, order-preserving filters over a slice.
//   - Collection wraps an ordered candidate list with a bitset index so the
//     many probes issued by the recommender run as set intersections instead
//     of per-word scans. Constraints the index cannot express (substring
//     fragments, malformed positions) are checked per surviving word.
//
// Narrowing never widens: every function here returns a subset of its input,
// in input order, as a new slice.

package solver

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog/log"
)

// Narrow returns the words of candidates that satisfy p, in order.
// A nil predicate returns candidates unchanged.
func Narrow(candidates []string, p *Predicate) []string {
	if p == nil {
		return candidates
	}
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if p.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// Probe has the semantics of Narrow but is used for what-if queries; it
// always returns a fresh slice so callers never alias the candidate list.
func Probe(candidates []string, p *Predicate) []string {
	if p == nil {
		return append([]string(nil), candidates...)
	}
	return Narrow(candidates, p)
}

// Collection is an ordered candidate list plus its index. It is immutable:
// Narrow returns a new Collection.
type Collection struct {
	name  string
	words []string
	idx   *wordIndex
}

// NewCollection indexes words. Words are expected to be lower case and
// distinct; name is used only in log lines.
func NewCollection(name string, words []string) Collection {
	ws := append([]string(nil), words...)
	return Collection{name: name, words: ws, idx: newWordIndex(ws)}
}

func (c Collection) Name() string { return c.name }

func (c Collection) Len() int { return len(c.words) }

// Words returns a copy of the candidate list.
func (c Collection) Words() []string { return append([]string(nil), c.words...) }

// First returns the first candidate, if any.
func (c Collection) First() (string, bool) {
	if len(c.words) == 0 {
		return "", false
	}
	return c.words[0], true
}

// Contains reports whether w is still a candidate.
func (c Collection) Contains(w string) bool {
	if c.idx == nil {
		return false
	}
	_, ok := c.idx.pos[strings.ToLower(w)]
	return ok
}

// Narrow returns the collection reduced to words matching p.
func (c Collection) Narrow(p *Predicate) Collection {
	if p == nil {
		return c
	}
	kept := c.Probe(p)
	log.Debug().
		Str("collection", c.name).
		Int("removed", len(c.words)-len(kept)).
		Int("remaining", len(kept)).
		Msg("narrowed candidates")
	return NewCollection(c.name, kept)
}

// Probe returns the words matching p without changing c.
func (c Collection) Probe(p *Predicate) []string {
	if p == nil || c.idx == nil {
		return Probe(c.words, p)
	}
	set, residual := c.idx.apply(p)
	out := make([]string, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		w := c.words[i]
		if matchesAll(residual, w) {
			out = append(out, w)
		}
	}
	return out
}

func matchesAll(cs []Constraint, w string) bool {
	for _, c := range cs {
		if !c.Matches(w) {
			return false
		}
	}
	return true
}

// wordIndex maps letters to the set of word indexes having them.
type wordIndex struct {
	n   uint
	at  [WordLength][26]*bitset.BitSet // at[p][l]: word has letter l at position p
	has [26]*bitset.BitSet             // has[l]: word contains letter l
	pos map[string][]uint              // lower-cased word → indexes
}

func newWordIndex(words []string) *wordIndex {
	n := uint(len(words))
	ix := &wordIndex{n: n, pos: make(map[string][]uint, len(words))}
	for l := 0; l < 26; l++ {
		ix.has[l] = bitset.New(n)
		for p := 0; p < WordLength; p++ {
			ix.at[p][l] = bitset.New(n)
		}
	}
	for i, w := range words {
		u := uint(i)
		key := strings.ToLower(w)
		ix.pos[key] = append(ix.pos[key], u)
		for p := 0; p < len(w); p++ {
			l := idx(w[p])
			if l < 0 {
				continue
			}
			ix.has[l].Set(u)
			if p < WordLength {
				ix.at[p][l].Set(u)
			}
		}
	}
	return ix
}

// apply intersects the index with every constraint it can express and
// returns the surviving set plus the constraints left for per-word checks.
func (ix *wordIndex) apply(p *Predicate) (*bitset.BitSet, []Constraint) {
	set := bitset.New(ix.n)
	set.FlipRange(0, ix.n)

	var residual []Constraint
	for _, c := range p.constraints {
		l := idx(c.Letter)
		positional := c.Position >= 0 && c.Position < WordLength && l >= 0
		switch {
		case c.Kind == KindPositionEquals && positional:
			set.InPlaceIntersection(ix.at[c.Position][l])
		case c.Kind == KindNotAt && positional:
			set.InPlaceDifference(ix.at[c.Position][l])
		case c.Kind == KindContainsNotAt && positional:
			set.InPlaceIntersection(ix.has[l])
			set.InPlaceDifference(ix.at[c.Position][l])
		case c.Kind == KindExcludes && l >= 0:
			set.InPlaceDifference(ix.has[l])
		case c.Kind == KindContainsAll:
			for _, m := range c.Letters.Letters() {
				set.InPlaceIntersection(ix.has[idx(m)])
			}
		case c.Kind == KindNotEquals:
			for _, i := range ix.pos[strings.ToLower(c.Word)] {
				set.Clear(i)
			}
		default:
			residual = append(residual, c)
		}
		if set.None() {
			break
		}
	}
	return set, residual
}
