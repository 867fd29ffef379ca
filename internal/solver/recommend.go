// apps/solver/internal/solver/recommend.go
//
// Next-guess recommendation.
//
// Two states, decided per call from the most recent guess:
//
//   - Fully determined: the latest guess already revealed WordLength distinct
//     letters. The best remaining word is the head of the frequency-ranked
//     collection, else of the plain collection.
//   - Exploratory: try to add exactly one new letter. Eligible letters are
//     FrequencyAlphabet minus every letter scored ABSENT anywhere in the
//     history. For each, in order, probe both collections for words holding
//     the known letters plus that one; the first letter whose matches yield an
//     accepted selection wins (first fit, not best of all letters).
//
// Selection prefers ranked matches, then plain ones. With a frequency lookup,
// words seen fewer than Threshold times are dropped and a source with no
// survivors fails. Among survivors a word without repeated letters is
// preferred.
//
// Limitation: the search only ever adds letters it has not seen, so it cannot
// propose a word that repeats a letter known to occur once. Example history
// QUALM 00200, YEARS 01200, EXACT 10200 never leads to AWAKE.

package solver

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultThreshold is the minimum frequency count for a recommendation.
const DefaultThreshold = 2

// FrequencyLookup reports how often a word was observed; 0 if unknown.
type FrequencyLookup interface {
	WordCount(word string) int
}

// Counts is a map-backed FrequencyLookup.
type Counts map[string]int

func (c Counts) WordCount(word string) int { return c[strings.ToLower(word)] }

// Recommender holds the tuning of the search. The zero value recommends with
// a threshold of 0 and no affinity bias.
type Recommender struct {
	// Threshold is the minimum WordCount a word needs when a lookup is given.
	Threshold int
	// Affinity, when set with Depth > 0, biases each letter's probe towards
	// words containing one of its Depth best bigrams.
	Affinity *AffinityTable
	Depth    int
}

// NewRecommender returns a Recommender with DefaultThreshold.
func NewRecommender() *Recommender {
	return &Recommender{Threshold: DefaultThreshold}
}

// Recommend picks the next guess. ok is false when there is no suggestion,
// which is a normal outcome rather than an error.
func (r *Recommender) Recommend(history []GuessRecord, ranked, plain Collection, freq FrequencyLookup) (word string, ok bool) {
	var present LetterSet
	if len(history) > 0 {
		present = history[len(history)-1].Present()
	}
	if present.Len() >= WordLength {
		if w, ok := ranked.First(); ok {
			return w, true
		}
		return plain.First()
	}

	base := Build(history)
	for _, letter := range EligibleLetters(history) {
		probe := base.And(ContainsAll(present.Add(letter)))

		if bias := r.Affinity.Top(letter, r.Depth); len(bias) > 0 {
			if w, ok := r.tryProbe(probe.And(ContainsAny(bias...)), ranked, plain, freq); ok {
				log.Debug().Str("letter", string(letter)).Strs("bias", bias).Str("word", w).Msg("biased probe accepted")
				return w, true
			}
		}
		if w, ok := r.tryProbe(probe, ranked, plain, freq); ok {
			log.Debug().Str("letter", string(letter)).Str("word", w).Msg("probe accepted")
			return w, true
		}
	}
	return "", false
}

// EligibleLetters returns FrequencyAlphabet without the letters scored
// ABSENT anywhere in history, in FrequencyAlphabet order.
func EligibleLetters(history []GuessRecord) []byte {
	var absent LetterSet
	for _, rec := range history {
		absent = absent.Union(rec.Absent())
	}
	out := make([]byte, 0, len(FrequencyAlphabet))
	for i := 0; i < len(FrequencyAlphabet); i++ {
		if c := FrequencyAlphabet[i]; !absent.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recommender) tryProbe(p *Predicate, ranked, plain Collection, freq FrequencyLookup) (string, bool) {
	rm := ranked.Probe(p)
	pm := plain.Probe(p)
	if len(rm) == 0 && len(pm) == 0 {
		return "", false
	}
	return r.choose(rm, pm, freq)
}

// choose applies the selection rules to the ranked then plain matches.
func (r *Recommender) choose(rankedMatches, plainMatches []string, freq FrequencyLookup) (string, bool) {
	for _, src := range [][]string{rankedMatches, plainMatches} {
		if len(src) == 0 {
			continue
		}
		if w, ok := r.selectFrom(src, freq); ok {
			return w, true
		}
	}
	return "", false
}

func (r *Recommender) selectFrom(matches []string, freq FrequencyLookup) (string, bool) {
	survivors := matches
	if freq != nil {
		survivors = make([]string, 0, len(matches))
		for _, w := range matches {
			if freq.WordCount(w) >= r.Threshold {
				survivors = append(survivors, w)
			}
		}
	}
	if len(survivors) == 0 {
		return "", false
	}
	for _, w := range survivors {
		if !hasRepeatedLetter(w) {
			return w, true
		}
	}
	return survivors[0], true
}
