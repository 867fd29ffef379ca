// apps/solver/internal/solver/session.go
//
// Session is the explicit state of one game: the guess history, the two
// candidate collections and the recommender tuning.
//
//   - plain:  the vocabulary in load order.
//   - ranked: words from the frequency counts, most frequent first.
//
// Both collections start without rejected words and are only ever narrowed.
// A Session is not safe for concurrent use; callers serialise Apply and
// Recommend.

package solver

import "sort"

// Session tracks one game.
type Session struct {
	history     []GuessRecord
	plain       Collection
	ranked      Collection
	freq        FrequencyLookup
	recommender *Recommender
	affinity    *AffinityTable
	depth       int
	onInvalid   func(word string)
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	counts    map[string]int
	rejected  map[string]struct{}
	threshold int
	depth     int
	onInvalid func(string)
}

// WithFrequencies supplies word occurrence counts. They build the ranked
// collection and act as the frequency lookup during selection.
func WithFrequencies(counts map[string]int) Option {
	return func(c *sessionConfig) { c.counts = counts }
}

// WithRejected pre-excludes words the puzzle is known to refuse.
func WithRejected(words map[string]struct{}) Option {
	return func(c *sessionConfig) { c.rejected = words }
}

// WithThreshold overrides DefaultThreshold.
func WithThreshold(n int) Option {
	return func(c *sessionConfig) { c.threshold = n }
}

// WithAffinityDepth enables bigram bias with the top n combinations per
// letter; the table is calibrated on the starting vocabulary.
func WithAffinityDepth(n int) Option {
	return func(c *sessionConfig) { c.depth = n }
}

// WithOnInvalid registers a hook fired for every applied invalid guess.
func WithOnInvalid(fn func(word string)) Option {
	return func(c *sessionConfig) { c.onInvalid = fn }
}

// NewSession builds the starting collections from vocabulary.
func NewSession(vocabulary []string, opts ...Option) *Session {
	cfg := sessionConfig{threshold: DefaultThreshold}
	for _, o := range opts {
		o(&cfg)
	}

	plain := make([]string, 0, len(vocabulary))
	for _, w := range vocabulary {
		if _, bad := cfg.rejected[w]; !bad {
			plain = append(plain, w)
		}
	}

	s := &Session{
		plain:       NewCollection("plain", plain),
		ranked:      NewCollection("ranked", RankWords(cfg.counts, cfg.rejected)),
		recommender: &Recommender{Threshold: cfg.threshold},
		depth:       cfg.depth,
		onInvalid:   cfg.onInvalid,
	}
	if len(cfg.counts) > 0 {
		s.freq = Counts(cfg.counts)
	}
	if cfg.depth > 0 {
		s.Calibrate()
	}
	return s
}

// RankWords orders the valid words of counts by count descending, then
// alphabetically, leaving out rejected words.
func RankWords(counts map[string]int, rejected map[string]struct{}) []string {
	out := make([]string, 0, len(counts))
	for w := range counts {
		if !ValidWord(w) {
			continue
		}
		if _, bad := rejected[w]; bad {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := counts[out[i]], counts[out[j]]
		if ci != cj {
			return ci > cj
		}
		return out[i] < out[j]
	})
	return out
}

// Apply appends rec to the history and narrows both collections with the
// cumulative predicate.
func (s *Session) Apply(rec GuessRecord) {
	s.history = append(s.history, rec)
	if rec.Invalid() && s.onInvalid != nil {
		s.onInvalid(rec.Word())
	}
	p := Build(s.history)
	s.plain = s.plain.Narrow(p)
	s.ranked = s.ranked.Narrow(p)
}

// Recommend returns the next suggested guess for the current state.
func (s *Session) Recommend() (string, bool) {
	return s.recommender.Recommend(s.history, s.ranked, s.plain, s.freq)
}

// Calibrate rebuilds the affinity table over the current plain collection.
func (s *Session) Calibrate() *AffinityTable {
	s.affinity = Calibrate(s.plain.words)
	s.recommender.Affinity = s.affinity
	s.recommender.Depth = s.depth
	return s.affinity
}

// Affinity returns the last calibrated table, or nil.
func (s *Session) Affinity() *AffinityTable { return s.affinity }

// History returns a copy of the applied records.
func (s *Session) History() []GuessRecord {
	return append([]GuessRecord(nil), s.history...)
}

// Remaining returns the plain and ranked candidate counts.
func (s *Session) Remaining() (plain, ranked int) {
	return s.plain.Len(), s.ranked.Len()
}

// Candidates returns copies of the plain and ranked collections.
func (s *Session) Candidates() (plain, ranked []string) {
	return s.plain.Words(), s.ranked.Words()
}

// IsCandidate reports whether word is still in either collection.
func (s *Session) IsCandidate(word string) bool {
	return s.plain.Contains(word) || s.ranked.Contains(word)
}

// Solved reports whether the latest guess was all CORRECT.
func (s *Session) Solved() bool {
	return len(s.history) > 0 && s.history[len(s.history)-1].Solved()
}

// Answer returns the solved word.
func (s *Session) Answer() (string, bool) {
	if !s.Solved() {
		return "", false
	}
	return s.history[len(s.history)-1].Word(), true
}
