package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// predicates exercised by the filter property tests.
func samplePredicates(t *testing.T) []*Predicate {
	return []*Predicate{
		nil,
		Build([]GuessRecord{mustGuess(t, "crane", "00000")}),
		Build([]GuessRecord{mustGuess(t, "stare", "11100")}),
		Build([]GuessRecord{mustGuess(t, "sassy", "20002")}),
		Build([]GuessRecord{mustGuess(t, "zzzzz", "invalid"), mustGuess(t, "plate", "00222")}),
		NewPredicate(ContainsAll(SetOf("et"))),
		NewPredicate(ContainsAny("th", "ra"), Excludes('o')),
		NewPredicate(NotEquals("CRANE"), PositionEquals(4, 'e')),
		NewPredicate(PositionEquals(7, 'e')),
	}
}

func TestNarrowIsIdempotent(t *testing.T) {
	for _, p := range samplePredicates(t) {
		once := Narrow(sampleVocabulary, p)
		assert.Equal(t, once, Narrow(once, p), "predicate %s", p)
	}
}

func TestNarrowIsMonotoneAndOrdered(t *testing.T) {
	for _, p := range samplePredicates(t) {
		kept := Narrow(sampleVocabulary, p)
		assert.LessOrEqual(t, len(kept), len(sampleVocabulary))

		// kept must be a subsequence of the input.
		j := 0
		for _, w := range sampleVocabulary {
			if j < len(kept) && kept[j] == w {
				j++
			}
		}
		assert.Equal(t, len(kept), j, "order not preserved for %s", p)
	}
}

func TestProbeReturnsFreshSlice(t *testing.T) {
	words := []string{"crane", "trace"}
	out := Probe(words, nil)
	require.Equal(t, words, out)
	out[0] = "xxxxx"
	assert.Equal(t, "crane", words[0])
}

func TestCollectionProbeMatchesLinearScan(t *testing.T) {
	c := NewCollection("plain", sampleVocabulary)
	for _, p := range samplePredicates(t) {
		assert.Equal(t, Probe(sampleVocabulary, p), c.Probe(p), "predicate %s", p)
	}
}

func TestCollectionNarrowReturnsNewCollection(t *testing.T) {
	c := NewCollection("plain", sampleVocabulary)
	p := Build([]GuessRecord{mustGuess(t, "crane", "20000")})

	n := c.Narrow(p)
	assert.Equal(t, len(sampleVocabulary), c.Len(), "receiver untouched")
	assert.Equal(t, Narrow(sampleVocabulary, p), n.Words())
	assert.Equal(t, "plain", n.Name())
	assert.Equal(t, c.Len(), c.Narrow(nil).Len())
}

func TestCollectionProbeOutOfRangePositions(t *testing.T) {
	c := NewCollection("plain", []string{"crane", "trace"})
	assert.Empty(t, c.Probe(NewPredicate(PositionEquals(-1, 'c'))))
	assert.Equal(t, []string{"crane", "trace"}, c.Probe(NewPredicate(NotAt(-1, 'c'))))
	assert.Equal(t, []string{"crane", "trace"}, c.Probe(NewPredicate(ContainsNotAt(-1, 'c'))))
}

func TestCollectionAccessors(t *testing.T) {
	empty := NewCollection("ranked", nil)
	_, ok := empty.First()
	assert.False(t, ok)
	assert.Empty(t, empty.Probe(NewPredicate(Excludes('z'))))

	c := NewCollection("plain", []string{"crane", "trace"})
	first, ok := c.First()
	assert.True(t, ok)
	assert.Equal(t, "crane", first)
	assert.True(t, c.Contains("TRACE"))
	assert.False(t, c.Contains("plate"))

	words := c.Words()
	words[0] = "xxxxx"
	first, _ = c.First()
	assert.Equal(t, "crane", first)
}
