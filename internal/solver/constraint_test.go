package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintMatches(t *testing.T) {
	cases := []struct {
		c    Constraint
		word string
		want bool
	}{
		{PositionEquals(0, 'c'), "crane", true},
		{PositionEquals(1, 'c'), "crane", false},
		{NotAt(0, 'c'), "crane", false},
		{NotAt(0, 'c'), "trace", true},
		{ContainsNotAt(3, 'c'), "trace", false},
		{ContainsNotAt(0, 'c'), "trace", true},
		{ContainsNotAt(0, 'z'), "trace", false},
		{Excludes('z'), "trace", true},
		{Excludes('t'), "trace", false},
		{ContainsAll(SetOf("tea")), "trace", true},
		{ContainsAll(SetOf("tez")), "trace", false},
		{ContainsAny("ra", "zz"), "trace", true},
		{ContainsAny("ar"), "trace", false},
		{ContainsAny(), "trace", false},
		{NotEquals("TRACE"), "trace", false},
		{NotEquals("crane"), "trace", true},
		{PositionEquals(-1, 'c'), "crane", false},
		{NotAt(-1, 'c'), "crane", true},
		{ContainsNotAt(-1, 'c'), "crane", true},
		{PositionEquals(9, 'c'), "crane", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.c.Matches(tc.word), "%s on %q", tc.c, tc.word)
	}
}

func TestBuildEmptyHistory(t *testing.T) {
	assert.Nil(t, Build(nil))
	assert.True(t, Build(nil).Matches("anything"))
	assert.Equal(t, sampleVocabulary, Narrow(sampleVocabulary, Build(nil)))
}

func TestBuildInvalidGuessExcludesOnlyTheWord(t *testing.T) {
	p := Build([]GuessRecord{mustGuess(t, "zzzzz", "invalid")})
	require.NotNil(t, p)
	assert.Equal(t, []Constraint{NotEquals("zzzzz")}, p.Constraints())

	words := []string{"zzzzz", "crane", "fuzzy"}
	assert.Equal(t, []string{"crane", "fuzzy"}, Narrow(words, p))
}

func TestBuildSolvedGuessKeepsTheWord(t *testing.T) {
	p := Build([]GuessRecord{mustGuess(t, "trace", "22222")})
	require.NotNil(t, p)
	for _, c := range p.Constraints() {
		assert.NotEqual(t, KindNotEquals, c.Kind)
	}
	assert.Equal(t, []string{"trace"}, Narrow(sampleVocabulary, p))
}

func TestBuildRecordConstraints(t *testing.T) {
	p := Build([]GuessRecord{mustGuess(t, "crane", "20010")})
	assert.ElementsMatch(t, []Constraint{
		NotEquals("crane"),
		PositionEquals(0, 'c'),
		ContainsNotAt(3, 'n'),
		Excludes('r'),
		Excludes('a'),
		Excludes('e'),
	}, p.Constraints())
}

// "sassy" against "spicy": the first s is CORRECT, the other two are ABSENT.
// The s must only be ruled out at the absent slots.
func TestBuildDuplicateLetterException(t *testing.T) {
	require.Equal(t, "20002", score("sassy", "spicy"))
	rec := mustGuess(t, "sassy", "20002")
	p := Build([]GuessRecord{rec})

	assert.NotContains(t, p.Constraints(), Excludes('s'))
	assert.Contains(t, p.Constraints(), NotAt(2, 's'))
	assert.Contains(t, p.Constraints(), NotAt(3, 's'))
	assert.Contains(t, p.Constraints(), Excludes('a'))

	assert.True(t, p.Matches("spicy"))
	assert.False(t, p.Matches("sissy"), "s at an absent slot")
	assert.Equal(t, []string{"spicy"}, Narrow(sampleVocabulary, p))
}

func TestPredicateOrderingCheapestFirst(t *testing.T) {
	p := NewPredicate(NotEquals("crane"), ContainsAny("ra"), Excludes('z'), PositionEquals(0, 'c'), ContainsNotAt(1, 'r'))
	cs := p.Constraints()
	require.Len(t, cs, 5)
	for i := 1; i < len(cs); i++ {
		assert.LessOrEqual(t, uint8(cs[i-1].Kind), uint8(cs[i].Kind))
	}
	assert.Equal(t, KindPositionEquals, cs[0].Kind)
	assert.Equal(t, KindNotEquals, cs[len(cs)-1].Kind)
}

func TestPredicateAndDoesNotMutate(t *testing.T) {
	p := NewPredicate(PositionEquals(0, 'c'))
	q := p.And(Excludes('z'))
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, q.Len())
	assert.Same(t, p, p.And())
	assert.Nil(t, NewPredicate())
}

// Every word left after narrowing must satisfy each constraint derived from
// the guess, and the true answer must never be removed.
func TestNarrowAgainstOracle(t *testing.T) {
	for _, answer := range sampleVocabulary {
		for _, guess := range sampleVocabulary {
			rec := mustGuess(t, guess, score(guess, answer))
			p := Build([]GuessRecord{rec})
			kept := Narrow(sampleVocabulary, p)

			if guess != answer {
				assert.Contains(t, kept, answer, "guess %s scored %s", guess, rec.Scores())
			}
			for _, w := range kept {
				for _, c := range recordConstraints(rec) {
					assert.True(t, c.Matches(w), "%s violates %s", w, c)
				}
			}
		}
	}
}
