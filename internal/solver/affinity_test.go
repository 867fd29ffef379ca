package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AffinitySuite exercises calibration on a tiny vocabulary whose bigram
// counts are easy to check by hand:
//
//	there: th he er re
//	three: th hr re ee
//	other: ot th he er
type AffinitySuite struct {
	suite.Suite
	vocab []string
	table *AffinityTable
}

func (s *AffinitySuite) SetupTest() {
	s.vocab = []string{"there", "three", "other"}
	s.table = Calibrate(s.vocab)
}

func (s *AffinitySuite) TestCounts() {
	s.Equal([]Combination{{"th", 3}}, s.table.Ranked('t'))
	s.Equal([]Combination{{"he", 2}, {"hr", 1}}, s.table.Ranked('h'))
	s.Equal([]Combination{{"er", 2}, {"ee", 1}}, s.table.Ranked('e'))
	s.Equal([]Combination{{"re", 2}}, s.table.Ranked('r'))
	s.Equal([]Combination{{"ot", 1}}, s.table.Ranked('o'))
	s.Equal(3, s.table.Vocabulary())
}

func (s *AffinitySuite) TestZeroCountsDropped() {
	s.Empty(s.table.Ranked('z'))
	s.Empty(s.table.Top('z', 3))
}

func (s *AffinitySuite) TestTop() {
	s.Equal([]string{"he"}, s.table.Top('h', 1))
	s.Equal([]string{"he", "hr"}, s.table.Top('h', 5))
	s.Nil(s.table.Top('h', 0))
}

func (s *AffinitySuite) TestDeterministic() {
	again := Calibrate(s.vocab)
	s.Equal(s.table, again)

	reversed := []string{"other", "three", "there"}
	s.Equal(s.table.ranked, Calibrate(reversed).ranked)
}

func (s *AffinitySuite) TestRankedReturnsCopy() {
	r := s.table.Ranked('h')
	r[0].Count = 99
	s.Equal(2, s.table.Ranked('h')[0].Count)
}

func TestAffinitySuite(t *testing.T) {
	suite.Run(t, new(AffinitySuite))
}

func TestCalibrateCountsWordOncePerBigram(t *testing.T) {
	table := Calibrate([]string{"eeeee", "eerie"})
	assert.Equal(t, []Combination{{"ee", 2}, {"er", 1}}, table.Ranked('e'))
}

func TestCalibrateTiesKeepAlphabetOrder(t *testing.T) {
	// e precedes b in FrequencyAlphabet.
	table := Calibrate([]string{"abxxx", "aexxx"})
	assert.Equal(t, []string{"ae", "ab"}, table.Top('a', 2))
}

func TestNilAffinityTable(t *testing.T) {
	var table *AffinityTable
	assert.Empty(t, table.Ranked('e'))
	assert.Empty(t, table.Top('e', 2))
	assert.Zero(t, table.Vocabulary())
}
