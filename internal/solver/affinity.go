// apps/solver/internal/solver/affinity.go
//
// Letter affinity: for every ordered pair of letters, how many vocabulary
// words contain the pair as a contiguous substring. Pairs are grouped by
// first letter and ranked by descending count. The recommender uses the top
// pairs for a letter to bias which neighbour it should arrive with.
//
// Ordering: pairs are enumerated first letter then second letter, both in
// FrequencyAlphabet order, and sorted stably, so equal counts keep that
// enumeration order. The result depends only on the vocabulary contents,
// not on word order.

package solver

import "sort"

// CombinationSize is the length of a ranked letter combination.
const CombinationSize = 2

// Combination is a ranked bigram and the number of words containing it.
type Combination struct {
	Letters string `json:"letters"`
	Count   int    `json:"count"`
}

// AffinityTable holds ranked combinations per first letter. A nil table is
// valid and empty.
type AffinityTable struct {
	ranked map[byte][]Combination
	words  int
}

// Calibrate builds a new table from vocabulary.
func Calibrate(vocabulary []string) *AffinityTable {
	var counts [26][26]int
	var seen [26][26]bool
	for _, w := range vocabulary {
		// Each word counts once per pair, however often the pair repeats.
		var touched [][2]int
		for i := 0; i+1 < len(w); i++ {
			a, b := idx(w[i]), idx(w[i+1])
			if a < 0 || b < 0 || seen[a][b] {
				continue
			}
			seen[a][b] = true
			counts[a][b]++
			touched = append(touched, [2]int{a, b})
		}
		for _, t := range touched {
			seen[t[0]][t[1]] = false
		}
	}

	t := &AffinityTable{ranked: make(map[byte][]Combination, 26), words: len(vocabulary)}
	for i := 0; i < len(FrequencyAlphabet); i++ {
		first := FrequencyAlphabet[i]
		var group []Combination
		for j := 0; j < len(FrequencyAlphabet); j++ {
			second := FrequencyAlphabet[j]
			n := counts[idx(first)][idx(second)]
			if n == 0 {
				continue
			}
			group = append(group, Combination{Letters: string([]byte{first, second}), Count: n})
		}
		sort.SliceStable(group, func(a, b int) bool { return group[a].Count > group[b].Count })
		if len(group) > 0 {
			t.ranked[first] = group
		}
	}
	return t
}

// Ranked returns the combinations starting with letter, best first.
func (t *AffinityTable) Ranked(letter byte) []Combination {
	if t == nil {
		return nil
	}
	return append([]Combination(nil), t.ranked[letter]...)
}

// Top returns up to n combination strings starting with letter.
func (t *AffinityTable) Top(letter byte, n int) []string {
	if t == nil || n <= 0 {
		return nil
	}
	group := t.ranked[letter]
	if len(group) > n {
		group = group[:n]
	}
	out := make([]string, len(group))
	for i, c := range group {
		out[i] = c.Letters
	}
	return out
}

// Vocabulary returns the number of words the table was calibrated on.
func (t *AffinityTable) Vocabulary() int {
	if t == nil {
		return 0
	}
	return t.words
}
