// apps/solver/internal/solver/letters.go
//
// Alphabet tables and a compact letter set.
//
// Notes:
//   - FrequencyAlphabet orders a–z by English letter frequency. It fixes the
//     order in which eligible letters are tried by the recommender and the
//     enumeration order of affinity bigrams.
//   - LetterSet is a 26-bit mask; the zero value is the empty set.

package solver

import "strings"

// WordLength is the fixed puzzle word length.
const WordLength = 5

// FrequencyAlphabet lists a–z by descending English letter frequency.
const FrequencyAlphabet = "eariotnslcudpmhgbfywkvxzjq"

// LetterSet is a set of lowercase ASCII letters.
type LetterSet uint32

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if idx(s[i]) < 0 {
			return false
		}
	}
	return true
}

// ValidWord reports whether w is a normalised candidate word.
func ValidWord(w string) bool {
	return len(w) == WordLength && isAlpha(w)
}

// SetOf builds a LetterSet from the letters of s; non-letters are ignored.
func SetOf(s string) LetterSet {
	var ls LetterSet
	for i := 0; i < len(s); i++ {
		ls = ls.Add(s[i])
	}
	return ls
}

// Add returns the set with c included.
func (s LetterSet) Add(c byte) LetterSet {
	if i := idx(c); i >= 0 {
		return s | 1<<uint(i)
	}
	return s
}

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	i := idx(c)
	return i >= 0 && s&(1<<uint(i)) != 0
}

func (s LetterSet) Union(o LetterSet) LetterSet { return s | o }

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	n := 0
	for v := uint32(s); v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Len())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s LetterSet) String() string {
	var b strings.Builder
	b.Write(s.Letters())
	return b.String()
}

// hasRepeatedLetter reports whether any letter occurs more than once in w.
func hasRepeatedLetter(w string) bool {
	return SetOf(w).Len() != len(w)
}
