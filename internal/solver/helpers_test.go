package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleVocabulary is a small word list with a few repeated-letter words.
var sampleVocabulary = []string{
	"crane", "trace", "plate", "slate", "spicy", "sassy", "sissy", "pilot",
	"moist", "hotly", "brake", "theme", "spend", "awake", "diane", "phage",
	"eerie", "apple", "fuzzy", "robin", "stare", "tears", "rates", "there",
	"three", "other", "quack", "jumpy", "vivid", "kneel",
}

// mustGuess parses a record or fails the test.
func mustGuess(t *testing.T, word, scores string) GuessRecord {
	t.Helper()
	r, err := ParseGuess(word, scores)
	require.NoError(t, err)
	return r
}

// score is a two-pass Wordle scorer used as a feedback oracle in tests.
func score(guess, answer string) string {
	out := []byte("00000")
	var counts [26]int
	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			out[i] = '2'
		} else {
			counts[answer[i]-'a']++
		}
	}
	for i := 0; i < WordLength; i++ {
		if out[i] == '2' {
			continue
		}
		if j := guess[i] - 'a'; counts[j] > 0 {
			out[i] = '1'
			counts[j]--
		}
	}
	return string(out)
}
