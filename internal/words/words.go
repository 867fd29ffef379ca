// apps/solver/internal/words/words.go
//
// Vocabulary loading for the solver.
//
// Responsibilities:
//   - Read a word list from a file, or fall back to the embedded default list.
//   - Normalize entries to lowercase, skip blanks and "#" comments.
//   - Drop anything that is not exactly five letters a-z and remove duplicates,
//     keeping first-seen order.
//
// The resulting order is the "plain" order the recommender scans.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

//go:embed default_words.txt
var embeddedWords string

// ErrEmpty is returned when a list yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// Load returns the vocabulary at path, or the embedded default list when
// path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Parse(strings.NewReader(embeddedWords))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one word per line.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !solver.ValidWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Allowed builds a lookup set over list.
func Allowed(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return set
}
