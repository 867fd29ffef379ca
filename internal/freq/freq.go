// apps/solver/internal/freq/freq.go
//
// Word-frequency sources for the ranked candidate list.
//
// Responsibilities:
//   - CountWords: tally five-letter words appearing in free text.
//   - ParseCounts: read a precomputed "word count" listing.
//
// Both return plain maps; persistence lives in the store package.

package freq

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var fiveLetter = regexp.MustCompile(`\b([a-zA-Z]{5})\b`)

// CountWords counts every whole five-letter word in r, lower-cased.
func CountWords(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		for _, m := range fiveLetter.FindAllString(sc.Text(), -1) {
			counts[strings.ToLower(m)]++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// ParseCounts reads lines of the form "word count". Blank lines and lines
// starting with "#" are skipped. Repeated words are summed.
func ParseCounts(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("freq: line %d: want \"word count\", got %q", line, text)
		}
		w := strings.ToLower(fields[0])
		if !solver.ValidWord(w) {
			return nil, fmt.Errorf("freq: line %d: %q is not a five-letter word", line, fields[0])
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("freq: line %d: bad count %q", line, fields[1])
		}
		counts[w] += n
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
