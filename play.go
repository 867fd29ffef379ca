// apps/solver/play.go
//
// Interactive solving: the user types each guess and the puzzle's scores,
// the solver answers with the next suggestion.
//
// Scores are five digits (0 absent, 1 wrong position, 2 correct), or
// "invalid" when the puzzle refused the word.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

const (
	promptGuess  = "Enter a word guess:"
	promptScores = "Enter the scores for each letter:"
)

// runPlay reads guess/score pairs until the word is solved or input ends.
// Malformed input is reported and asked for again.
func runPlay(in io.Reader, out io.Writer, sess *solver.Session) error {
	sc := bufio.NewScanner(in)
	printSuggestion(out, sess)

	for {
		word, ok := ask(sc, out, promptGuess)
		if !ok {
			return sc.Err()
		}
		scores, ok := ask(sc, out, promptScores)
		if !ok {
			return sc.Err()
		}

		rec, err := solver.ParseGuess(word, scores)
		if err != nil {
			fmt.Fprintf(out, "Invalid input: %v\n", err)
			continue
		}
		if !rec.Invalid() && !sess.IsCandidate(rec.Word()) {
			fmt.Fprintf(out, "Note: %s was not a remaining candidate\n", rec.Word())
		}
		sess.Apply(rec)

		if answer, ok := sess.Answer(); ok {
			fmt.Fprintf(out, "Solved: %s\n", answer)
			return nil
		}
		plain, ranked := sess.Remaining()
		fmt.Fprintf(out, "Remaining: %d plain, %d ranked\n", plain, ranked)
		printSuggestion(out, sess)
	}
}

func ask(sc *bufio.Scanner, out io.Writer, prompt string) (string, bool) {
	fmt.Fprintln(out, prompt)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func printSuggestion(out io.Writer, sess *solver.Session) {
	if w, ok := sess.Recommend(); ok {
		fmt.Fprintf(out, "Suggestion: %s\n", w)
		return
	}
	fmt.Fprintln(out, "No suggestion")
}
