// apps/solver/simulate.go
//
// Plays the recommender against a local puzzle with a known answer and
// prints every step.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func simulate(ctx context.Context, cfg config.Config, st store.Store, vocab []string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(out)
	answer := fs.String("answer", "", "puzzle answer")
	date := fs.String("daily", "", "pick the answer for this date (YYYY-MM-DD or \"today\") when -answer is empty")
	salt := fs.String("salt", "solver", "salt for -daily")
	rows := fs.Int("max", 6, "maximum scored guesses")
	opener := fs.String("opener", "", "first guess; empty uses the first suggestion")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *answer == "" && *date != "" {
		day := time.Now()
		if *date != "today" {
			if day, err = time.Parse("2006-01-02", *date); err != nil {
				return fmt.Errorf("-daily: %w", err)
			}
		}
		*answer, _ = game.DailyAnswer(vocab, day, *salt)
	}
	if *answer == "" || *rows <= 0 {
		return errUsage
	}

	g, err := game.New(*answer, words.Allowed(vocab))
	if err != nil {
		return err
	}
	g.Rows = *rows

	// The local puzzle only knows vocab, so its refusals are not recorded.
	sess, err := newSession(ctx, cfg, st, vocab, false)
	if err != nil {
		return err
	}
	first := *opener
	if first == "" {
		w, ok := sess.Recommend()
		if !ok {
			fmt.Fprintln(out, "No suggestion")
			return nil
		}
		first = w
	}

	outcome, err := game.Autoplay(g, sess, first)
	if err != nil {
		return err
	}
	for i, s := range outcome.Steps {
		fmt.Fprintf(out, "%d. %s %s (%d left)\n", i+1, s.Guess, s.Scores, s.Remaining)
	}
	fmt.Fprintf(out, "%s after %d guesses\n", outcome.State, len(g.Guesses))
	return nil
}
