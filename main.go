// apps/solver/main.go
//
// Entry point for the solver service and its command-line tools.
//
// Usage:
//   solver [serve]               HTTP API (default)
//   solver play                  interactive solving against a real puzzle
//   solver simulate -answer W    recommender against a local puzzle
//   solver ingest FILE...        count five-letter words in corpus files
//   solver import-counts FILE    add a "word count" listing
//   solver hash-token TOKEN      bcrypt hash for ADMIN_TOKEN_HASH
//
// Configuration comes from the environment (and .env); see internal/config.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/freq"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var errUsage = errors.New("usage: solver [serve|play|simulate|ingest|import-counts|hash-token] [args]")

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	cmd, args := "serve", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	if cmd != "serve" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := run(context.Background(), cmd, args, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

// run dispatches one subcommand.
func run(ctx context.Context, cmd string, args []string, cfg config.Config, in io.Reader, out io.Writer) error {
	if cmd == "hash-token" {
		return hashToken(args, out)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	switch cmd {
	case "ingest":
		return ingest(ctx, st, args, out)
	case "import-counts":
		if len(args) != 1 {
			return errUsage
		}
		return importCounts(ctx, st, args[0])
	}

	vocab, err := words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	if cfg.CountsFile != "" {
		if err := importCounts(ctx, st, cfg.CountsFile); err != nil {
			return err
		}
	}

	switch cmd {
	case "serve":
		srv := httpserver.New(cfg, vocab, st, store.NewSessionStore())
		log.Info().Str("port", cfg.Port).Int("vocabulary", len(vocab)).Msg("starting solver")
		return srv.Start(":" + cfg.Port)
	case "play":
		sess, err := newSession(ctx, cfg, st, vocab, true)
		if err != nil {
			return err
		}
		return runPlay(in, out, sess)
	case "simulate":
		return simulate(ctx, cfg, st, vocab, args, out)
	}
	return errUsage
}

// openStore selects SQLite, or the in-memory store for DB_PATH=memory.
func openStore(cfg config.Config) (store.Store, error) {
	if cfg.DBPath == config.MemoryDB {
		return store.NewMemoryStore(), nil
	}
	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db %s: %w", cfg.DBPath, err)
	}
	return db, nil
}

// newSession builds a solver session from the stored counts and rejected
// words. With recordInvalid, words the puzzle refuses are written back to
// the store; only a real puzzle's refusals belong there.
func newSession(ctx context.Context, cfg config.Config, st store.Store, vocab []string, recordInvalid bool) (*solver.Session, error) {
	counts, err := st.AllCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load counts: %w", err)
	}
	rejected, err := st.LoadInvalid(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rejected words: %w", err)
	}
	log.Info().Int("vocabulary", len(vocab)).Int("counted", len(counts)).Int("rejected", len(rejected)).Msg("session ready")

	opts := []solver.Option{
		solver.WithFrequencies(counts),
		solver.WithRejected(rejected),
		solver.WithThreshold(cfg.Threshold),
		solver.WithAffinityDepth(cfg.AffinityDepth),
	}
	if recordInvalid {
		opts = append(opts, solver.WithOnInvalid(func(w string) {
			if err := st.RecordInvalid(ctx, w); err != nil {
				log.Warn().Err(err).Str("word", w).Msg("record invalid word")
			}
		}))
	}
	return solver.NewSession(vocab, opts...), nil
}

// importCounts adds a "word count" listing once; a path already recorded
// as a source is skipped.
func importCounts(ctx context.Context, st store.Store, path string) error {
	source := "counts:" + path
	seen, err := st.SourceSeen(ctx, source)
	if err != nil {
		return err
	}
	if seen {
		log.Info().Str("file", path).Msg("counts already imported")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open counts: %w", err)
	}
	defer f.Close()

	counts, err := freq.ParseCounts(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := st.AddCounts(ctx, counts); err != nil {
		return err
	}
	if err := st.RecordSource(ctx, source, len(counts)); err != nil {
		return err
	}
	log.Info().Str("file", path).Int("words", len(counts)).Msg("counts imported")
	return nil
}

func hashToken(args []string, out io.Writer) error {
	if len(args) != 1 || args[0] == "" {
		return errUsage
	}
	h, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(h))
	return err
}
