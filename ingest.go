// apps/solver/ingest.go
//
// Counts five-letter words in corpus files and adds them to the store.
// Each file is recorded as a source and never counted twice.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/solver/internal/freq"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

func ingest(ctx context.Context, st store.Store, files []string, out io.Writer) error {
	if len(files) == 0 {
		return errUsage
	}
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("ingesting"),
		progressbar.OptionShowCount(),
	)

	added, skipped := 0, 0
	for _, path := range files {
		n, err := ingestFile(ctx, st, path)
		if err != nil {
			return err
		}
		if n < 0 {
			skipped++
		} else {
			added += n
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(out)
	log.Info().Int("files", len(files)).Int("skipped", skipped).Int("words", added).Msg("ingest done")
	return nil
}

// ingestFile returns the number of words counted, or -1 when the file was
// already ingested.
func ingestFile(ctx context.Context, st store.Store, path string) (int, error) {
	source, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}
	seen, err := st.SourceSeen(ctx, source)
	if err != nil {
		return 0, err
	}
	if seen {
		log.Debug().Str("file", path).Msg("already ingested")
		return -1, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	counts, err := freq.CountWords(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := st.AddCounts(ctx, counts); err != nil {
		return 0, err
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if err := st.RecordSource(ctx, source, total); err != nil {
		return 0, err
	}
	return total, nil
}
