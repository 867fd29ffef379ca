package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

var testVocab = []string{"crane", "trace", "plate", "slate", "pilot", "moist"}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		DBPath:    config.MemoryDB,
		WordsFile: writeFile(t, "words.txt", strings.Join(testVocab, "\n")),
		Threshold: solver.DefaultThreshold,
	}
}

func TestRunPlay(t *testing.T) {
	in := strings.NewReader("crane\n0020\ncrane\n00202\nslate\n22222\n")
	var out bytes.Buffer
	require.NoError(t, runPlay(in, &out, solver.NewSession(testVocab)))

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, promptGuess))
	assert.Contains(t, text, "Suggestion: crane")
	assert.Contains(t, text, "Invalid input:")
	assert.Contains(t, text, "Remaining: 2 plain, 0 ranked")
	assert.Contains(t, text, "Suggestion: plate")
	assert.True(t, strings.HasSuffix(text, "Solved: slate\n"))
}

func TestRunPlayStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPlay(strings.NewReader("crane\n"), &out, solver.NewSession(testVocab)))
	assert.Contains(t, out.String(), promptScores)
	assert.NotContains(t, out.String(), "Solved")
}

func TestRunPlayNoSuggestion(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("crane\n20000\n")
	require.NoError(t, runPlay(in, &out, solver.NewSession([]string{"crane", "trace", "plate", "slate"})))
	assert.Contains(t, out.String(), "No suggestion")
}

func TestIngestSkipsSeenFiles(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	corpus := writeFile(t, "corpus.txt", "The crane saw a crane near the trace of cranes.")

	var out bytes.Buffer
	require.NoError(t, ingest(ctx, st, []string{corpus}, &out))
	require.NoError(t, ingest(ctx, st, []string{corpus}, &out))

	counts, err := st.AllCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"crane": 2, "trace": 1}, counts)

	assert.ErrorIs(t, ingest(ctx, st, nil, &out), errUsage)
}

func TestImportCountsOnce(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	listing := writeFile(t, "counts.txt", "# counts\ncrane 3\nslate 1\n")

	require.NoError(t, importCounts(ctx, st, listing))
	require.NoError(t, importCounts(ctx, st, listing))

	n, err := st.WordCount(ctx, "crane")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	bad := writeFile(t, "bad.txt", "crane three\n")
	assert.Error(t, importCounts(ctx, st, bad))
}

func TestRunSimulate(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), "simulate", []string{"-answer", "slate", "-opener", "crane"}, testConfig(t), nil, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "1. crane 00202 (2 left)")
	assert.Contains(t, text, "2. plate 02222 (1 left)")
	assert.Contains(t, text, "3. slate 22222 (1 left)")
	assert.Contains(t, text, "won after 3 guesses")
}

func TestRunSimulateRequiresAnswer(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), "simulate", nil, testConfig(t), nil, &out)
	assert.ErrorIs(t, err, errUsage)
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), "bogus", nil, testConfig(t), nil, &out)
	assert.ErrorIs(t, err, errUsage)
}

func TestHashToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), "hash-token", []string{"s3cret"}, config.Config{}, nil, &out))
	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	assert.ErrorIs(t, hashToken(nil, &out), errUsage)
}

func TestRunSimulateDaily(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), "simulate", []string{"-daily", "2024-03-09"}, testConfig(t), nil, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. crane ")
	assert.Contains(t, out.String(), " guesses")

	err = run(context.Background(), "simulate", []string{"-daily", "09/03/2024"}, testConfig(t), nil, &out)
	assert.Error(t, err)
}

func TestRunPlayNotesRuledOutGuess(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("crane\n00202\ntrace\n10202\n")
	require.NoError(t, runPlay(in, &out, solver.NewSession(testVocab)))
	assert.Contains(t, out.String(), "Note: trace was not a remaining candidate")
	assert.NotContains(t, out.String(), "Note: crane")
}

func TestSimulateDoesNotRecordLocalRefusals(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	// zesty is ranked first but the local puzzle only accepts testVocab.
	require.NoError(t, st.AddCounts(ctx, map[string]int{"zesty": 100}))

	var out bytes.Buffer
	cfg := config.Config{DBPath: config.MemoryDB, Threshold: solver.DefaultThreshold}
	require.NoError(t, simulate(ctx, cfg, st, testVocab, []string{"-answer", "slate"}, &out))
	assert.Contains(t, out.String(), "1. zesty invalid")

	rejected, err := st.LoadInvalid(ctx)
	require.NoError(t, err)
	assert.Empty(t, rejected)
}
