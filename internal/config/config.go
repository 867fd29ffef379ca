// apps/solver/internal/config/config.go
//
// Environment-driven configuration.
//
// Environment variables (defaults in parentheses):
//   LOG_LEVEL (info)             zerolog level name
//   PORT (5175)                  HTTP listen port
//   DB_PATH (./data/solver.db)   SQLite file; "memory" keeps everything in process
//   WORDS_FILE                   vocabulary file; empty uses the embedded list
//   COUNTS_FILE                  optional "word count" list imported at start
//   CONFIDENCE_THRESHOLD (2)     minimum frequency for a suggestion
//   AFFINITY_DEPTH (0)           bigrams OR-ed into each probe; 0 disables
//   JWT_SECRET (dev_secret_change_me)
//   SESSION_TTL_HOURS (12)
//   ADMIN_TOKEN_HASH             bcrypt hash; empty disables admin routes
//   CLIENT_ORIGIN (http://localhost:5173)
//
// .env files are loaded by main before Load runs.

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// MemoryDB is the DB_PATH value that selects the in-memory store.
const MemoryDB = "memory"

// Config is the resolved service configuration.
type Config struct {
	LogLevel       zerolog.Level
	Port           string
	DBPath         string
	WordsFile      string
	CountsFile     string
	Threshold      int
	AffinityDepth  int
	JWTSecret      string
	SessionTTL     time.Duration
	AdminTokenHash string
	ClientOrigin   string
}

// Load reads the environment. Unparseable numbers and levels are errors.
func Load() (Config, error) {
	c := Config{
		Port:           getEnv("PORT", "5175"),
		DBPath:         getEnv("DB_PATH", "./data/solver.db"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		CountsFile:     os.Getenv("COUNTS_FILE"),
		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		AdminTokenHash: os.Getenv("ADMIN_TOKEN_HASH"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	if c.Threshold, err = envInt("CONFIDENCE_THRESHOLD", 2); err != nil {
		return Config{}, err
	}
	if c.AffinityDepth, err = envInt("AFFINITY_DEPTH", 0); err != nil {
		return Config{}, err
	}
	hours, err := envInt("SESSION_TTL_HOURS", 12)
	if err != nil {
		return Config{}, err
	}
	if hours <= 0 {
		return Config{}, fmt.Errorf("config: SESSION_TTL_HOURS must be positive, got %d", hours)
	}
	c.SessionTTL = time.Duration(hours) * time.Hour
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("config: %s: %q is not a non-negative integer", k, v)
	}
	return n, nil
}
