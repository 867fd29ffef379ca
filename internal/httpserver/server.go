// apps/solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solving sessions: POST /sessions, then bearer-authenticated
//     POST /sessions/guess and GET /sessions/state.
//   - Stateless helpers: POST /recommend, GET /affinity/{letter}.
//   - Admin: POST /admin/counts (X-Admin-Token checked against a bcrypt hash).
//
// Notes:
//   - Sessions live in memory and expire after SESSION_TTL_HOURS; the bearer
//     token carries the session id in its "sid" claim.
//   - Counts and rejected words are read from the store when a session starts,
//     so later imports only affect new sessions.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// sweepInterval is how often expired sessions are dropped while serving.
const sweepInterval = 10 * time.Minute

// Server bundles router, vocabulary, persistence and live sessions.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	vocab    []string
	affinity *solver.AffinityTable
	store    store.Store
	sessions store.SessionStore
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, vocab []string, st store.Store, sessions store.SessionStore) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		vocab:    vocab,
		affinity: solver.Calibrate(vocab),
		store:    st,
		sessions: sessions,
		now:      time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /sessions","POST /sessions/guess","GET /sessions/state","POST /recommend","GET /affinity/{letter}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleDebugWords)

	s.mountSessions()

	s.r.Post("/recommend", s.handleRecommend)
	s.r.Get("/affinity/{letter}", s.handleAffinity)

	s.r.With(s.requireAdmin).Post("/admin/counts", s.handleAddCounts)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start serves HTTP on addr and sweeps expired sessions until the server exits.
func (s *Server) Start(addr string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.sweep(ctx, sweepInterval)
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) sweep(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.sessions.Sweep(now); n > 0 {
				log.Info().Int("expired", n).Msg("swept sessions")
			}
		}
	}
}

// newSession starts a solver session from the current store contents.
// Rejected guesses are written back to the store as they are applied.
func (s *Server) newSession(ctx context.Context, recordInvalid bool) (*solver.Session, error) {
	counts, err := s.store.AllCounts(ctx)
	if err != nil {
		return nil, err
	}
	rejected, err := s.store.LoadInvalid(ctx)
	if err != nil {
		return nil, err
	}
	opts := []solver.Option{
		solver.WithFrequencies(counts),
		solver.WithRejected(rejected),
		solver.WithThreshold(s.cfg.Threshold),
		solver.WithAffinityDepth(s.cfg.AffinityDepth),
	}
	if recordInvalid {
		opts = append(opts, solver.WithOnInvalid(s.recordInvalid))
	}
	return solver.NewSession(s.vocab, opts...), nil
}

// recordInvalid is fire-and-forget: failures are logged only.
func (s *Server) recordInvalid(word string) {
	if err := s.store.RecordInvalid(context.Background(), word); err != nil {
		log.Warn().Err(err).Str("word", word).Msg("record invalid word")
		return
	}
	log.Info().Str("word", word).Msg("recorded invalid word")
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type debugWordsRes struct {
	Vocabulary int    `json:"vocabulary"`
	Counted    int    `json:"counted"`
	Rejected   int    `json:"rejected"`
	Word       string `json:"word,omitempty"`
	Count      *int   `json:"count,omitempty"`
}

// handleDebugWords reports list sizes, plus one word's count with ?word=.
func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.AllCounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	rejected, err := s.store.LoadInvalid(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	res := debugWordsRes{Vocabulary: len(s.vocab), Counted: len(counts), Rejected: len(rejected)}
	if word := r.URL.Query().Get("word"); word != "" {
		n, err := s.store.WordCount(r.Context(), word)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "store_error")
			return
		}
		res.Word, res.Count = word, &n
	}
	writeJSON(w, http.StatusOK, res)
}
