// apps/solver/internal/httpserver/routes_sessions.go
//
// Solving-session endpoints.
//   - POST /sessions          → start a session, returns a bearer token and the first suggestion
//   - POST /sessions/guess    → apply {word, scores}, returns remaining counts and the next suggestion
//   - GET  /sessions/state    → history and remaining counts
//   - POST /recommend         → stateless: replay a history and suggest a guess
//
// Scores are five digits (0 absent, 1 wrong position, 2 correct) or the
// literal "invalid" for a word the puzzle refused.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// mountSessions registers /sessions routes.
func (s *Server) mountSessions() {
	s.r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleNewSession)
		r.With(s.requireSession).Post("/guess", s.handleGuess)
		r.With(s.requireSession).Get("/state", s.handleState)
	})
}

type remaining struct {
	Plain  int `json:"plain"`
	Ranked int `json:"ranked"`
}

type guessJSON struct {
	Word   string `json:"word"`
	Scores string `json:"scores"`
}

type newSessionRes struct {
	SessionID  string    `json:"sessionId"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Remaining  remaining `json:"remaining"`
	Suggestion *string   `json:"suggestion"`
}

type guessRes struct {
	Remaining  remaining `json:"remaining"`
	Suggestion *string   `json:"suggestion"`
	Solved     bool      `json:"solved"`
	Invalid    bool      `json:"invalid"`
	Candidate  bool      `json:"candidate"` // false when the word was already ruled out
}

type stateRes struct {
	SessionID string      `json:"sessionId"`
	History   []guessJSON `json:"history"`
	Remaining remaining   `json:"remaining"`
	Solved    bool        `json:"solved"`
	Answer    string      `json:"answer,omitempty"`
}

type recommendReq struct {
	History []guessJSON `json:"history"`
}

type recommendRes struct {
	Remaining  remaining `json:"remaining"`
	Suggestion *string   `json:"suggestion"`
}

func remainingOf(sess *solver.Session) remaining {
	p, r := sess.Remaining()
	return remaining{Plain: p, Ranked: r}
}

// suggestionOf returns nil when there is no recommendation.
func suggestionOf(sess *solver.Session) *string {
	if w, ok := sess.Recommend(); ok {
		return &w
	}
	return nil
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession(r.Context(), true)
	if err != nil {
		log.Error().Err(err).Msg("load store for session")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}

	e := &store.SessionEntry{ID: genID(), Session: sess, Expires: s.now().Add(s.cfg.SessionTTL)}
	tok, err := s.signSession(e.ID, e.Expires)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	if err := s.sessions.Save(r.Context(), e); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("session", e.ID).Msg("session started")

	writeJSON(w, http.StatusCreated, newSessionRes{
		SessionID:  e.ID,
		Token:      tok,
		ExpiresAt:  e.Expires.UTC(),
		Remaining:  remainingOf(sess),
		Suggestion: suggestionOf(sess),
	})
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	e := sessionFrom(r)
	var req guessJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	rec, err := solver.ParseGuess(req.Word, req.Scores)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e.Mu.Lock()
	defer e.Mu.Unlock()
	if e.Session.Solved() {
		writeError(w, http.StatusConflict, "already_solved")
		return
	}
	candidate := e.Session.IsCandidate(rec.Word())
	e.Session.Apply(rec)

	res := guessRes{
		Remaining: remainingOf(e.Session),
		Solved:    e.Session.Solved(),
		Invalid:   rec.Invalid(),
		Candidate: candidate,
	}
	if !res.Solved {
		res.Suggestion = suggestionOf(e.Session)
	}
	log.Debug().Str("session", e.ID).Str("guess", rec.String()).Int("plain", res.Remaining.Plain).Msg("guess applied")
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	e := sessionFrom(r)
	e.Mu.Lock()
	defer e.Mu.Unlock()

	res := stateRes{
		SessionID: e.ID,
		History:   []guessJSON{},
		Remaining: remainingOf(e.Session),
		Solved:    e.Session.Solved(),
	}
	for _, rec := range e.Session.History() {
		res.History = append(res.History, guessJSON{Word: rec.Word(), Scores: rec.Scores()})
	}
	res.Answer, _ = e.Session.Answer()
	writeJSON(w, http.StatusOK, res)
}

// handleRecommend replays a client-held history against a fresh session.
// Invalid words in the history are not recorded.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	history := make([]solver.GuessRecord, 0, len(req.History))
	for _, g := range req.History {
		rec, err := solver.ParseGuess(g.Word, g.Scores)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		history = append(history, rec)
	}

	sess, err := s.newSession(r.Context(), false)
	if err != nil {
		log.Error().Err(err).Msg("load store for recommend")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	for _, rec := range history {
		sess.Apply(rec)
	}

	res := recommendRes{Remaining: remainingOf(sess)}
	if answer, ok := sess.Answer(); ok {
		res.Suggestion = &answer
	} else {
		res.Suggestion = suggestionOf(sess)
	}
	writeJSON(w, http.StatusOK, res)
}
