// apps/solver/internal/httpserver/routes_words.go
//
// Vocabulary endpoints.
//   - GET  /affinity/{letter}?limit=n → most frequent bigrams starting with letter
//   - POST /admin/counts              → add word counts to the store (admin only)

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

const defaultAffinityLimit = 5

type affinityRes struct {
	Letter       string               `json:"letter"`
	Vocabulary   int                  `json:"vocabulary"`
	Combinations []solver.Combination `json:"combinations"`
}

// handleAffinity serves the table calibrated over the full vocabulary.
func (s *Server) handleAffinity(w http.ResponseWriter, r *http.Request) {
	letter := strings.ToLower(chi.URLParam(r, "letter"))
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		writeError(w, http.StatusBadRequest, "letter must be a single a-z character")
		return
	}
	limit := defaultAffinityLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	ranked := s.affinity.Ranked(letter[0])
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []solver.Combination{}
	}
	writeJSON(w, http.StatusOK, affinityRes{
		Letter:       letter,
		Vocabulary:   s.affinity.Vocabulary(),
		Combinations: ranked,
	})
}

type addCountsReq struct {
	Counts map[string]int `json:"counts"`
}

type addCountsRes struct {
	Added int `json:"added"`
}

// handleAddCounts validates every entry before writing any.
func (s *Server) handleAddCounts(w http.ResponseWriter, r *http.Request) {
	var req addCountsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	counts := make(map[string]int, len(req.Counts))
	for word, n := range req.Counts {
		lw := strings.ToLower(word)
		if !solver.ValidWord(lw) || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid entry: "+word)
			return
		}
		counts[lw] += n
	}
	if err := s.store.AddCounts(r.Context(), counts); err != nil {
		log.Error().Err(err).Msg("add counts")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	log.Info().Int("words", len(counts)).Msg("counts added")
	writeJSON(w, http.StatusOK, addCountsRes{Added: len(counts)})
}
