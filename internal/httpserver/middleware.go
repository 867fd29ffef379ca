// apps/solver/internal/httpserver/middleware.go
//
// Request middleware: default JSON content type, CORS for the web client,
// bearer-token session lookup and admin token checks.

package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Admin-Token")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ JWT ----------------------------------------

var (
	errNoSession    = errors.New("token has no session id")
	errInvalidToken = errors.New("invalid token")
)

// signSession creates an HS256 JWT naming session id, valid until exp.
func (s *Server) signSession(id string, exp time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": s.now().Unix(),
	})
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

// parseSession validates tok and returns its session id.
func (s *Server) parseSession(tok string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errInvalidToken
	}
	id, _ := claims["sid"].(string)
	if id == "" {
		return "", errNoSession
	}
	return id, nil
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ctxSessionKey is the context key type for the live session entry.
type ctxSessionKey struct{}

// requireSession enforces a valid bearer token naming a live session and
// injects the entry into the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r)
		if tok == "" {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		id, err := s.parseSession(tok)
		if err != nil {
			http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
			return
		}
		e, err := s.sessions.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"session_expired"}`, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, `{"error":"store_error"}`, http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxSessionKey{}, e)))
	})
}

func sessionFrom(r *http.Request) *store.SessionEntry {
	e, _ := r.Context().Value(ctxSessionKey{}).(*store.SessionEntry)
	return e
}

// requireAdmin checks X-Admin-Token against the configured bcrypt hash.
// Admin routes are closed when no hash is configured.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminTokenHash == "" {
			http.Error(w, `{"error":"admin_disabled"}`, http.StatusForbidden)
			return
		}
		tok := r.Header.Get("X-Admin-Token")
		if tok == "" || bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminTokenHash), []byte(tok)) != nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
