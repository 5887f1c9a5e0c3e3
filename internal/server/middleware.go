package server

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/ghstats/ghstats/internal/auth"
	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionKey   contextKey = "session"
)

// sessionCookie carries the signed session token.
const sessionCookie = "ghstats_session"

// requestIDMiddleware adds a unique request id to each request.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// recoverMiddleware turns panics into 500 responses.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// sessionFromContext returns the verified session, if any.
func sessionFromContext(ctx context.Context) (auth.Session, bool) {
	s, ok := ctx.Value(sessionKey).(auth.Session)
	return s, ok
}

// sessionMiddleware requires a valid session cookie.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		session, err := s.sessions.Verify(cookie.Value)
		if err != nil {
			http.Error(w, "invalid session", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a route on a role predicate, e.g. auth.Role.CanViewStats.
func requireRole(allowed func(auth.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := sessionFromContext(r.Context())
			if !ok || !allowed(session.Role) {
				http.Error(w, "not authorized", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// dataTokenMiddleware authenticates embedded-dashboard requests: the data
// token travels as the Basic auth username, the password is ignored.
func (s *Server) dataTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := basicAuthToken(r)
		if !ok {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		email, err := s.sessions.VerifyDataToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		// Data tokens grant stats access for the embedded user.
		ctx := context.WithValue(r.Context(), sessionKey, auth.Session{Email: email, Role: auth.RoleRepoViewer})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func basicAuthToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Basic ") {
		return "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	if err != nil {
		return "", false
	}
	token, _, _ := strings.Cut(string(decoded), ":")
	if token == "" {
		return "", false
	}
	return token, true
}
