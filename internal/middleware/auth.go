package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/taskbook/api/internal/auth"
	"github.com/taskbook/api/internal/request"
	"github.com/taskbook/api/internal/session"
)

const sessionCookieName = "taskbook_session"

// Auth resolves the session token into a user and attaches it to the
// request context. Requests with no resolvable owner are rejected here,
// before any task query runs.
func Auth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				respondUnauthorized(w, "You must be logged in to perform this action.")
				return
			}

			user, err := svc.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					respondUnauthorized(w, "Your session has expired. Please log in again.")
					return
				}
				respondUnauthorized(w, "You must be logged in to perform this action.")
				return
			}

			next.ServeHTTP(w, r.WithContext(request.WithUser(r.Context(), user)))
		})
	}
}

// SessionToken pulls the session token from the cookie, falling back to a
// Bearer header for non-browser clients.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// SessionCookie builds the session cookie for a token; maxAge <= 0 expires it.
func SessionCookie(token string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		c.MaxAge = int(ttl.Seconds())
	} else {
		c.MaxAge = -1
	}
	return c
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "Unauthorized",
		"message": message,
	})
}
