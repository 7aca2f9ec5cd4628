package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSessionToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{"cookie wins", "tok-cookie", "Bearer tok-header", "tok-cookie"},
		{"bearer fallback", "", "Bearer tok-header", "tok-header"},
		{"bearer with padding", "", "Bearer   tok-header  ", "tok-header"},
		{"wrong scheme ignored", "", "Basic dXNlcg==", ""},
		{"nothing", "", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/tasks", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if got := SessionToken(r); got != tt.want {
				t.Errorf("SessionToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionCookie(t *testing.T) {
	t.Parallel()

	c := SessionCookie("tok", 24*time.Hour)
	if c.Name != sessionCookieName || c.Value != "tok" {
		t.Errorf("cookie = %v", c)
	}
	if !c.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if c.MaxAge != 86400 {
		t.Errorf("MaxAge = %d, want 86400", c.MaxAge)
	}

	expired := SessionCookie("", 0)
	if expired.MaxAge != -1 {
		t.Errorf("expired MaxAge = %d, want -1", expired.MaxAge)
	}
}
