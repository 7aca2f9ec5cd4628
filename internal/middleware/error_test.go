package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestErrorHandler_RecoversPanic(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	ErrorHandler(zap.NewNop())(next).ServeHTTP(rec, httptest.NewRequest("GET", "/tasks", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["success"] != false || body["error"] != "Internal Server Error" {
		t.Errorf("envelope = %v", body)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("panic detail leaked to the client")
	}
}

func TestErrorHandler_PassesThrough(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	ErrorHandler(zap.NewNop())(next).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := ContentType(next)

	tests := []struct {
		name        string
		method      string
		body        string
		contentType string
		wantStatus  int
	}{
		{"json post", "POST", `{"description":"x"}`, "application/json", http.StatusOK},
		{"json with charset", "POST", `{}`, "application/json; charset=utf-8", http.StatusOK},
		{"missing header", "POST", `{}`, "", http.StatusBadRequest},
		{"wrong type", "PATCH", `{}`, "text/plain", http.StatusUnsupportedMediaType},
		{"wrong type put", "PUT", `{}`, "application/xml", http.StatusUnsupportedMediaType},
		{"bodyless post skips check", "POST", "", "", http.StatusOK},
		{"get ignored", "GET", "", "", http.StatusOK},
		{"delete ignored", "DELETE", "", "", http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, "/tasks", nil)
			} else {
				req = httptest.NewRequest(tt.method, "/tasks", strings.NewReader(tt.body))
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
