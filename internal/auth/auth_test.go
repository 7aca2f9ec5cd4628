package auth

import (
	"errors"
	"testing"
)

func TestValidateCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantMsg  string
	}{
		{name: "valid", email: "anna@example.com", password: "hunter2x"},
		{name: "empty email", email: "", password: "hunter2x", wantMsg: "Email cannot be empty"},
		{name: "whitespace email", email: "   ", password: "hunter2x", wantMsg: "Email cannot be empty"},
		{name: "empty password", email: "anna@example.com", password: "", wantMsg: "Password cannot be empty"},
		{name: "whitespace password", email: "anna@example.com", password: "  ", wantMsg: "Password cannot be empty"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateCredentials(tt.email, tt.password)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if Message(err) != tt.wantMsg {
				t.Errorf("Message = %q, want %q", Message(err), tt.wantMsg)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	if got := Message(&CredentialError{msg: msgInvalidCredentials}); got != msgInvalidCredentials {
		t.Errorf("credential message lost: %q", got)
	}
	if got := Message(errors.New("pq: connection refused")); got != msgGeneric {
		t.Errorf("internal error must collapse to the generic message, got %q", got)
	}
}
