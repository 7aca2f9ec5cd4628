package validation

import (
	"strings"
	"testing"
)

func TestValidateTaskInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   TaskInput
		wantErr string
	}{
		{
			name: "valid input",
			input: TaskInput{
				Description: "Gym",
				StartTime:   "2025-03-01T08:00:00Z",
				EndTime:     "2025-03-01T09:00:00Z",
			},
		},
		{
			name: "empty description",
			input: TaskInput{
				Description: "   ",
				StartTime:   "2025-03-01T08:00:00Z",
				EndTime:     "2025-03-01T09:00:00Z",
			},
			wantErr: "Description is required",
		},
		{
			name: "unparsable start time",
			input: TaskInput{
				Description: "Gym",
				StartTime:   "tomorrow at 8",
				EndTime:     "2025-03-01T09:00:00Z",
			},
			wantErr: "RFC3339",
		},
		{
			name: "end before start",
			input: TaskInput{
				Description: "Gym",
				StartTime:   "2025-03-01T09:00:00Z",
				EndTime:     "2025-03-01T08:00:00Z",
			},
			wantErr: "endTime must be after startTime",
		},
		{
			name: "end equal to start",
			input: TaskInput{
				Description: "Gym",
				StartTime:   "2025-03-01T08:00:00Z",
				EndTime:     "2025-03-01T08:00:00Z",
			},
			wantErr: "endTime must be after startTime",
		},
		{
			name: "offsets compared as instants",
			input: TaskInput{
				Description: "Gym",
				StartTime:   "2025-03-01T08:00:00+02:00",
				EndTime:     "2025-03-01T07:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := tt.input
			err := ValidateTaskInput(&in)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  Gym  ", "Gym"},
		{"line1\nline2", "line1\nline2"},
		{"tab\there", "tab\there"},
		{"bell\x07gone", "bellgone"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeText(tt.in); got != tt.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
