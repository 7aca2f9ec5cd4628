package tasklist

import (
	"reflect"
	"testing"

	"github.com/taskbook/api/internal/models"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		task("20250114_2", "2025-01-14T23:00:00Z"),
		task("20250114_1", "2025-01-14T08:00:00Z"),
		task("20250113_1", "2025-01-13T09:00:00Z"),
	}

	tests := []struct {
		name    string
		filter  string
		wantIDs []string
	}{
		{
			name:    "empty filter is the identity",
			filter:  "",
			wantIDs: []string{"20250114_2", "20250114_1", "20250113_1"},
		},
		{
			name:    "date filter keeps matching start times in order",
			filter:  "2025-01-14",
			wantIDs: []string{"20250114_2", "20250114_1"},
		},
		{
			name:    "late-evening start still matches its own day",
			filter:  "2025-01-14T23",
			wantIDs: []string{"20250114_2"},
		},
		{
			name:    "no matches",
			filter:  "2024-12-01",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(tasks, tt.filter)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("Filter(_, %q) ids = %v, want %v", tt.filter, ids, tt.wantIDs)
			}

			// Filtering a filtered result must not narrow it further.
			again := Filter(got, tt.filter)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("Filter is not idempotent for %q", tt.filter)
			}
		})
	}
}

func TestFilter_EmptyFilterReturnsInputUnchanged(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{task("20250101_1", "2025-01-01T08:00:00Z")}
	got := Filter(tasks, "")
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("identity violated: got %v", got)
	}
}
