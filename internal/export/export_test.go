package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/taskbook/api/internal/models"
)

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month int
		ext   string
		want  string
	}{
		{2025, 3, "json", "tasks_March_2025.json"},
		{2024, 12, "csv", "tasks_December_2024.csv"},
		{2023, 1, "csv", "tasks_January_2023.csv"},
	}
	for _, tt := range tests {
		if got := Filename(tt.year, tt.month, tt.ext); got != tt.want {
			t.Errorf("Filename(%d, %d, %q) = %q, want %q", tt.year, tt.month, tt.ext, got, tt.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	t.Parallel()

	start, end := MonthRange(2025, 2)
	if start != "2025-02-01T00:00:00Z" {
		t.Errorf("start = %q", start)
	}
	if end != "2025-02-28T23:59:59Z" {
		t.Errorf("end = %q", end)
	}

	// Leap year.
	_, end = MonthRange(2024, 2)
	if end != "2024-02-29T23:59:59Z" {
		t.Errorf("leap-year end = %q", end)
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{{
		ID:          "20250301_1",
		UserID:      "anna@example.com",
		Description: "Gym",
		Timestamp:   "2025-03-01T07:00:00Z",
		StartTime:   "2025-03-01T08:00:00Z",
		EndTime:     "2025-03-01T09:00:00Z",
	}}
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	out, err := JSON(tasks, 2025, 3, now)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Month != "March" || doc.Year != 2025 || doc.TotalTasks != 1 {
		t.Errorf("envelope wrong: %+v", doc)
	}
	if doc.ExportDate != "2025-04-01T12:00:00Z" {
		t.Errorf("export date = %q", doc.ExportDate)
	}
	if !strings.Contains(string(out), "\n  ") {
		t.Error("export must be pretty-printed")
	}
}

func TestJSON_EmptyMonth(t *testing.T) {
	t.Parallel()

	out, err := JSON(nil, 2025, 3, time.Now())
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if !strings.Contains(string(out), `"tasks": []`) {
		t.Errorf("empty month must serialize tasks as [], got:\n%s", out)
	}
}

func TestCSV(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		{
			ID:          "20250301_1",
			Description: `Plan "big" launch, phase 1`,
			Timestamp:   "2025-03-01T07:00:00Z",
			StartTime:   "2025-03-01T08:00:00Z",
			EndTime:     "2025-03-01T09:00:00Z",
		},
		{
			ID:          "20250301_2",
			Description: "Gym",
			Timestamp:   "2025-03-01T09:00:00Z",
			StartTime:   "2025-03-01T10:00:00Z",
			EndTime:     "2025-03-01T11:00:00Z",
		},
	}

	out := CSV(tasks)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,description,timestamp,startTime,endTime" {
		t.Errorf("header = %q", lines[0])
	}
	wantRow := `20250301_1,"Plan ""big"" launch, phase 1",2025-03-01T07:00:00Z,2025-03-01T08:00:00Z,2025-03-01T09:00:00Z`
	if lines[1] != wantRow {
		t.Errorf("quoted row:\ngot  %s\nwant %s", lines[1], wantRow)
	}
	if lines[2] != "20250301_2,Gym,2025-03-01T09:00:00Z,2025-03-01T10:00:00Z,2025-03-01T11:00:00Z" {
		t.Errorf("plain row = %q", lines[2])
	}
}

func TestCSV_Empty(t *testing.T) {
	t.Parallel()

	if got := CSV(nil); got != "id,description,timestamp,startTime,endTime\n" {
		t.Errorf("empty CSV = %q", got)
	}
}

func TestFormattedCSV(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{{
		ID:          "20250301_1",
		Description: `Say "hi"`,
		Timestamp:   "2025-03-01T07:00:00Z",
		StartTime:   "2025-03-01T08:30:00Z",
		EndTime:     "bad-value",
	}}

	out := FormattedCSV(tasks)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "ID,Description,Created At,Start Time,End Time" {
		t.Errorf("header = %q", lines[0])
	}
	want := `20250301_1,"Say ""hi""",Mar 1, 2025, 07:00,Mar 1, 2025, 08:30,bad-value`
	if lines[1] != want {
		t.Errorf("row:\ngot  %s\nwant %s", lines[1], want)
	}
}
