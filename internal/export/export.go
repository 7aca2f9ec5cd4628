// Package export serializes a month of tasks for download as JSON or CSV.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/taskbook/api/internal/models"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name for month (1-12).
func MonthName(month int) string {
	return monthNames[month-1]
}

// Filename builds the download filename, e.g. tasks_March_2025.csv.
func Filename(year, month int, ext string) string {
	return fmt.Sprintf("tasks_%s_%d.%s", MonthName(month), year, ext)
}

// MonthRange returns the inclusive RFC3339 bounds covering the month in UTC.
func MonthRange(year, month int) (startISO, endISO string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}

// Document is the JSON export envelope.
type Document struct {
	ExportDate string        `json:"exportDate"`
	Month      string        `json:"month"`
	Year       int           `json:"year"`
	TotalTasks int           `json:"totalTasks"`
	Tasks      []models.Task `json:"tasks"`
}

// JSON renders the pretty-printed JSON export for a month of tasks.
func JSON(tasks []models.Task, year, month int, now time.Time) ([]byte, error) {
	doc := Document{
		ExportDate: now.UTC().Format(time.RFC3339),
		Month:      MonthName(month),
		Year:       year,
		TotalTasks: len(tasks),
		Tasks:      tasks,
	}
	if doc.Tasks == nil {
		doc.Tasks = []models.Task{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

const csvHeader = "id,description,timestamp,startTime,endTime"

// CSV renders tasks with raw RFC3339 timestamps. Values are escaped per
// standard CSV quoting: internal quotes doubled, the value wrapped in
// quotes when it contains a comma, quote, or newline.
func CSV(tasks []models.Task) string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, csvHeader)
	for _, t := range tasks {
		fields := []string{t.ID, t.Description, t.Timestamp, t.StartTime, t.EndTime}
		escaped := make([]string, len(fields))
		for i, f := range fields {
			escaped[i] = escapeCSV(f)
		}
		lines = append(lines, strings.Join(escaped, ","))
	}
	return strings.Join(lines, "\n") + "\n"
}

const formattedCSVHeader = "ID,Description,Created At,Start Time,End Time"

// FormattedCSV renders tasks with human-readable dates. The description is
// always quoted since free text routinely carries commas.
func FormattedCSV(tasks []models.Task) string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, formattedCSVHeader)
	for _, t := range tasks {
		description := strings.ReplaceAll(t.Description, `"`, `""`)
		lines = append(lines, fmt.Sprintf(`%s,"%s",%s,%s,%s`,
			t.ID,
			description,
			formatDate(t.Timestamp),
			formatDate(t.StartTime),
			formatDate(t.EndTime),
		))
	}
	return strings.Join(lines, "\n") + "\n"
}

func escapeCSV(value string) string {
	needsQuotes := strings.ContainsAny(value, ",\"\n")
	value = strings.ReplaceAll(value, `"`, `""`)
	if needsQuotes {
		return `"` + value + `"`
	}
	return value
}

// formatDate renders an RFC3339 value like "Mar 1, 2025, 08:00"; anything
// unparsable passes through untouched.
func formatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006, 15:04")
}
