package tasklist

import (
	"strings"

	"github.com/taskbook/api/internal/models"
)

// Filter derives the visible subset of tasks for a date filter. An empty
// filter is the identity. Otherwise a task matches when its start time
// contains the filter as a substring, which makes a YYYY-MM-DD filter a
// prefix match against the ISO date portion. Deliberately textual: no
// range semantics, and a task whose end time spills into the filtered day
// does not match. Input order is preserved.
func Filter(tasks []models.Task, dateFilter string) []models.Task {
	if dateFilter == "" {
		return tasks
	}
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(t.StartTime, dateFilter) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
