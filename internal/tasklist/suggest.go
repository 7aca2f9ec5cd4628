package tasklist

import (
	"strings"

	"github.com/taskbook/api/internal/models"
)

// DefaultSuggestionLimit caps suggestion results when the caller does not.
const DefaultSuggestionLimit = 10

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Suggest produces autocomplete candidates for the description field.
// Candidates are the distinct descriptions across tasks, narrowed to those
// whose normalized form starts with the normalized query. Descriptions that
// differ only in case or surrounding whitespace collapse to their first
// occurrence, which also keeps its original casing. An empty query matches
// everything.
func Suggest(tasks []models.Task, query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	q := normalize(query)

	seen := make(map[string]bool, len(tasks))
	suggestions := make([]string, 0, limit)
	for _, t := range tasks {
		key := normalize(t.Description)
		if seen[key] {
			continue
		}
		seen[key] = true
		if q != "" && !strings.HasPrefix(key, q) {
			continue
		}
		suggestions = append(suggestions, t.Description)
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions
}

// ExcludeCurrent drops the suggestion that matches the in-progress input
// itself, so a text box is never offered its own current value.
func ExcludeCurrent(suggestions []string, current string) []string {
	cur := normalize(current)
	if cur == "" {
		return suggestions
	}
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if normalize(s) != cur {
			out = append(out, s)
		}
	}
	return out
}
