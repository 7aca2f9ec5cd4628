package models

// Task represents a single time-boxed task owned by a user.
//
// The three time fields are RFC3339 strings rather than time.Time: the
// stored encoding is the canonical value (it is the sort key, the date
// filter operates on it as text, and the export formats emit it verbatim),
// so round-tripping through time.Time would only invite normalization
// drift.
type Task struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}
