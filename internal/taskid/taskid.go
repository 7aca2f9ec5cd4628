// Package taskid implements the task identifier scheme: YYYYMMDD_N, where
// the date prefix comes from the task's start time and N is a 1-based
// sequence unique within that date for one owner.
package taskid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime is returned when a start time cannot be parsed and
// therefore cannot yield a date prefix.
var ErrMalformedTime = errors.New("malformed start time")

// DatePrefix derives the YYYYMMDD prefix from an RFC3339 start time.
// The calendar date is taken in the offset embedded in the value itself,
// never the process-local zone, so "2025-03-01T23:30:00+02:00" always lands
// on 20250301 regardless of where the server runs.
func DatePrefix(startTime string) (string, error) {
	t, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, startTime)
	}
	return t.Format("20060102"), nil
}

// Next scans existing ids for the highest sequence number sharing prefix and
// returns the id one past it. Ids that do not carry the prefix, or whose
// suffix is not a number, are ignored.
//
// This is a read-max-then-insert scheme, not an atomic counter: two
// concurrent inserts for the same owner and day can race to the same id.
// Acceptable for a single-writer personal tool; the tasks primary key turns
// the collision into an already-exists failure rather than silent overwrite.
func Next(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		n, ok := Sequence(prefix, id)
		if ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s_%d", prefix, max+1)
}

// Sequence extracts the sequence number from id if it carries the given
// date prefix.
func Sequence(prefix, id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix+"_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
