package tasklist

import "github.com/taskbook/api/internal/models"

// state is the value the list reduces over: the full fetched cache, the
// pagination cursor, the page-full flag from the last fetch, and the active
// filter. Transitions are pure; the visible subset is always re-derived
// from the cache rather than patched alongside it.
type state struct {
	all        []models.Task
	cursor     string
	hasMore    bool
	filterDate string
}

// visible projects the currently displayed subset out of the cache.
func (s state) visible() []models.Task {
	return Filter(s.all, s.filterDate)
}

// canLoadMore reports whether a further page fetch is allowed. An active
// filter disables pagination: filtering operates only over already-fetched
// data. Clearing the filter restores the flag from the last fetch state.
func (s state) canLoadMore() bool {
	return s.hasMore && s.filterDate == ""
}

// withInitialPage replaces the cache with a fresh first page.
func (s state) withInitialPage(p Page) state {
	s.all = append([]models.Task(nil), p.Tasks...)
	s.cursor = p.NextCursor
	s.hasMore = p.HasMore
	return s
}

// withNextPage appends a follow-up page and advances the cursor.
func (s state) withNextPage(p Page) state {
	all := make([]models.Task, 0, len(s.all)+len(p.Tasks))
	all = append(all, s.all...)
	all = append(all, p.Tasks...)
	s.all = all
	s.cursor = p.NextCursor
	s.hasMore = p.HasMore
	return s
}

// withAdded prepends a newly created task. Newest-first placement is a
// display convention, not a server ordering guarantee.
func (s state) withAdded(task models.Task) state {
	all := make([]models.Task, 0, len(s.all)+1)
	all = append(all, task)
	all = append(all, s.all...)
	s.all = all
	return s
}

// withEdited merges the new mutable fields into the matching cache entry,
// preserving id, owner, and creation timestamp.
func (s state) withEdited(id, description, startTime, endTime string) state {
	all := make([]models.Task, len(s.all))
	copy(all, s.all)
	for i := range all {
		if all[i].ID == id {
			all[i].Description = description
			all[i].StartTime = startTime
			all[i].EndTime = endTime
			break
		}
	}
	s.all = all
	return s
}

// withRemoved drops the matching cache entry.
func (s state) withRemoved(id string) state {
	all := make([]models.Task, 0, len(s.all))
	for _, t := range s.all {
		if t.ID != id {
			all = append(all, t)
		}
	}
	s.all = all
	return s
}

// withFilter sets the active date filter; empty clears it.
func (s state) withFilter(date string) state {
	s.filterDate = date
	return s
}
