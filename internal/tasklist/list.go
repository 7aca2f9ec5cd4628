package tasklist

import (
	"context"
	"sync"

	"github.com/taskbook/api/internal/models"
)

// Snapshot is a stable, read-only view of the list handed to callers.
type Snapshot struct {
	Tasks       []models.Task `json:"tasks"`
	Total       int           `json:"total"`
	CanLoadMore bool          `json:"canLoadMore"`
	FilterDate  string        `json:"filterDate"`
}

// List is the stateful core for one owner: the authoritative cache of all
// fetched tasks plus the filtered view derived from it. Every mutation first
// round-trips through the gateway; a failed call leaves the state exactly as
// it was. Add, Edit, and Delete hold the lock across their gateway call,
// which also serializes rapid double-submissions of the same gesture.
type List struct {
	gw    Gateway
	owner string

	mu       sync.Mutex
	st       state
	inFlight bool // single-flight guard for LoadMore
}

// NewList creates an empty list for the owner.
func NewList(gw Gateway, owner string) *List {
	return &List{gw: gw, owner: owner}
}

// Refresh discards the cursor and replaces the cache with the first page.
// On failure the prior state is untouched and no retry is attempted.
func (l *List) Refresh(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	page, err := l.gw.LoadPage(ctx, l.owner, "")
	if err != nil {
		return l.snapshotLocked(), err
	}
	l.st = l.st.withInitialPage(page)
	return l.snapshotLocked(), nil
}

// LoadMore fetches the next page and appends it to the cache. It is a no-op
// (loaded=false, nil error) while another LoadMore is in flight or when no
// further page is expected, so double-invocation never issues a second
// gateway call.
func (l *List) LoadMore(ctx context.Context) (snap Snapshot, loaded bool, err error) {
	l.mu.Lock()
	if l.inFlight || !l.st.canLoadMore() {
		snap = l.snapshotLocked()
		l.mu.Unlock()
		return snap, false, nil
	}
	l.inFlight = true
	cursor := l.st.cursor
	l.mu.Unlock()

	page, err := l.gw.LoadPage(ctx, l.owner, cursor)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight = false
	if err != nil {
		return l.snapshotLocked(), false, err
	}
	l.st = l.st.withNextPage(page)
	return l.snapshotLocked(), true, nil
}

// Add creates the task remotely and prepends it to the cache.
func (l *List) Add(ctx context.Context, description, startTime, endTime string) (models.Task, Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	task, err := l.gw.Create(ctx, l.owner, description, startTime, endTime)
	if err != nil {
		return models.Task{}, l.snapshotLocked(), err
	}
	l.st = l.st.withAdded(task)
	return task, l.snapshotLocked(), nil
}

// Edit updates the task remotely, then merges the new fields into the cache
// entry, preserving id, owner, and creation timestamp. The visible view is
// re-derived, so an edit that moves a task off the filtered day also drops
// it from view.
func (l *List) Edit(ctx context.Context, id, description, startTime, endTime string) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gw.Update(ctx, l.owner, id, description, startTime, endTime); err != nil {
		return l.snapshotLocked(), err
	}
	l.st = l.st.withEdited(id, description, startTime, endTime)
	return l.snapshotLocked(), nil
}

// Delete removes the task remotely, then from the cache.
func (l *List) Delete(ctx context.Context, id string) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.gw.Remove(ctx, l.owner, id); err != nil {
		return l.snapshotLocked(), err
	}
	l.st = l.st.withRemoved(id)
	return l.snapshotLocked(), nil
}

// SetFilter activates a date filter over the already-fetched cache. No
// remote query is made; pagination is disabled while the filter is active.
func (l *List) SetFilter(date string) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.st = l.st.withFilter(date)
	return l.snapshotLocked()
}

// ClearFilter drops the filter, restoring the full cache order and the
// load-more flag from the last fetch.
func (l *List) ClearFilter() Snapshot {
	return l.SetFilter("")
}

// Snapshot returns the current view without touching the gateway.
func (l *List) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Suggestions derives autocomplete candidates from the cache, excluding the
// caller's in-progress input.
func (l *List) Suggestions(query, exclude string, limit int) []string {
	l.mu.Lock()
	all := l.st.all
	l.mu.Unlock()
	return ExcludeCurrent(Suggest(all, query, limit), exclude)
}

func (l *List) snapshotLocked() Snapshot {
	tasks := l.st.visible()
	if tasks == nil {
		tasks = []models.Task{} // keep "tasks" a JSON array, never null
	}
	return Snapshot{
		Tasks:       tasks,
		Total:       len(l.st.all),
		CanLoadMore: l.st.canLoadMore(),
		FilterDate:  l.st.filterDate,
	}
}
