// Package tasklist keeps a user's in-memory task list consistent across
// paginated fetches, local mutations, and date filtering.
package tasklist

import (
	"context"

	"github.com/taskbook/api/internal/database"
	"github.com/taskbook/api/internal/models"
)

// Page is one page of tasks from the store. NextCursor is the id of the
// last task in the page; HasMore is the page-full heuristic, so an exact
// multiple of the page size costs one empty trailing fetch.
type Page struct {
	Tasks      []models.Task
	NextCursor string
	HasMore    bool
}

// Gateway is the remote store contract the list depends on. Implementations
// must scope every call to ownerID and must not partially apply failures.
type Gateway interface {
	LoadPage(ctx context.Context, ownerID, cursor string) (Page, error)
	Create(ctx context.Context, ownerID, description, startTime, endTime string) (models.Task, error)
	Update(ctx context.Context, ownerID, id, description, startTime, endTime string) error
	Remove(ctx context.Context, ownerID, id string) error
}

// StoreGateway adapts the task repository to the Gateway contract.
type StoreGateway struct {
	repo     *database.TaskRepository
	pageSize int
}

// NewStoreGateway creates a gateway over the task repository with the given
// page size.
func NewStoreGateway(repo *database.TaskRepository, pageSize int) *StoreGateway {
	return &StoreGateway{repo: repo, pageSize: pageSize}
}

// LoadPage fetches one page ordered by id descending, strictly after cursor.
func (g *StoreGateway) LoadPage(ctx context.Context, ownerID, cursor string) (Page, error) {
	tasks, err := g.repo.PageByOwner(ctx, ownerID, cursor, g.pageSize)
	if err != nil {
		return Page{}, err
	}
	page := Page{Tasks: tasks, HasMore: len(tasks) == g.pageSize}
	if len(tasks) > 0 {
		page.NextCursor = tasks[len(tasks)-1].ID
	}
	return page, nil
}

// Create mints an id and inserts the task.
func (g *StoreGateway) Create(ctx context.Context, ownerID, description, startTime, endTime string) (models.Task, error) {
	return g.repo.Create(ctx, ownerID, description, startTime, endTime)
}

// Update rewrites the task's mutable fields.
func (g *StoreGateway) Update(ctx context.Context, ownerID, id, description, startTime, endTime string) error {
	return g.repo.Update(ctx, ownerID, id, description, startTime, endTime)
}

// Remove deletes the task.
func (g *StoreGateway) Remove(ctx context.Context, ownerID, id string) error {
	return g.repo.Delete(ctx, ownerID, id)
}

var _ Gateway = (*StoreGateway)(nil)
