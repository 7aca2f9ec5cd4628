package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taskbook/api/internal/models"
	"github.com/taskbook/api/internal/taskid"
)

// TaskRepository handles task database operations. Every query is scoped to
// the owning user; a task id is only meaningful together with its owner.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// PageByOwner returns up to limit tasks ordered by id descending, strictly
// after cursor when cursor is non-empty. The cursor is the id of the last
// task of the previous page. The order is lexicographic: with unpadded
// sequence numbers, _9 sorts above _10 within one day, so display order
// drifts from creation order past nine tasks a day. Pagination stays
// consistent because cursor comparison uses the same total order.
func (r *TaskRepository) PageByOwner(ctx context.Context, ownerID, cursor string, limit int) ([]models.Task, error) {
	query := `
		SELECT id, user_id, description, ts, start_time, end_time
		FROM tasks
		WHERE user_id = $1
	`
	args := []any{ownerID}
	if cursor != "" {
		query += " AND id < $2"
		args = append(args, cursor)
	}
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT %d", limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ByDateRange returns all tasks whose start_time falls within
// [startISO, endISO] inclusive, ascending by start_time. Used by the
// month export.
func (r *TaskRepository) ByDateRange(ctx context.Context, ownerID, startISO, endISO string) ([]models.Task, error) {
	query := `
		SELECT id, user_id, description, ts, start_time, end_time
		FROM tasks
		WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time ASC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID, startISO, endISO)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by range: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// IDsForPrefix returns the owner's task ids sharing the given date prefix.
func (r *TaskRepository) IDsForPrefix(ctx context.Context, ownerID, prefix string) ([]string, error) {
	query := `SELECT id FROM tasks WHERE user_id = $1 AND id LIKE $2`
	rows, err := r.db.QueryContext(ctx, query, ownerID, prefix+`\_%`)
	if err != nil {
		return nil, fmt.Errorf("failed to query task ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan task id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task ids: %w", err)
	}
	return ids, nil
}

// Create mints a date-prefixed id for the task and inserts it. The returned
// task carries the assigned id and creation timestamp. A primary-key
// collision (two near-simultaneous adds racing the id scan) surfaces as
// ErrAlreadyExists.
func (r *TaskRepository) Create(ctx context.Context, ownerID, description, startTime, endTime string) (models.Task, error) {
	prefix, err := taskid.DatePrefix(startTime)
	if err != nil {
		return models.Task{}, err
	}

	existing, err := r.IDsForPrefix(ctx, ownerID, prefix)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          taskid.Next(prefix, existing),
		UserID:      ownerID,
		Description: description,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		StartTime:   startTime,
		EndTime:     endTime,
	}

	query := `
		INSERT INTO tasks (id, user_id, description, ts, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		task.ID,
		task.UserID,
		task.Description,
		task.Timestamp,
		task.StartTime,
		task.EndTime,
	)
	if isUniqueViolation(err) {
		return models.Task{}, fmt.Errorf("task %s: %w", task.ID, ErrAlreadyExists)
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update rewrites the mutable fields of the owner's task. It resolves the
// public id to a stored row first; if no row matches, nothing is mutated
// and ErrNotFound is returned.
func (r *TaskRepository) Update(ctx context.Context, ownerID, id, description, startTime, endTime string) error {
	if err := r.lookup(ctx, ownerID, id); err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET description = $3, start_time = $4, end_time = $5
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query, ownerID, id, description, startTime, endTime)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the owner's task. Same lookup-then-mutate pattern as Update.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.lookup(ctx, ownerID, id); err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) lookup(ctx context.Context, ownerID, id string) error {
	var found string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM tasks WHERE user_id = $1 AND id = $2`, ownerID, id,
	).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to look up task: %w", err)
	}
	return nil
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Description,
			&task.Timestamp,
			&task.StartTime,
			&task.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}
	return tasks, nil
}
