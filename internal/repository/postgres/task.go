package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const taskColumns = `id, title, description, status, owner_id, created_at`

type TaskRepository struct {
	db Querier
}

func NewTaskRepository(db Querier) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (id, title, description, status, owner_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, string(task.Status), task.OwnerID,
	).Scan(&task.CreatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID uuid.UUID, filter model.TaskFilter) ([]model.Task, error) {
	query, args := buildListQuery(ownerID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (model.Task, error) {
	query := `SELECT ` + taskColumns + `
			  FROM tasks WHERE id = $1 AND owner_id = $2`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id, ownerID uuid.UUID, status model.TaskStatus) (model.Task, error) {
	query := `UPDATE tasks SET status = $3
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, ownerID, string(status)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// buildListQuery composes the owner-scoped listing with optional status and
// search predicates. Arguments are always bound, never interpolated.
func buildListQuery(ownerID uuid.UUID, filter model.TaskFilter) (string, []any) {
	conds := []string{"owner_id = $1"}
	args := []any{ownerID}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` +
		strings.Join(conds, " AND ") +
		` ORDER BY created_at ASC, id ASC`

	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task   model.Task
		status string
	)
	err := row.Scan(&task.ID, &task.Title, &task.Description, &status, &task.OwnerID, &task.CreatedAt)
	if err != nil {
		return model.Task{}, err
	}
	task.Status = model.TaskStatus(status)
	return task, nil
}
