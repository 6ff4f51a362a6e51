package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/go-task-manager/internal/domain/entity"
	"github.com/taskhub/go-task-manager/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Description, t.OwnerID)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.OwnerID,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepository) ListAllWithOwner(ctx context.Context) ([]entity.TaskWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.title, t.description, t.user_id, t.created_at, t.updated_at,
		       u.name, u.email
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.TaskWithOwner, 0)
	for rows.Next() {
		var t entity.TaskWithOwner
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.OwnerID,
			&t.CreatedAt, &t.UpdatedAt, &t.OwnerName, &t.OwnerEmail); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
	`, t.Title, t.Description, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM tasks`).Scan(&n)
	return n, err
}

func (r *TaskRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM tasks WHERE created_at >= $1`, since).Scan(&n)
	return n, err
}

func scanTasks(rows pgx.Rows) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.OwnerID,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
