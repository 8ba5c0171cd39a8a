package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/ports"
)

const todoColumns = "id, title, description, status, due_date, created_at, updated_at"

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID          uint64       `db:"id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Status      string       `db:"status"`
	DueDate     sql.NullTime `db:"due_date"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, input domain.CreateTodoInput, status domain.TodoStatus) (domain.Todo, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO todos (title, description, status, due_date) VALUES (?, ?, ?, ?)",
		input.Title, input.Description, string(status), input.DueDate,
	)
	if err != nil {
		return domain.Todo{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Todo{}, err
	}

	// Read the record back so the caller sees the store-assigned timestamps.
	return r.GetByID(ctx, uint64(id))
}

func (r *TodoRepository) GetByID(ctx context.Context, id uint64) (domain.Todo, error) {
	var row todoRow
	err := r.db.GetContext(ctx, &row, "SELECT "+todoColumns+" FROM todos WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, err
	}
	return mapTodoRowToDomainTodo(row), nil
}

func (r *TodoRepository) List(ctx context.Context, status *domain.TodoStatus, offset, limit int) ([]domain.Todo, error) {
	query := "SELECT " + todoColumns + " FROM todos"
	args := make([]interface{}, 0, 3)
	if status != nil {
		query += " WHERE status = ?"
		args = append(args, string(*status))
	}
	query += " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodoRowToDomainTodo(row))
	}
	return todos, nil
}

func (r *TodoRepository) Count(ctx context.Context, status *domain.TodoStatus) (int64, error) {
	query := "SELECT COUNT(*) FROM todos"
	args := make([]interface{}, 0, 1)
	if status != nil {
		query += " WHERE status = ?"
		args = append(args, string(*status))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TodoRepository) Update(ctx context.Context, id uint64, input domain.UpdateTodoInput) (domain.Todo, error) {
	// Existence check up front so a missing id is reported as not found
	// rather than a silent zero-row update.
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Todo{}, err
	}

	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)
	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, input.DueDate)
	}
	sets = append(sets, "updated_at = NOW(6)")
	args = append(args, id)

	query := "UPDATE todos SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Todo{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *TodoRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func mapTodoRowToDomainTodo(row todoRow) domain.Todo {
	todo := domain.Todo{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TodoStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		todo.DueDate = &value
	}

	return todo
}
