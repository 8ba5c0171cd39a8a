package ports

import (
	"context"

	"todoapi/internal/core/domain"
)

type TodoRepository interface {
	Create(ctx context.Context, input domain.CreateTodoInput, status domain.TodoStatus) (domain.Todo, error)
	GetByID(ctx context.Context, id uint64) (domain.Todo, error)
	List(ctx context.Context, status *domain.TodoStatus, offset, limit int) ([]domain.Todo, error)
	Count(ctx context.Context, status *domain.TodoStatus) (int64, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTodoInput) (domain.Todo, error)
	Delete(ctx context.Context, id uint64) error
}

type TodoService interface {
	CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error)
	GetTodo(ctx context.Context, id uint64) (domain.Todo, error)
	ListTodos(ctx context.Context, status *domain.TodoStatus, offset, limit int) ([]domain.Todo, int64, error)
	UpdateTodo(ctx context.Context, id uint64, input domain.UpdateTodoInput) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id uint64) error
}
