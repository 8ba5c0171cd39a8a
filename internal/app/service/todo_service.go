package service

import (
	"context"
	"strings"
	"time"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
	now            func() time.Time
}

func NewTodoService(todoRepository ports.TodoRepository) *TodoService {
	return &TodoService{todoRepository: todoRepository, now: time.Now}
}

var _ ports.TodoService = (*TodoService)(nil)

// CreateTodo validates every create-time rule, aggregates all failures into
// a single ValidationError and only then persists, with the status forced to
// Pending regardless of client input.
func (s *TodoService) CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	var verr domain.ValidationError
	if v := domain.ValidateTitle(input.Title); v != nil {
		verr.Violations = append(verr.Violations, *v)
	}
	if v := domain.ValidateDescription(input.Description); v != nil {
		verr.Violations = append(verr.Violations, *v)
	}
	if v := domain.ValidateDueDate(input.DueDate, s.now()); v != nil {
		verr.Violations = append(verr.Violations, *v)
	}
	if err := verr.OrNil(); err != nil {
		return domain.Todo{}, err
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	return s.todoRepository.Create(ctx, input, domain.TodoStatusPending)
}

func (s *TodoService) GetTodo(ctx context.Context, id uint64) (domain.Todo, error) {
	return s.todoRepository.GetByID(ctx, id)
}

// ListTodos delegates filtering and the offset/limit window entirely to the
// repository and pairs the page with the total count for the same filter.
func (s *TodoService) ListTodos(ctx context.Context, status *domain.TodoStatus, offset, limit int) ([]domain.Todo, int64, error) {
	todos, err := s.todoRepository.List(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.todoRepository.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return todos, total, nil
}

// UpdateTodo validates only the supplied fields, with the same rules as
// creation. Status may move freely between the three values.
func (s *TodoService) UpdateTodo(ctx context.Context, id uint64, input domain.UpdateTodoInput) (domain.Todo, error) {
	var verr domain.ValidationError
	if input.Title != nil {
		if v := domain.ValidateTitle(*input.Title); v != nil {
			verr.Violations = append(verr.Violations, *v)
		}
	}
	if input.Description != nil {
		if v := domain.ValidateDescription(*input.Description); v != nil {
			verr.Violations = append(verr.Violations, *v)
		}
	}
	if input.Status != nil {
		if v := domain.ValidateStatus(*input.Status); v != nil {
			verr.Violations = append(verr.Violations, *v)
		}
	}
	if input.DueDate != nil {
		if v := domain.ValidateDueDate(input.DueDate, s.now()); v != nil {
			verr.Violations = append(verr.Violations, *v)
		}
	}
	if err := verr.OrNil(); err != nil {
		return domain.Todo{}, err
	}

	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		input.Title = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		input.Description = &trimmed
	}

	return s.todoRepository.Update(ctx, id, input)
}

func (s *TodoService) DeleteTodo(ctx context.Context, id uint64) error {
	return s.todoRepository.Delete(ctx, id)
}
