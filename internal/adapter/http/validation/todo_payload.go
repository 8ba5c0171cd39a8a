package validation

import (
	"bytes"
	"encoding/json"
	"errors"

	"todoapi/internal/adapter/http/dto"
	"todoapi/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

// BuildCreateTodoInput maps a create request onto the domain input. Field
// content rules (required title/description, future due date) belong to the
// service; a status key in the payload is ignored because every todo starts
// as Pending.
func BuildCreateTodoInput(req dto.CreateTodoRequest) domain.CreateTodoInput {
	input := domain.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil {
		input.DueDate = req.DueDate.Ptr()
	}
	return input
}

// BuildUpdateTodoInput maps a partial update onto the domain input. The raw
// key set distinguishes absent fields from explicit nulls: a null due_date
// clears the deadline, while a null title, description or status is an
// invalid payload. Unrecognized keys are ignored, but a body without any
// recognized field is rejected.
func BuildUpdateTodoInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.UpdateTodoInput, error) {
	if !hasTodoUpdateFields(raw) {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}
	if hasJSONField(raw, "description") && req.Description == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	var status *domain.TodoStatus
	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
		}
		value := domain.TodoStatus(*req.Status)
		status = &value
	}

	input := domain.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}

	if hasJSONField(raw, "due_date") {
		input.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
			}
			input.DueDate = req.DueDate.Ptr()
		}
	}

	return input, nil
}

func hasTodoUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "due_date")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
