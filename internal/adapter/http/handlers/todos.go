package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"todoapi/internal/adapter/http/dto"
	"todoapi/internal/adapter/http/mapper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/ports"
	"todoapi/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), validation.BuildCreateTodoInput(req))
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateValidationError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, toFieldViolations(verr)),
			)
			return
		}

		zap.L().Error("failed to create todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	var status *domain.TodoStatus
	if raw := c.Query("status"); raw != "" {
		value := domain.TodoStatus(raw)
		if !value.IsValid() {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListQuery, lang),
			)
			return
		}
		status = &value
	}

	skip, err := queryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListQuery, lang),
		)
		return
	}

	limit, err := queryInt(c, "limit", defaultListLimit)
	if err != nil || limit < 1 || limit > maxListLimit {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListQuery, lang),
		)
		return
	}

	todos, total, err := h.todoService.ListTodos(c.Request.Context(), status, skip, limit)
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TodoListResponse{Todos: mapper.ToTodoItems(todos), Total: total})
}

func (h *TodoHandler) GetByID(c *gin.Context) {
	lang := middleware.GetLang(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), todoID)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTodo, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	var req dto.UpdateTodoRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTodoInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), todoID, input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateValidationError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, toFieldViolations(verr)),
			)
			return
		}
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)

	todoID, ok := parseTodoID(c, lang)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), todoID); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTodo, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseTodoID(c *gin.Context, lang string) (uint64, bool) {
	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || todoID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoID, lang),
		)
		return 0, false
	}
	return todoID, true
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func toFieldViolations(verr *domain.ValidationError) []apierrors.FieldViolation {
	fields := make([]apierrors.FieldViolation, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, apierrors.FieldViolation{Field: v.Field, Message: v.Message})
	}
	return fields
}
