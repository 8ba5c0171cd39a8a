package domain_test

import (
	"strings"
	"testing"
	"time"

	"todoapi/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestValidateTitle_AcceptsUpToMaxLength(t *testing.T) {
	require.Nil(t, domain.ValidateTitle("Buy groceries"))
	require.Nil(t, domain.ValidateTitle(strings.Repeat("a", 60)))
}

func TestValidateTitle_RejectsEmpty(t *testing.T) {
	v := domain.ValidateTitle("")
	require.NotNil(t, v)
	require.Equal(t, "title", v.Field)

	require.NotNil(t, domain.ValidateTitle("   "))
}

func TestValidateTitle_RejectsTooLong(t *testing.T) {
	v := domain.ValidateTitle(strings.Repeat("a", 61))
	require.NotNil(t, v)
	require.Equal(t, "title", v.Field)
	require.Contains(t, v.Message, "60")
}

func TestValidateDescription(t *testing.T) {
	require.Nil(t, domain.ValidateDescription("Milk, eggs, bread"))

	v := domain.ValidateDescription(" ")
	require.NotNil(t, v)
	require.Equal(t, "description", v.Field)
}

func TestValidateDueDate_AbsentIsValid(t *testing.T) {
	require.Nil(t, domain.ValidateDueDate(nil, time.Now()))
}

func TestValidateDueDate_RejectsPastAndPresent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	past := now.Add(-time.Hour)
	v := domain.ValidateDueDate(&past, now)
	require.NotNil(t, v)
	require.Equal(t, "due_date", v.Field)

	// Exactly now is not strictly in the future.
	require.NotNil(t, domain.ValidateDueDate(&now, now))

	future := now.Add(time.Hour)
	require.Nil(t, domain.ValidateDueDate(&future, now))
}

func TestValidateStatus(t *testing.T) {
	require.Nil(t, domain.ValidateStatus(domain.TodoStatusPending))
	require.Nil(t, domain.ValidateStatus(domain.TodoStatusDone))
	require.Nil(t, domain.ValidateStatus(domain.TodoStatusCancelled))

	v := domain.ValidateStatus(domain.TodoStatus("Archived"))
	require.NotNil(t, v)
	require.Equal(t, "status", v.Field)
}

func TestValidationError_AggregatesViolations(t *testing.T) {
	var verr domain.ValidationError
	require.NoError(t, verr.OrNil())

	verr.Add("title", "title is required")
	verr.Add("description", "description is required")

	err := verr.OrNil()
	require.Error(t, err)
	require.Contains(t, err.Error(), "title is required")
	require.Contains(t, err.Error(), "description is required")
}

func TestUpdateTodoInput_HasFields(t *testing.T) {
	require.False(t, domain.UpdateTodoInput{}.HasFields())

	title := "x"
	require.True(t, domain.UpdateTodoInput{Title: &title}.HasFields())
	require.True(t, domain.UpdateTodoInput{DueDateSet: true}.HasFields())
}
