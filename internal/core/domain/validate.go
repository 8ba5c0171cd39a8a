package domain

import (
	"fmt"
	"strings"
	"time"
)

const MaxTitleLength = 60

// ValidateTitle checks that a title is non-empty after trimming and at most
// MaxTitleLength characters.
func ValidateTitle(title string) *FieldViolation {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return &FieldViolation{Field: "title", Message: "title is required"}
	}
	if len([]rune(trimmed)) > MaxTitleLength {
		return &FieldViolation{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength),
		}
	}
	return nil
}

// ValidateDescription checks that a description is non-empty.
func ValidateDescription(description string) *FieldViolation {
	if strings.TrimSpace(description) == "" {
		return &FieldViolation{Field: "description", Message: "description is required"}
	}
	return nil
}

// ValidateDueDate checks that a due date, when supplied, is strictly in the
// future. A nil due date carries no deadline and is always valid.
func ValidateDueDate(dueDate *time.Time, now time.Time) *FieldViolation {
	if dueDate == nil {
		return nil
	}
	if !dueDate.After(now) {
		return &FieldViolation{Field: "due_date", Message: "due_date must be in the future"}
	}
	return nil
}

// ValidateStatus checks that a status is one of the three known values.
func ValidateStatus(status TodoStatus) *FieldViolation {
	if !status.IsValid() {
		return &FieldViolation{
			Field:   "status",
			Message: "status must be one of Pending, Done, Cancelled",
		}
	}
	return nil
}
