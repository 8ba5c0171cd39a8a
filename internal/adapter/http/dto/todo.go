package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DueDate accepts either an RFC3339 timestamp or a date-only value
// ("2006-01-02", stored as start of that day in UTC) from JSON.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}

	s := strings.TrimSpace(*raw)
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		}
		d.t = &parsed
		return nil
	}
	return fmt.Errorf("due_date: use RFC3339 datetime or date (YYYY-MM-DD)")
}

// Ptr returns the parsed value for use in the domain input.
func (d DueDate) Ptr() *time.Time { return d.t }

type TodoItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type TodoListResponse struct {
	Todos []TodoItem `json:"todos"`
	Total int64      `json:"total"`
}

type CreateTodoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     *DueDate `json:"due_date"`
}

type UpdateTodoRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	DueDate     *DueDate `json:"due_date"`
}
