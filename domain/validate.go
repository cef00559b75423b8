package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError reports one invalid request field. Validation runs before
// any store access and surfaces every failing field at once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	boardTitleMax  = 100
	boardDescMax   = 500
	taskTitleMax   = 200
	taskDescMax    = 1000
	columnTitleMax = 100
	statusMax      = 50
)

// ValidateNewBoard checks the fields of a board about to be created.
func ValidateNewBoard(b Board) []FieldError {
	var errs []FieldError
	errs = checkText(errs, "title", b.Title, true, boardTitleMax)
	errs = checkText(errs, "description", b.Description, false, boardDescMax)
	return errs
}

// ValidateBoardPatch checks the provided fields of a board update.
func ValidateBoardPatch(p BoardPatch) []FieldError {
	var errs []FieldError
	if p.Title != nil {
		errs = checkText(errs, "title", *p.Title, true, boardTitleMax)
	}
	if p.Description != nil {
		errs = checkText(errs, "description", *p.Description, false, boardDescMax)
	}
	return errs
}

// ValidateNewTask checks the fields of a task about to be created.
// Status and priority may be empty; defaults apply at insert.
func ValidateNewTask(t Task) []FieldError {
	var errs []FieldError
	errs = checkText(errs, "title", t.Title, true, taskTitleMax)
	errs = checkText(errs, "description", t.Description, false, taskDescMax)
	errs = checkText(errs, "status", t.Status, false, statusMax)
	if t.Priority != "" && !t.Priority.Valid() {
		errs = append(errs, FieldError{Field: "priority", Message: priorityMessage})
	}
	if strings.TrimSpace(t.BoardID) == "" {
		errs = append(errs, FieldError{Field: "boardId", Message: "boardId is required"})
	}
	return errs
}

// ValidateTaskPatch checks the provided fields of a task update.
func ValidateTaskPatch(p TaskPatch) []FieldError {
	var errs []FieldError
	if p.Title != nil {
		errs = checkText(errs, "title", *p.Title, true, taskTitleMax)
	}
	if p.Description != nil {
		errs = checkText(errs, "description", *p.Description, false, taskDescMax)
	}
	if p.Status != nil {
		errs = checkText(errs, "status", *p.Status, true, statusMax)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		errs = append(errs, FieldError{Field: "priority", Message: priorityMessage})
	}
	return errs
}

// ValidateNewColumn checks the fields of a column about to be created.
func ValidateNewColumn(c Column) []FieldError {
	var errs []FieldError
	errs = checkText(errs, "title", c.Title, true, columnTitleMax)
	errs = checkText(errs, "status", c.Status, true, statusMax)
	if strings.TrimSpace(c.BoardID) == "" {
		errs = append(errs, FieldError{Field: "boardId", Message: "boardId is required"})
	}
	return errs
}

// ValidateColumnPatch checks the provided fields of a column update.
func ValidateColumnPatch(p ColumnPatch) []FieldError {
	var errs []FieldError
	if p.Title != nil {
		errs = checkText(errs, "title", *p.Title, true, columnTitleMax)
	}
	if p.Status != nil {
		errs = checkText(errs, "status", *p.Status, true, statusMax)
	}
	if p.Order != nil && *p.Order < 0 {
		errs = append(errs, FieldError{Field: "order", Message: "order must be non-negative"})
	}
	return errs
}

const priorityMessage = "priority must be one of LOW, MEDIUM, HIGH"

func checkText(errs []FieldError, field, value string, required bool, max int) []FieldError {
	if strings.TrimSpace(value) == "" {
		if required {
			return append(errs, FieldError{Field: field, Message: field + " is required"})
		}
		return errs
	}
	if utf8.RuneCountInString(value) > max {
		return append(errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
		})
	}
	return errs
}
