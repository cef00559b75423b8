package domain

import "time"

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single board item. Status is a free-form string
// matched against column status keys by convention only; a task may
// carry a status no column currently declares.
type Task struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	Status      string    `gorm:"size:50;index" json:"status"`
	Priority    Priority  `gorm:"size:10" json:"priority"`
	BoardID     string    `gorm:"index;not null" json:"boardId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ApplyDefaults fills zero-valued status and priority before insert.
func (t *Task) ApplyDefaults() {
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
// Status is a plain field write: any string is accepted, there are no
// transition rules and no history.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *Priority
}
