package domain

import "time"

// Board is the top-level container for a set of tasks and columns.
type Board struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Tasks   []Task   `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Columns []Column `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"columns,omitempty"`
}

// BoardPatch carries a partial board update. Nil fields are left untouched.
type BoardPatch struct {
	Title       *string
	Description *string
}
