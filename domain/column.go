package domain

import "time"

// Column is a named, ordered grouping keyed by a status string. The
// status is the join key against Task.Status; no foreign key enforces
// the association. Order is a display hint, not a unique rank: ties
// break by creation time.
type Column struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Status    string    `gorm:"size:50;index" json:"status"`
	Order     int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	BoardID   string    `gorm:"index;not null" json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ColumnPatch carries a partial column update. Nil fields are left untouched.
type ColumnPatch struct {
	Title  *string
	Status *string
	Order  *int
}
