package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain"
)

// ListColumns returns columns in display order. An empty boardID
// returns columns across all boards.
func (s *Storage) ListColumns(ctx context.Context, boardID string) ([]domain.Column, error) {
	q := s.db.WithContext(ctx).Order("sort_order, created_at")
	if boardID != "" {
		q = q.Where("board_id = ?", boardID)
	}
	columns := []domain.Column{}
	if err := q.Find(&columns).Error; err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	return columns, nil
}

// GetColumn fetches a single column.
func (s *Storage) GetColumn(ctx context.Context, id string) (*domain.Column, error) {
	var col domain.Column
	err := s.db.WithContext(ctx).First(&col, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError{Entity: "column", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get column %s: %w", id, err)
	}
	return &col, nil
}

// CreateColumn inserts a column after verifying its board exists. The
// order is assigned one past the board's current maximum. Two
// concurrent creates may pick the same order; that is a benign display
// tie, so no lock is taken beyond the transaction.
func (s *Storage) CreateColumn(ctx context.Context, col *domain.Column) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := boardExists(tx, col.BoardID); err != nil {
			return err
		}
		existing := []domain.Column{}
		if err := tx.Where("board_id = ?", col.BoardID).Find(&existing).Error; err != nil {
			return fmt.Errorf("list columns of board %s: %w", col.BoardID, err)
		}
		col.ID = uuid.NewString()
		col.Order = domain.NextColumnOrder(existing)
		if err := tx.Create(col).Error; err != nil {
			return fmt.Errorf("create column: %w", err)
		}
		return nil
	})
}

// UpdateColumn applies a partial update and returns the stored column.
func (s *Storage) UpdateColumn(ctx context.Context, id string, patch domain.ColumnPatch) (*domain.Column, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Order != nil {
		fields["sort_order"] = *patch.Order
	}
	if len(fields) == 0 {
		return s.GetColumn(ctx, id)
	}

	res := s.db.WithContext(ctx).Model(&domain.Column{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update column %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, NotFoundError{Entity: "column", ID: id}
	}
	return s.GetColumn(ctx, id)
}

// DeleteColumn removes a column record unless it carries a static
// status. Tasks still holding the column's status are left untouched;
// their grouping is simply orphaned until a matching column reappears.
func (s *Storage) DeleteColumn(ctx context.Context, id string) error {
	col, err := s.GetColumn(ctx, id)
	if err != nil {
		return err
	}
	if !domain.IsDeletable(col.Status) {
		return StaticColumnError{Status: col.Status}
	}
	res := s.db.WithContext(ctx).Delete(&domain.Column{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete column %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFoundError{Entity: "column", ID: id}
	}
	return nil
}
