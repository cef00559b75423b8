package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain"
)

// ListBoards returns all boards ordered by creation time.
func (s *Storage) ListBoards(ctx context.Context) ([]domain.Board, error) {
	boards := []domain.Board{}
	if err := s.db.WithContext(ctx).Order("created_at").Find(&boards).Error; err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

// GetBoard fetches a single board without its associations.
func (s *Storage) GetBoard(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	err := s.db.WithContext(ctx).First(&board, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError{Entity: "board", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get board %s: %w", id, err)
	}
	return &board, nil
}

// GetBoardDetail fetches a board with its tasks and columns preloaded,
// columns sorted for display.
func (s *Storage) GetBoardDetail(ctx context.Context, id string) (*domain.Board, error) {
	var board domain.Board
	err := s.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order, created_at")
		}).
		First(&board, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError{Entity: "board", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get board %s: %w", id, err)
	}
	return &board, nil
}

// CreateBoard inserts a new board, assigning its id.
func (s *Storage) CreateBoard(ctx context.Context, board *domain.Board) error {
	board.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(board).Error; err != nil {
		return fmt.Errorf("create board: %w", err)
	}
	return nil
}

// UpdateBoard applies a partial update and returns the stored board.
func (s *Storage) UpdateBoard(ctx context.Context, id string, patch domain.BoardPatch) (*domain.Board, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if len(fields) == 0 {
		return s.GetBoard(ctx, id)
	}

	res := s.db.WithContext(ctx).Model(&domain.Board{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update board %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, NotFoundError{Entity: "board", ID: id}
	}
	return s.GetBoard(ctx, id)
}

// DeleteBoard removes the board together with every task and column
// that belongs to it, in a single transaction.
func (s *Storage) DeleteBoard(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Board{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete board %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return NotFoundError{Entity: "board", ID: id}
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return fmt.Errorf("delete tasks of board %s: %w", id, err)
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.Column{}).Error; err != nil {
			return fmt.Errorf("delete columns of board %s: %w", id, err)
		}
		return nil
	})
}
