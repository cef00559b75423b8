package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain"
)

// ListTasks returns tasks ordered by creation time. Empty filter values
// are ignored.
func (s *Storage) ListTasks(ctx context.Context, boardID, status string) ([]domain.Task, error) {
	q := s.db.WithContext(ctx).Order("created_at")
	if boardID != "" {
		q = q.Where("board_id = ?", boardID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	tasks := []domain.Task{}
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask fetches a single task.
func (s *Storage) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError{Entity: "task", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return &task, nil
}

// CreateTask inserts a task after verifying its board exists. Status
// and priority defaults apply here, at the edge of the store.
func (s *Storage) CreateTask(ctx context.Context, task *domain.Task) error {
	db := s.db.WithContext(ctx)
	if err := boardExists(db, task.BoardID); err != nil {
		return err
	}
	task.ID = uuid.NewString()
	task.ApplyDefaults()
	if err := db.Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// UpdateTask applies a partial update and returns the stored task.
// Status writes are unconditional field mutations; no column needs to
// declare the new value.
func (s *Storage) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Priority != nil {
		fields["priority"] = *patch.Priority
	}
	if len(fields) == 0 {
		return s.GetTask(ctx, id)
	}

	res := s.db.WithContext(ctx).Model(&domain.Task{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update task %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, NotFoundError{Entity: "task", ID: id}
	}
	return s.GetTask(ctx, id)
}

// DeleteTask removes a single task.
func (s *Storage) DeleteTask(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete task %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFoundError{Entity: "task", ID: id}
	}
	return nil
}
