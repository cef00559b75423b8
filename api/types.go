package api

import (
	"context"

	"taskboard/domain"
)

// Store abstracts persistence for handlers.
type Store interface {
	ListBoards(ctx context.Context) ([]domain.Board, error)
	GetBoardDetail(ctx context.Context, id string) (*domain.Board, error)
	CreateBoard(ctx context.Context, board *domain.Board) error
	UpdateBoard(ctx context.Context, id string, patch domain.BoardPatch) (*domain.Board, error)
	DeleteBoard(ctx context.Context, id string) error

	ListTasks(ctx context.Context, boardID, status string) ([]domain.Task, error)
	CreateTask(ctx context.Context, task *domain.Task) error
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListColumns(ctx context.Context, boardID string) ([]domain.Column, error)
	CreateColumn(ctx context.Context, col *domain.Column) error
	UpdateColumn(ctx context.Context, id string, patch domain.ColumnPatch) (*domain.Column, error)
	DeleteColumn(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}

// NotFoundError marks store failures caused by a missing entity or a
// missing referenced board.
type NotFoundError interface {
	error
	NotFound()
}

// ProtectedColumnError marks attempts to delete a static status column.
type ProtectedColumnError interface {
	error
	ProtectedColumn()
}
