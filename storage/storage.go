// Package storage persists boards, tasks and columns through GORM over
// a SQLite database.
package storage

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/domain"
)

// Storage provides access to the relational store.
type Storage struct {
	db *gorm.DB
}

// New opens the SQLite database at dsn and runs migrations. An empty
// dsn falls back to a local file next to the binary.
func New(dsn string) (*Storage, error) {
	if dsn == "" {
		dsn = "taskboard.db"
	}
	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&domain.Board{}, &domain.Column{}, &domain.Task{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &Storage{db: db}, nil
}

// Ping verifies database connectivity.
func (s *Storage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// NotFoundError reports that the requested entity, or a referenced
// board, does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NotFound marks the error for the API layer.
func (e NotFoundError) NotFound() {}

// StaticColumnError reports an attempt to delete a column carrying one
// of the static statuses.
type StaticColumnError struct {
	Status string
}

func (e StaticColumnError) Error() string {
	return fmt.Sprintf("column status %s is static and cannot be deleted", e.Status)
}

// ProtectedColumn marks the error for the API layer.
func (e StaticColumnError) ProtectedColumn() {}

// boardExists fails with NotFoundError when no board has the given id.
// Used as the pre-insert reference check for tasks and columns.
func boardExists(db *gorm.DB, id string) error {
	var n int64
	if err := db.Model(&domain.Board{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("check board %s: %w", id, err)
	}
	if n == 0 {
		return NotFoundError{Entity: "board", ID: id}
	}
	return nil
}

// ensureDirForSQLite creates the parent dir for a SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
