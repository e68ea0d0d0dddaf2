package repository

import (
	"context"
	"errors"

	"chapel/internal/domain/entity"
)

// ErrWorshipNotFound is returned when a worship schedule entry is not found.
var ErrWorshipNotFound = errors.New("worship not found")

// WorshipRepository defines persistence operations for worship schedule entries.
type WorshipRepository interface {
	// FindByID retrieves a single worship entry by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Worship, error)

	// FindPage retrieves a window over all worship entries in insertion order.
	FindPage(ctx context.Context, skip, limit int) ([]*entity.Worship, error)

	// FindActive retrieves all worship entries with the active flag set.
	FindActive(ctx context.Context) ([]*entity.Worship, error)

	// FindByType retrieves active worship entries matching a worship type exactly.
	FindByType(ctx context.Context, worshipType string) ([]*entity.Worship, error)

	// Create persists a new worship entry and backfills generated fields.
	Create(ctx context.Context, worship *entity.Worship) error

	// UpdateFields overwrites only the given columns and returns the updated
	// entry. Returns ErrWorshipNotFound when the ID does not exist.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.Worship, error)

	// Delete removes an entry permanently. Returns false when the ID does not exist.
	Delete(ctx context.Context, id uint) (bool, error)
}
