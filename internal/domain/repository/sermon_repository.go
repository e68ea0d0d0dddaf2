package repository

import (
	"context"
	"errors"

	"chapel/internal/domain/entity"
)

// ErrSermonNotFound is returned when a sermon is not found.
var ErrSermonNotFound = errors.New("sermon not found")

// SermonRepository defines persistence operations for sermons.
type SermonRepository interface {
	// FindByID retrieves a single sermon by its ID. No side effects.
	FindByID(ctx context.Context, id uint) (*entity.Sermon, error)

	// FindPage retrieves a window over all sermons in insertion order,
	// including unpublished ones.
	FindPage(ctx context.Context, skip, limit int) ([]*entity.Sermon, error)

	// FindPublished retrieves published sermons ordered by sermon date,
	// most recent first.
	FindPublished(ctx context.Context, skip, limit int) ([]*entity.Sermon, error)

	// Create persists a new sermon and backfills generated fields.
	Create(ctx context.Context, sermon *entity.Sermon) error

	// UpdateFields overwrites only the given columns and returns the updated
	// sermon. Returns ErrSermonNotFound when the ID does not exist.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.Sermon, error)

	// Delete removes a sermon permanently. Returns false when the ID does not exist.
	Delete(ctx context.Context, id uint) (bool, error)

	// IncrementViews bumps the view counter by one in a single SQL expression.
	IncrementViews(ctx context.Context, id uint) error
}
