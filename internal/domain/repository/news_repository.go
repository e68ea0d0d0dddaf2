package repository

import (
	"context"
	"errors"

	"chapel/internal/domain/entity"
)

// ErrNewsNotFound is returned when a news article is not found.
var ErrNewsNotFound = errors.New("news not found")

// NewsRepository defines persistence operations for news articles.
type NewsRepository interface {
	// FindByID retrieves a single article by its ID. No side effects.
	FindByID(ctx context.Context, id uint) (*entity.News, error)

	// FindPage retrieves a window over all articles in insertion order,
	// including unpublished ones.
	FindPage(ctx context.Context, skip, limit int) ([]*entity.News, error)

	// FindPublished retrieves published articles ordered by publish
	// timestamp, most recent first.
	FindPublished(ctx context.Context, skip, limit int) ([]*entity.News, error)

	// FindByCategory retrieves published articles matching a category
	// exactly, ordered by publish timestamp descending.
	FindByCategory(ctx context.Context, category string, skip, limit int) ([]*entity.News, error)

	// Create persists a new article and backfills generated fields.
	Create(ctx context.Context, news *entity.News) error

	// UpdateFields overwrites only the given columns and returns the updated
	// article. Returns ErrNewsNotFound when the ID does not exist.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.News, error)

	// Delete removes an article permanently. Returns false when the ID does not exist.
	Delete(ctx context.Context, id uint) (bool, error)

	// IncrementViews bumps the view counter by one in a single SQL expression.
	IncrementViews(ctx context.Context, id uint) error
}
