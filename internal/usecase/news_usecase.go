package usecase

import (
	"context"
	"time"

	"chapel/internal/domain/entity"
)

// --- Input DTOs ---

// CreateNewsInput defines the data required to create a news article.
type CreateNewsInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Content      string `json:"content" validate:"required"`
	Category     string `json:"category" validate:"max=50"`
	Author       string `json:"author" validate:"max=100"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url,max=500"`
}

// UpdateNewsInput defines a partial update. Nil fields are left unchanged.
type UpdateNewsInput struct {
	Title        *string    `json:"title,omitempty"`
	Content      *string    `json:"content,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Author       *string    `json:"author,omitempty"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	IsPublished  *bool      `json:"is_published,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// NewsUsecase defines the interface for news operations.
type NewsUsecase interface {
	// GetNews fetches an article and bumps its view counter best-effort.
	// The returned record carries the pre-increment count.
	GetNews(ctx context.Context, id uint) (*entity.News, error)

	// ListNews returns every article, including unpublished ones.
	ListNews(ctx context.Context, skip, limit int) ([]*entity.News, error)

	// ListPublishedNews returns published articles, most recent first.
	ListPublishedNews(ctx context.Context, skip, limit int) ([]*entity.News, error)

	// ListNewsByCategory returns published articles in a category.
	ListNewsByCategory(ctx context.Context, category string, skip, limit int) ([]*entity.News, error)

	CreateNews(ctx context.Context, input *CreateNewsInput) (*entity.News, error)
	UpdateNews(ctx context.Context, id uint, input *UpdateNewsInput) (*entity.News, error)
	DeleteNews(ctx context.Context, id uint) error
}
