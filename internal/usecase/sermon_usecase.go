package usecase

import (
	"context"

	"chapel/internal/domain/entity"
)

// --- Input DTOs ---

// CreateSermonInput defines the data required to create a sermon.
// SermonDate travels as "YYYY-MM-DD".
type CreateSermonInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Pastor       string `json:"pastor" validate:"required,max=100"`
	BibleVerse   string `json:"bible_verse" validate:"max=200"`
	SermonDate   string `json:"sermon_date" validate:"required"`
	Content      string `json:"content"`
	VideoURL     string `json:"video_url" validate:"omitempty,url,max=500"`
	AudioURL     string `json:"audio_url" validate:"omitempty,url,max=500"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url,max=500"`
}

// UpdateSermonInput defines a partial update. Nil fields are left unchanged.
type UpdateSermonInput struct {
	Title        *string `json:"title,omitempty"`
	Pastor       *string `json:"pastor,omitempty"`
	BibleVerse   *string `json:"bible_verse,omitempty"`
	SermonDate   *string `json:"sermon_date,omitempty"`
	Content      *string `json:"content,omitempty"`
	VideoURL     *string `json:"video_url,omitempty"`
	AudioURL     *string `json:"audio_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	IsPublished  *bool   `json:"is_published,omitempty"`
}

// SermonUsecase defines the interface for sermon operations.
type SermonUsecase interface {
	// GetSermon fetches a sermon and bumps its view counter best-effort.
	// The returned record carries the pre-increment count.
	GetSermon(ctx context.Context, id uint) (*entity.Sermon, error)

	// ListSermons returns every sermon, including unpublished ones.
	ListSermons(ctx context.Context, skip, limit int) ([]*entity.Sermon, error)

	// ListPublishedSermons returns published sermons, most recent first.
	ListPublishedSermons(ctx context.Context, skip, limit int) ([]*entity.Sermon, error)

	CreateSermon(ctx context.Context, input *CreateSermonInput) (*entity.Sermon, error)
	UpdateSermon(ctx context.Context, id uint, input *UpdateSermonInput) (*entity.Sermon, error)
	DeleteSermon(ctx context.Context, id uint) error
}
