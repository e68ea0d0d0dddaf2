package usecase

import (
	"context"

	"chapel/internal/domain/entity"
)

// --- Input DTOs ---

// CreateWorshipInput defines the data required to create a worship entry.
type CreateWorshipInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	WorshipType string `json:"worship_type" validate:"required,max=50"`
	DayOfWeek   string `json:"day_of_week" validate:"max=20"`
	Time        string `json:"time"`
	Location    string `json:"location" validate:"max=200"`
	Pastor      string `json:"pastor" validate:"max=100"`
}

// UpdateWorshipInput defines a partial update. Nil fields are left unchanged;
// there is no way to clear a field to null.
type UpdateWorshipInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	WorshipType *string `json:"worship_type,omitempty"`
	DayOfWeek   *string `json:"day_of_week,omitempty"`
	Time        *string `json:"time,omitempty"`
	Location    *string `json:"location,omitempty"`
	Pastor      *string `json:"pastor,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// WorshipUsecase defines the interface for worship schedule operations.
type WorshipUsecase interface {
	GetWorship(ctx context.Context, id uint) (*entity.Worship, error)
	ListWorships(ctx context.Context, skip, limit int) ([]*entity.Worship, error)
	ListActiveWorships(ctx context.Context) ([]*entity.Worship, error)
	ListWorshipsByType(ctx context.Context, worshipType string) ([]*entity.Worship, error)
	CreateWorship(ctx context.Context, input *CreateWorshipInput) (*entity.Worship, error)
	UpdateWorship(ctx context.Context, id uint, input *UpdateWorshipInput) (*entity.Worship, error)
	DeleteWorship(ctx context.Context, id uint) error
}
