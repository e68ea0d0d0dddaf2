package impl

import (
	"context"

	"chapel/internal/domain/entity"
	domainerrors "chapel/internal/domain/errors"
	"chapel/internal/domain/repository"
	"chapel/internal/usecase"

	"github.com/pkg/errors"
)

// worshipService implements the WorshipUsecase interface.
type worshipService struct {
	worshipRepo repository.WorshipRepository
}

// NewWorshipService is the constructor for worshipService.
func NewWorshipService(worshipRepo repository.WorshipRepository) usecase.WorshipUsecase {
	return &worshipService{
		worshipRepo: worshipRepo,
	}
}

// GetWorship retrieves a single worship entry. Worship has no view counter,
// so reads have no side effects.
func (srv *worshipService) GetWorship(ctx context.Context, id uint) (*entity.Worship, error) {
	worship, err := srv.worshipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorshipNotFound) {
			return nil, domainerrors.ErrWorshipNotFound.WrapMessage("get worship")
		}

		return nil, errors.Wrap(err, "failed to get worship")
	}

	return worship, nil
}

// ListWorships returns a page over all worship entries, active or not.
func (srv *worshipService) ListWorships(ctx context.Context, skip, limit int) ([]*entity.Worship, error) {
	worships, err := srv.worshipRepo.FindPage(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worships")
	}

	return worships, nil
}

// ListActiveWorships returns all entries with the active flag set.
func (srv *worshipService) ListActiveWorships(ctx context.Context) ([]*entity.Worship, error) {
	worships, err := srv.worshipRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active worships")
	}

	return worships, nil
}

// ListWorshipsByType returns active entries matching a worship type exactly.
func (srv *worshipService) ListWorshipsByType(ctx context.Context, worshipType string) ([]*entity.Worship, error) {
	worships, err := srv.worshipRepo.FindByType(ctx, worshipType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worships by type")
	}

	return worships, nil
}

// CreateWorship persists a new worship entry, active by default.
func (srv *worshipService) CreateWorship(ctx context.Context, input *usecase.CreateWorshipInput) (*entity.Worship, error) {
	worship := &entity.Worship{
		Title:       input.Title,
		Description: input.Description,
		WorshipType: input.WorshipType,
		DayOfWeek:   input.DayOfWeek,
		Time:        input.Time,
		Location:    input.Location,
		Pastor:      input.Pastor,
		IsActive:    true,
	}

	if err := srv.worshipRepo.Create(ctx, worship); err != nil {
		return nil, errors.Wrap(err, "failed to create worship")
	}

	return worship, nil
}

// UpdateWorship applies a partial update. Only non-nil input fields are written.
func (srv *worshipService) UpdateWorship(ctx context.Context, id uint, input *usecase.UpdateWorshipInput) (*entity.Worship, error) {
	fields := map[string]any{}
	putString(fields, "title", input.Title)
	putString(fields, "description", input.Description)
	putString(fields, "worship_type", input.WorshipType)
	putString(fields, "day_of_week", input.DayOfWeek)
	putString(fields, "time", input.Time)
	putString(fields, "location", input.Location)
	putString(fields, "pastor", input.Pastor)
	putBool(fields, "is_active", input.IsActive)

	worship, err := srv.worshipRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrWorshipNotFound) {
			return nil, domainerrors.ErrWorshipNotFound.WrapMessage("update worship")
		}

		return nil, errors.Wrap(err, "failed to update worship")
	}

	return worship, nil
}

// DeleteWorship removes an entry permanently.
func (srv *worshipService) DeleteWorship(ctx context.Context, id uint) error {
	deleted, err := srv.worshipRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete worship")
	}
	if !deleted {
		return domainerrors.ErrWorshipNotFound.WrapMessage("delete worship")
	}

	return nil
}
