package postgres

import (
	"context"

	"chapel/internal/domain/entity"
	domainerrors "chapel/internal/domain/errors"
	"chapel/internal/domain/repository"
	"chapel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// worshipRepository implements the repository.WorshipRepository interface.
type worshipRepository struct {
	crud crudRepository[model.WorshipModel]
}

// NewWorshipRepository is the constructor for worshipRepository.
func NewWorshipRepository(db *gorm.DB) repository.WorshipRepository {
	return &worshipRepository{
		crud: crudRepository[model.WorshipModel]{db: db},
	}
}

// FindByID retrieves a single worship entry by its ID.
func (repo *worshipRepository) FindByID(ctx context.Context, id uint) (*entity.Worship, error) {
	worshipM, err := repo.crud.first(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find worship by id")
	}

	return toWorshipDomain(worshipM), nil
}

// FindPage retrieves a window over all worship entries in insertion order.
func (repo *worshipRepository) FindPage(ctx context.Context, skip, limit int) ([]*entity.Worship, error) {
	models, err := repo.crud.page(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list worships")
	}

	return toWorshipDomainList(models), nil
}

// FindActive retrieves all worship entries with the active flag set.
func (repo *worshipRepository) FindActive(ctx context.Context) ([]*entity.Worship, error) {
	var models []*model.WorshipModel
	if err := repo.crud.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active worships")
	}

	return toWorshipDomainList(models), nil
}

// FindByType retrieves active worship entries matching a worship type exactly.
func (repo *worshipRepository) FindByType(ctx context.Context, worshipType string) ([]*entity.Worship, error) {
	var models []*model.WorshipModel
	if err := repo.crud.db.WithContext(ctx).
		Where("worship_type = ? AND is_active = ?", worshipType, true).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list worships by type")
	}

	return toWorshipDomainList(models), nil
}

// Create persists a new worship entry and writes back generated fields.
func (repo *worshipRepository) Create(ctx context.Context, worship *entity.Worship) error {
	worshipM := fromWorshipDomain(worship)

	if err := repo.crud.insert(ctx, worshipM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required worship information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create worship")
	}

	worship.ID = worshipM.ID
	worship.CreatedAt = worshipM.CreatedAt
	worship.UpdatedAt = worshipM.UpdatedAt

	return nil
}

// UpdateFields overwrites only the given columns and returns the updated entry.
func (repo *worshipRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.Worship, error) {
	worshipM, err := repo.crud.updateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorshipNotFound
		}

		return nil, errors.Wrap(err, "failed to update worship")
	}

	return toWorshipDomain(worshipM), nil
}

// Delete removes a worship entry permanently.
func (repo *worshipRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := repo.crud.deleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete worship")
	}

	return deleted, nil
}

// --- Mapper Functions ---

func toWorshipDomain(data *model.WorshipModel) *entity.Worship {
	if data == nil {
		return nil
	}

	return &entity.Worship{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		WorshipType: data.WorshipType,
		DayOfWeek:   data.DayOfWeek,
		Time:        data.Time,
		Location:    data.Location,
		Pastor:      data.Pastor,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toWorshipDomainList(models []*model.WorshipModel) []*entity.Worship {
	worships := make([]*entity.Worship, 0, len(models))
	for _, m := range models {
		worships = append(worships, toWorshipDomain(m))
	}

	return worships
}

func fromWorshipDomain(data *entity.Worship) *model.WorshipModel {
	if data == nil {
		return nil
	}

	return &model.WorshipModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		WorshipType: data.WorshipType,
		DayOfWeek:   data.DayOfWeek,
		Time:        data.Time,
		Location:    data.Location,
		Pastor:      data.Pastor,
		IsActive:    data.IsActive,
	}
}
