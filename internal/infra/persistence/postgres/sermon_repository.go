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

// sermonRepository implements the repository.SermonRepository interface.
type sermonRepository struct {
	crud crudRepository[model.SermonModel]
}

// NewSermonRepository is the constructor for sermonRepository.
func NewSermonRepository(db *gorm.DB) repository.SermonRepository {
	return &sermonRepository{
		crud: crudRepository[model.SermonModel]{db: db},
	}
}

// FindByID retrieves a single sermon by its ID. No side effects.
func (repo *sermonRepository) FindByID(ctx context.Context, id uint) (*entity.Sermon, error) {
	sermonM, err := repo.crud.first(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSermonNotFound
		}

		return nil, errors.Wrap(err, "failed to find sermon by id")
	}

	return toSermonDomain(sermonM), nil
}

// FindPage retrieves a window over all sermons in insertion order.
func (repo *sermonRepository) FindPage(ctx context.Context, skip, limit int) ([]*entity.Sermon, error) {
	models, err := repo.crud.page(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sermons")
	}

	return toSermonDomainList(models), nil
}

// FindPublished retrieves published sermons ordered by sermon date descending.
// Tie-break on equal dates is left to store order.
func (repo *sermonRepository) FindPublished(ctx context.Context, skip, limit int) ([]*entity.Sermon, error) {
	var models []*model.SermonModel
	if err := repo.crud.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("sermon_date DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published sermons")
	}

	return toSermonDomainList(models), nil
}

// Create persists a new sermon and writes back generated fields.
func (repo *sermonRepository) Create(ctx context.Context, sermon *entity.Sermon) error {
	sermonM := fromSermonDomain(sermon)

	if err := repo.crud.insert(ctx, sermonM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required sermon information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sermon")
	}

	sermon.ID = sermonM.ID
	sermon.CreatedAt = sermonM.CreatedAt
	sermon.UpdatedAt = sermonM.UpdatedAt

	return nil
}

// UpdateFields overwrites only the given columns and returns the updated sermon.
func (repo *sermonRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.Sermon, error) {
	sermonM, err := repo.crud.updateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSermonNotFound
		}

		return nil, errors.Wrap(err, "failed to update sermon")
	}

	return toSermonDomain(sermonM), nil
}

// Delete removes a sermon permanently.
func (repo *sermonRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := repo.crud.deleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete sermon")
	}

	return deleted, nil
}

// IncrementViews bumps the view counter with a single UPDATE expression so
// concurrent increments never lose counts to a read-modify-write race.
func (repo *sermonRepository) IncrementViews(ctx context.Context, id uint) error {
	if err := repo.crud.db.WithContext(ctx).
		Model(&model.SermonModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to increment sermon views")
	}

	return nil
}

// --- Mapper Functions ---

func toSermonDomain(data *model.SermonModel) *entity.Sermon {
	if data == nil {
		return nil
	}

	return &entity.Sermon{
		ID:           data.ID,
		Title:        data.Title,
		Pastor:       data.Pastor,
		BibleVerse:   data.BibleVerse,
		SermonDate:   data.SermonDate,
		Content:      data.Content,
		VideoURL:     data.VideoURL,
		AudioURL:     data.AudioURL,
		ThumbnailURL: data.ThumbnailURL,
		Views:        data.Views,
		IsPublished:  data.IsPublished,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toSermonDomainList(models []*model.SermonModel) []*entity.Sermon {
	sermons := make([]*entity.Sermon, 0, len(models))
	for _, m := range models {
		sermons = append(sermons, toSermonDomain(m))
	}

	return sermons
}

func fromSermonDomain(data *entity.Sermon) *model.SermonModel {
	if data == nil {
		return nil
	}

	return &model.SermonModel{
		ID:           data.ID,
		Title:        data.Title,
		Pastor:       data.Pastor,
		BibleVerse:   data.BibleVerse,
		SermonDate:   data.SermonDate,
		Content:      data.Content,
		VideoURL:     data.VideoURL,
		AudioURL:     data.AudioURL,
		ThumbnailURL: data.ThumbnailURL,
		Views:        data.Views,
		IsPublished:  data.IsPublished,
	}
}
