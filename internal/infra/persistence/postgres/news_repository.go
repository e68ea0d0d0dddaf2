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

// newsRepository implements the repository.NewsRepository interface.
type newsRepository struct {
	crud crudRepository[model.NewsModel]
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{
		crud: crudRepository[model.NewsModel]{db: db},
	}
}

// FindByID retrieves a single article by its ID. No side effects.
func (repo *newsRepository) FindByID(ctx context.Context, id uint) (*entity.News, error) {
	newsM, err := repo.crud.first(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to find news by id")
	}

	return toNewsDomain(newsM), nil
}

// FindPage retrieves a window over all articles in insertion order.
func (repo *newsRepository) FindPage(ctx context.Context, skip, limit int) ([]*entity.News, error) {
	models, err := repo.crud.page(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return toNewsDomainList(models), nil
}

// FindPublished retrieves published articles ordered by publish timestamp
// descending. Tie-break on equal timestamps is left to store order.
func (repo *newsRepository) FindPublished(ctx context.Context, skip, limit int) ([]*entity.News, error) {
	var models []*model.NewsModel
	if err := repo.crud.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published news")
	}

	return toNewsDomainList(models), nil
}

// FindByCategory retrieves published articles matching a category exactly.
func (repo *newsRepository) FindByCategory(ctx context.Context, category string, skip, limit int) ([]*entity.News, error) {
	var models []*model.NewsModel
	if err := repo.crud.db.WithContext(ctx).
		Where("category = ? AND is_published = ?", category, true).
		Order("published_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list news by category")
	}

	return toNewsDomainList(models), nil
}

// Create persists a new article and writes back generated fields.
func (repo *newsRepository) Create(ctx context.Context, news *entity.News) error {
	newsM := fromNewsDomain(news)

	if err := repo.crud.insert(ctx, newsM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required news information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create news")
	}

	news.ID = newsM.ID
	news.CreatedAt = newsM.CreatedAt
	news.UpdatedAt = newsM.UpdatedAt

	return nil
}

// UpdateFields overwrites only the given columns and returns the updated article.
func (repo *newsRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.News, error) {
	newsM, err := repo.crud.updateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsNotFound
		}

		return nil, errors.Wrap(err, "failed to update news")
	}

	return toNewsDomain(newsM), nil
}

// Delete removes an article permanently.
func (repo *newsRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := repo.crud.deleteByID(ctx, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete news")
	}

	return deleted, nil
}

// IncrementViews bumps the view counter with a single UPDATE expression so
// concurrent increments never lose counts to a read-modify-write race.
func (repo *newsRepository) IncrementViews(ctx context.Context, id uint) error {
	if err := repo.crud.db.WithContext(ctx).
		Model(&model.NewsModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to increment news views")
	}

	return nil
}

// --- Mapper Functions ---

func toNewsDomain(data *model.NewsModel) *entity.News {
	if data == nil {
		return nil
	}

	return &entity.News{
		ID:           data.ID,
		Title:        data.Title,
		Content:      data.Content,
		Category:     data.Category,
		Author:       data.Author,
		ThumbnailURL: data.ThumbnailURL,
		Views:        data.Views,
		IsPublished:  data.IsPublished,
		PublishedAt:  data.PublishedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toNewsDomainList(models []*model.NewsModel) []*entity.News {
	news := make([]*entity.News, 0, len(models))
	for _, m := range models {
		news = append(news, toNewsDomain(m))
	}

	return news
}

func fromNewsDomain(data *entity.News) *model.NewsModel {
	if data == nil {
		return nil
	}

	return &model.NewsModel{
		ID:           data.ID,
		Title:        data.Title,
		Content:      data.Content,
		Category:     data.Category,
		Author:       data.Author,
		ThumbnailURL: data.ThumbnailURL,
		Views:        data.Views,
		IsPublished:  data.IsPublished,
		PublishedAt:  data.PublishedAt,
	}
}
