package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "chapel/internal/delivery/context"
	"chapel/internal/domain/entity"
	domainerrors "chapel/internal/domain/errors"
	"chapel/internal/domain/repository"
	"chapel/internal/usecase"

	"github.com/pkg/errors"
)

// newsService implements the NewsUsecase interface.
type newsService struct {
	newsRepo repository.NewsRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewNewsService is the constructor for newsService.
func NewNewsService(newsRepo repository.NewsRepository, logger *slog.Logger) usecase.NewsUsecase {
	return &newsService{
		newsRepo: newsRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *newsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetNews fetches an article by ID and bumps its view counter afterwards.
// The increment is best-effort: a failure is logged, never surfaced, and the
// returned record carries the pre-increment count.
func (srv *newsService) GetNews(ctx context.Context, id uint) (*entity.News, error) {
	news, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, domainerrors.ErrNewsNotFound.WrapMessage("get news")
		}

		return nil, errors.Wrap(err, "failed to get news")
	}

	if err := srv.newsRepo.IncrementViews(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to increment news views", slog.Uint64("newsID", uint64(id)), slog.Any("error", err))
	}

	return news, nil
}

// ListNews returns a page over all articles, including unpublished ones.
// List reads never touch view counters.
func (srv *newsService) ListNews(ctx context.Context, skip, limit int) ([]*entity.News, error) {
	news, err := srv.newsRepo.FindPage(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	return news, nil
}

// ListPublishedNews returns published articles, most recent first.
func (srv *newsService) ListPublishedNews(ctx context.Context, skip, limit int) ([]*entity.News, error) {
	news, err := srv.newsRepo.FindPublished(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published news")
	}

	return news, nil
}

// ListNewsByCategory returns published articles in a category, most recent first.
func (srv *newsService) ListNewsByCategory(ctx context.Context, category string, skip, limit int) ([]*entity.News, error) {
	news, err := srv.newsRepo.FindByCategory(ctx, category, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news by category")
	}

	return news, nil
}

// CreateNews persists a new article, published by default with the publish
// timestamp set to the creation time.
func (srv *newsService) CreateNews(ctx context.Context, input *usecase.CreateNewsInput) (*entity.News, error) {
	publishedAt := srv.now()
	news := &entity.News{
		Title:        input.Title,
		Content:      input.Content,
		Category:     input.Category,
		Author:       input.Author,
		ThumbnailURL: input.ThumbnailURL,
		IsPublished:  true,
		PublishedAt:  &publishedAt,
	}

	if err := srv.newsRepo.Create(ctx, news); err != nil {
		return nil, errors.Wrap(err, "failed to create news")
	}

	return news, nil
}

// UpdateNews applies a partial update. Only non-nil input fields are written.
func (srv *newsService) UpdateNews(ctx context.Context, id uint, input *usecase.UpdateNewsInput) (*entity.News, error) {
	fields := map[string]any{}
	putString(fields, "title", input.Title)
	putString(fields, "content", input.Content)
	putString(fields, "category", input.Category)
	putString(fields, "author", input.Author)
	putString(fields, "thumbnail_url", input.ThumbnailURL)
	putBool(fields, "is_published", input.IsPublished)
	putTime(fields, "published_at", input.PublishedAt)

	news, err := srv.newsRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, domainerrors.ErrNewsNotFound.WrapMessage("update news")
		}

		return nil, errors.Wrap(err, "failed to update news")
	}

	return news, nil
}

// DeleteNews removes an article permanently.
func (srv *newsService) DeleteNews(ctx context.Context, id uint) error {
	deleted, err := srv.newsRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete news")
	}
	if !deleted {
		return domainerrors.ErrNewsNotFound.WrapMessage("delete news")
	}

	return nil
}
