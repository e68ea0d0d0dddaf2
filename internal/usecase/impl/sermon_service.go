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

// sermonDateLayout is the wire format for sermon dates.
const sermonDateLayout = "2006-01-02"

// sermonService implements the SermonUsecase interface.
type sermonService struct {
	sermonRepo repository.SermonRepository
	logger     *slog.Logger
}

// NewSermonService is the constructor for sermonService.
func NewSermonService(sermonRepo repository.SermonRepository, logger *slog.Logger) usecase.SermonUsecase {
	return &sermonService{
		sermonRepo: sermonRepo,
		logger:     logger,
	}
}

func (srv *sermonService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSermon fetches a sermon by ID and bumps its view counter afterwards.
// The increment is best-effort: a failure is logged, never surfaced, and the
// returned record carries the pre-increment count.
func (srv *sermonService) GetSermon(ctx context.Context, id uint) (*entity.Sermon, error) {
	sermon, err := srv.sermonRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSermonNotFound) {
			return nil, domainerrors.ErrSermonNotFound.WrapMessage("get sermon")
		}

		return nil, errors.Wrap(err, "failed to get sermon")
	}

	if err := srv.sermonRepo.IncrementViews(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to increment sermon views", slog.Uint64("sermonID", uint64(id)), slog.Any("error", err))
	}

	return sermon, nil
}

// ListSermons returns a page over all sermons, including unpublished ones.
// List reads never touch view counters.
func (srv *sermonService) ListSermons(ctx context.Context, skip, limit int) ([]*entity.Sermon, error) {
	sermons, err := srv.sermonRepo.FindPage(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sermons")
	}

	return sermons, nil
}

// ListPublishedSermons returns published sermons, most recent first.
func (srv *sermonService) ListPublishedSermons(ctx context.Context, skip, limit int) ([]*entity.Sermon, error) {
	sermons, err := srv.sermonRepo.FindPublished(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published sermons")
	}

	return sermons, nil
}

// CreateSermon persists a new sermon, published by default.
func (srv *sermonService) CreateSermon(ctx context.Context, input *usecase.CreateSermonInput) (*entity.Sermon, error) {
	sermonDate, err := time.Parse(sermonDateLayout, input.SermonDate)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sermon_date must be YYYY-MM-DD").WrapMessage("parse sermon date")
	}

	sermon := &entity.Sermon{
		Title:        input.Title,
		Pastor:       input.Pastor,
		BibleVerse:   input.BibleVerse,
		SermonDate:   sermonDate,
		Content:      input.Content,
		VideoURL:     input.VideoURL,
		AudioURL:     input.AudioURL,
		ThumbnailURL: input.ThumbnailURL,
		IsPublished:  true,
	}

	if err := srv.sermonRepo.Create(ctx, sermon); err != nil {
		return nil, errors.Wrap(err, "failed to create sermon")
	}

	return sermon, nil
}

// UpdateSermon applies a partial update. Only non-nil input fields are written.
func (srv *sermonService) UpdateSermon(ctx context.Context, id uint, input *usecase.UpdateSermonInput) (*entity.Sermon, error) {
	fields := map[string]any{}
	putString(fields, "title", input.Title)
	putString(fields, "pastor", input.Pastor)
	putString(fields, "bible_verse", input.BibleVerse)
	putString(fields, "content", input.Content)
	putString(fields, "video_url", input.VideoURL)
	putString(fields, "audio_url", input.AudioURL)
	putString(fields, "thumbnail_url", input.ThumbnailURL)
	putBool(fields, "is_published", input.IsPublished)

	if input.SermonDate != nil {
		sermonDate, err := time.Parse(sermonDateLayout, *input.SermonDate)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("sermon_date must be YYYY-MM-DD").WrapMessage("parse sermon date")
		}
		fields["sermon_date"] = sermonDate
	}

	sermon, err := srv.sermonRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrSermonNotFound) {
			return nil, domainerrors.ErrSermonNotFound.WrapMessage("update sermon")
		}

		return nil, errors.Wrap(err, "failed to update sermon")
	}

	return sermon, nil
}

// DeleteSermon removes a sermon permanently.
func (srv *sermonService) DeleteSermon(ctx context.Context, id uint) error {
	deleted, err := srv.sermonRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete sermon")
	}
	if !deleted {
		return domainerrors.ErrSermonNotFound.WrapMessage("delete sermon")
	}

	return nil
}
