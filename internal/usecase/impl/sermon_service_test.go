package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"chapel/internal/domain/entity"
	domainerrors "chapel/internal/domain/errors"
	"chapel/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSermonService_GetIncrementsViewsAfterRead(t *testing.T) {
	repo := newFakeSermonRepo()
	stored := repo.add(&entity.Sermon{Title: "On Grace", IsPublished: true, Views: 5})

	service := NewSermonService(repo, testLogger())

	sermon, err := service.GetSermon(context.Background(), stored.ID)

	require.NoError(t, err)
	// The caller sees the pre-increment count; the store has the new one.
	assert.Equal(t, 5, sermon.Views)
	assert.Equal(t, []uint{stored.ID}, repo.increments)
}

func TestSermonService_GetSwallowsIncrementFailure(t *testing.T) {
	repo := newFakeSermonRepo()
	stored := repo.add(&entity.Sermon{Title: "On Grace", IsPublished: true})
	repo.incrementErr = errors.New("counter offline")

	service := NewSermonService(repo, testLogger())

	sermon, err := service.GetSermon(context.Background(), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, "On Grace", sermon.Title)
}

func TestSermonService_GetNotFoundDoesNotIncrement(t *testing.T) {
	repo := newFakeSermonRepo()
	service := NewSermonService(repo, testLogger())

	_, err := service.GetSermon(context.Background(), 404)

	require.Error(t, err)
	assert.Empty(t, repo.increments)
}

func TestSermonService_ListsNeverTouchViews(t *testing.T) {
	repo := newFakeSermonRepo()
	repo.add(&entity.Sermon{Title: "Published", IsPublished: true})
	repo.add(&entity.Sermon{Title: "Draft", IsPublished: false})

	service := NewSermonService(repo, testLogger())
	ctx := context.Background()

	published, err := service.ListPublishedSermons(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, published, 1)

	all, err := service.ListSermons(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.Empty(t, repo.increments)
}

func TestSermonService_CreateParsesDateAndPublishes(t *testing.T) {
	repo := newFakeSermonRepo()
	service := NewSermonService(repo, testLogger())

	sermon, err := service.CreateSermon(context.Background(), &usecase.CreateSermonInput{
		Title:      "On Grace",
		Pastor:     "Rev. Park",
		SermonDate: "2026-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), sermon.SermonDate)
	assert.True(t, sermon.IsPublished)
	assert.Zero(t, sermon.Views)
}

func TestSermonService_CreateRejectsBadDate(t *testing.T) {
	repo := newFakeSermonRepo()
	service := NewSermonService(repo, testLogger())

	_, err := service.CreateSermon(context.Background(), &usecase.CreateSermonInput{
		Title:      "On Grace",
		SermonDate: "01/03/2026",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, repo.sermons)
}

func TestSermonService_UpdateParsesDateField(t *testing.T) {
	repo := newFakeSermonRepo()
	stored := repo.add(&entity.Sermon{Title: "On Grace", IsPublished: true})

	service := NewSermonService(repo, testLogger())

	_, err := service.UpdateSermon(context.Background(), stored.ID, &usecase.UpdateSermonInput{
		SermonDate:  ptr("2026-04-05"),
		IsPublished: ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC), repo.lastFields["sermon_date"])
	assert.Equal(t, false, repo.lastFields["is_published"])

	_, err = service.UpdateSermon(context.Background(), stored.ID, &usecase.UpdateSermonInput{
		SermonDate: ptr("not a date"),
	})
	require.Error(t, err)
}

func TestSermonService_DeleteNotFound(t *testing.T) {
	repo := newFakeSermonRepo()
	service := NewSermonService(repo, testLogger())

	err := service.DeleteSermon(context.Background(), 404)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrSermonNotFound.ErrorCode(), appErr.ErrorCode())
}
