package handler

import (
	"net/http"

	"chapel/internal/delivery/http/response"
	"chapel/internal/domain/entity"
	"chapel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultNewsPageSize = 10

// NewsHandler holds dependencies for news article handlers.
type NewsHandler struct {
	uc usecase.NewsUsecase
}

// NewNewsHandler is the constructor for NewsHandler, injected by Fx.
func NewNewsHandler(uc usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// ListPublished returns published articles, most recent first. An optional
// category query parameter narrows the list to one category.
func (h *NewsHandler) ListPublished(c echo.Context) error {
	skip, limit := pagination(c, defaultNewsPageSize)

	ctx := c.Request().Context()
	category := c.QueryParam("category")

	var (
		articles []*entity.News
		err      error
	)
	if category != "" {
		articles, err = h.uc.ListNewsByCategory(ctx, category, skip, limit)
	} else {
		articles, err = h.uc.ListPublishedNews(ctx, skip, limit)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, articles, "News retrieved successfully")
}

// ListAll returns every article, including unpublished drafts.
func (h *NewsHandler) ListAll(c echo.Context) error {
	skip, limit := pagination(c, defaultListAllPageSize)

	articles, err := h.uc.ListNews(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, articles, "News retrieved successfully")
}

// Get returns a single article and records the view.
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.GetNews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "News article retrieved successfully")
}

// Create adds a news article.
func (h *NewsHandler) Create(c echo.Context) error {
	var input *usecase.CreateNewsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.CreateNews(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, article, "News article created successfully")
}

// Update overwrites the provided fields of an article.
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateNewsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.UpdateNews(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "News article updated successfully")
}

// Delete removes an article.
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteNews(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"detail": "News article deleted"}, "News article deleted successfully")
}
