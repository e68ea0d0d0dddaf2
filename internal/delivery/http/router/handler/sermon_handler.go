package handler

import (
	"net/http"

	"chapel/internal/delivery/http/response"
	"chapel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultSermonPageSize = 10

// SermonHandler holds dependencies for sermon archive handlers.
type SermonHandler struct {
	uc usecase.SermonUsecase
}

// NewSermonHandler is the constructor for SermonHandler, injected by Fx.
func NewSermonHandler(uc usecase.SermonUsecase) *SermonHandler {
	return &SermonHandler{uc: uc}
}

// ListPublished returns published sermons, most recent first.
func (h *SermonHandler) ListPublished(c echo.Context) error {
	skip, limit := pagination(c, defaultSermonPageSize)

	sermons, err := h.uc.ListPublishedSermons(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sermons, "Sermons retrieved successfully")
}

// ListAll returns every sermon, including unpublished drafts.
func (h *SermonHandler) ListAll(c echo.Context) error {
	skip, limit := pagination(c, defaultListAllPageSize)

	sermons, err := h.uc.ListSermons(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sermons, "Sermons retrieved successfully")
}

// Get returns a single sermon and records the view.
func (h *SermonHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	sermon, err := h.uc.GetSermon(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sermon, "Sermon retrieved successfully")
}

// Create adds a sermon to the archive.
func (h *SermonHandler) Create(c echo.Context) error {
	var input *usecase.CreateSermonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sermon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sermon, err := h.uc.CreateSermon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sermon, "Sermon created successfully")
}

// Update overwrites the provided fields of a sermon.
func (h *SermonHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateSermonInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sermon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sermon, err := h.uc.UpdateSermon(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sermon, "Sermon updated successfully")
}

// Delete removes a sermon from the archive.
func (h *SermonHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteSermon(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"detail": "Sermon deleted"}, "Sermon deleted successfully")
}
