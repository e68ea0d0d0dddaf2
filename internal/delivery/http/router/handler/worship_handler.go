package handler

import (
	"net/http"

	"chapel/internal/delivery/http/response"
	"chapel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultWorshipPageSize = 100

// WorshipHandler holds dependencies for worship schedule handlers.
type WorshipHandler struct {
	uc usecase.WorshipUsecase
}

// NewWorshipHandler is the constructor for WorshipHandler, injected by Fx.
func NewWorshipHandler(uc usecase.WorshipUsecase) *WorshipHandler {
	return &WorshipHandler{uc: uc}
}

// List returns a page of all worship services, active or not.
func (h *WorshipHandler) List(c echo.Context) error {
	skip, limit := pagination(c, defaultWorshipPageSize)

	worships, err := h.uc.ListWorships(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worships, "Worship services retrieved successfully")
}

// ListActive returns the worship services currently on the schedule.
func (h *WorshipHandler) ListActive(c echo.Context) error {
	worships, err := h.uc.ListActiveWorships(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worships, "Active worship services retrieved successfully")
}

// ListByType returns the active worship services of a single type.
func (h *WorshipHandler) ListByType(c echo.Context) error {
	worshipType := c.Param("type")

	worships, err := h.uc.ListWorshipsByType(c.Request().Context(), worshipType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worships, "Worship services retrieved successfully")
}

// Get returns a single worship service by ID.
func (h *WorshipHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	worship, err := h.uc.GetWorship(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worship, "Worship service retrieved successfully")
}

// Create adds a worship service to the schedule.
func (h *WorshipHandler) Create(c echo.Context) error {
	var input *usecase.CreateWorshipInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid worship service input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	worship, err := h.uc.CreateWorship(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, worship, "Worship service created successfully")
}

// Update overwrites the provided fields of a worship service.
func (h *WorshipHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateWorshipInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid worship service input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	worship, err := h.uc.UpdateWorship(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worship, "Worship service updated successfully")
}

// Delete removes a worship service from the schedule.
func (h *WorshipHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteWorship(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"detail": "Worship service deleted"}, "Worship service deleted successfully")
}
