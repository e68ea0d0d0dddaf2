package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "chapel/internal/delivery/http/middleware"
	"chapel/internal/delivery/http/validator"
	"chapel/internal/domain/entity"
	domainerrors "chapel/internal/domain/errors"
	"chapel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorshipUsecase records the arguments of the last call and returns
// canned results.
type fakeWorshipUsecase struct {
	listSkip  int
	listLimit int
	getID     uint

	worship *entity.Worship
	err     error
}

func (f *fakeWorshipUsecase) GetWorship(_ context.Context, id uint) (*entity.Worship, error) {
	f.getID = id
	if f.err != nil {
		return nil, f.err
	}

	return f.worship, nil
}

func (f *fakeWorshipUsecase) ListWorships(_ context.Context, skip, limit int) ([]*entity.Worship, error) {
	f.listSkip, f.listLimit = skip, limit

	return []*entity.Worship{}, f.err
}

func (f *fakeWorshipUsecase) ListActiveWorships(context.Context) ([]*entity.Worship, error) {
	return []*entity.Worship{}, f.err
}

func (f *fakeWorshipUsecase) ListWorshipsByType(context.Context, string) ([]*entity.Worship, error) {
	return []*entity.Worship{}, f.err
}

func (f *fakeWorshipUsecase) CreateWorship(_ context.Context, input *usecase.CreateWorshipInput) (*entity.Worship, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &entity.Worship{ID: 1, Title: input.Title, WorshipType: input.WorshipType, IsActive: true}, nil
}

func (f *fakeWorshipUsecase) UpdateWorship(_ context.Context, id uint, _ *usecase.UpdateWorshipInput) (*entity.Worship, error) {
	f.getID = id
	if f.err != nil {
		return nil, f.err
	}

	return f.worship, nil
}

func (f *fakeWorshipUsecase) DeleteWorship(_ context.Context, id uint) error {
	f.getID = id

	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho wires the validator and central error handler the way the
// server does, so handler errors surface with real status codes.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

func TestWorshipHandler_ListUsesPaginationDefaults(t *testing.T) {
	uc := &fakeWorshipUsecase{}
	h := NewWorshipHandler(uc)

	e := newTestEcho(t)
	e.GET("/worships", h.List)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/worships", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, uc.listSkip)
	assert.Equal(t, 100, uc.listLimit)
}

func TestWorshipHandler_ListParsesPaginationParams(t *testing.T) {
	uc := &fakeWorshipUsecase{}
	h := NewWorshipHandler(uc)

	e := newTestEcho(t)
	e.GET("/worships", h.List)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/worships?skip=20&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, uc.listSkip)
	assert.Equal(t, 5, uc.listLimit)
}

func TestWorshipHandler_ListIgnoresMalformedPagination(t *testing.T) {
	uc := &fakeWorshipUsecase{}
	h := NewWorshipHandler(uc)

	e := newTestEcho(t)
	e.GET("/worships", h.List)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/worships?skip=-3&limit=abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, uc.listSkip)
	assert.Equal(t, 100, uc.listLimit)
}

func TestWorshipHandler_GetRejectsNonNumericID(t *testing.T) {
	uc := &fakeWorshipUsecase{worship: &entity.Worship{ID: 1}}
	h := NewWorshipHandler(uc)

	e := newTestEcho(t)
	e.GET("/worships/:id", h.Get)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/worships/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestWorshipHandler_GetMapsNotFound(t *testing.T) {
	uc := &fakeWorshipUsecase{err: domainerrors.ErrWorshipNotFound}
	h := NewWorshipHandler(uc)

	e := newTestEcho(t)
	e.GET("/worships/:id", h.Get)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/worships/404", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "WORSHIP_NOT_FOUND")
	assert.Equal(t, uint(404), uc.getID)
}

func TestWorshipHandler_CreateValidatesInput(t *testing.T) {
	uc := &fakeWorshipUsecase{}
	h := NewWorshipHandler(uc)

	e := newTestEcho(t)
	e.POST("/worships", h.Create)

	// Missing the required worship_type field.
	req := httptest.NewRequest(http.MethodPost, "/worships", strings.NewReader(`{"title":"Sunday Service"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestWorshipHandler_CreateReturns201(t *testing.T) {
	uc := &fakeWorshipUsecase{}
	h := NewWorshipHandler(uc)

	e := newTestEcho(t)
	e.POST("/worships", h.Create)

	req := httptest.NewRequest(http.MethodPost, "/worships", strings.NewReader(`{"title":"Sunday Service","worship_type":"sunday"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sunday Service")
}
