package handler

import (
	"net/http"

	"musika/internal/delivery/http/response"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for visitor analytics handlers.
type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

type recordVisitRequest struct {
	UserID  *uuid.UUID `json:"user_id"`
	Browser string     `json:"browser"`
}

// RecordVisit appends an analytics row for the calling visitor. The
// User-Agent header is captured verbatim; classification happens at
// aggregation time.
func (h *AnalyticsHandler) RecordVisit(c echo.Context) error {
	var req recordVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analytics input")
	}

	record, err := h.uc.RecordVisit(c.Request().Context(), &usecase.RecordVisitInput{
		UserID:    req.UserID,
		Browser:   req.Browser,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Visit recorded successfully")
}

// ListVisits retrieves all analytics records, newest first.
func (h *AnalyticsHandler) ListVisits(c echo.Context) error {
	records, err := h.uc.ListVisits(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Visits retrieved successfully")
}

// GetVisit retrieves a single analytics record.
func (h *AnalyticsHandler) GetVisit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analytics id")
	}

	record, err := h.uc.GetVisit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Visit retrieved successfully")
}

// DeleteVisit removes an analytics record.
func (h *AnalyticsHandler) DeleteVisit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analytics id")
	}

	if err := h.uc.DeleteVisit(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Visit deleted successfully")
}

// Summarize counts recorded visits per device bucket.
func (h *AnalyticsHandler) Summarize(c echo.Context) error {
	summary, err := h.uc.Summarize(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Analytics summary retrieved successfully")
}
