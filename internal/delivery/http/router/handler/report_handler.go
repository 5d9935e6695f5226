package handler

import (
	"net/http"

	"musika/internal/delivery/http/response"
	"musika/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for report generation handlers.
type ReportHandler struct {
	uc usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

type generateReportRequest struct {
	Query string `json:"query" validate:"required"`
}

// GenerateReport answers a natural-language reporting question.
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	var req generateReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report query")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GenerateReport(c.Request().Context(), req.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Report generated successfully")
}
