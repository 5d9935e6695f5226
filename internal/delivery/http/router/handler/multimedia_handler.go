package handler

import (
	"net/http"

	"musika/internal/delivery/http/response"
	"musika/internal/domain/entity"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MultimediaHandler holds dependencies for multimedia metadata handlers.
type MultimediaHandler struct {
	uc usecase.MultimediaUsecase
}

// NewMultimediaHandler is the constructor for MultimediaHandler, injected by Fx.
func NewMultimediaHandler(uc usecase.MultimediaUsecase) *MultimediaHandler {
	return &MultimediaHandler{uc: uc}
}

type createMultimediaRequest struct {
	FileType      string `json:"file_type" validate:"required"`
	URL           string `json:"url" validate:"required,url"`
	ExtractedText string `json:"extracted_text"`
}

// CreateMultimedia records metadata for a stored file, owned by the caller.
func (h *MultimediaHandler) CreateMultimedia(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from request")
	}

	var req createMultimediaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multimedia input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.CreateMultimedia(c.Request().Context(), &usecase.CreateMultimediaInput{
		UserID:        userID,
		FileType:      entity.FileType(req.FileType),
		URL:           req.URL,
		ExtractedText: req.ExtractedText,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Multimedia metadata created successfully")
}

// ListMultimedia lists the caller's multimedia metadata records.
func (h *MultimediaHandler) ListMultimedia(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from request")
	}

	records, err := h.uc.ListUserMultimedia(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Multimedia metadata retrieved successfully")
}

// GetMultimedia retrieves a single metadata record.
func (h *MultimediaHandler) GetMultimedia(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multimedia id")
	}

	record, err := h.uc.GetMultimedia(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Multimedia metadata retrieved successfully")
}

// DeleteMultimedia removes a metadata record.
func (h *MultimediaHandler) DeleteMultimedia(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multimedia id")
	}

	if err := h.uc.DeleteMultimedia(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Multimedia metadata deleted successfully")
}
