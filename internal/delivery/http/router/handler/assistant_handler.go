package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"musika/internal/delivery/http/response"
	"musika/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssistantHandler holds dependencies for AI assistant handlers.
type AssistantHandler struct {
	uc usecase.AssistantUsecase
}

// NewAssistantHandler is the constructor for AssistantHandler, injected by Fx.
func NewAssistantHandler(uc usecase.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

type bulkAskRequest struct {
	Questions []string `json:"questions" validate:"required,min=1"`
}

// Ask answers a single free-text question.
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	answer, err := h.uc.Ask(c.Request().Context(), &usecase.AskInput{Question: req.Question})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"answer": answer}, "Question answered successfully")
}

// AnalyzeFile answers a question about an uploaded image or audio file. The
// upload is staged to a local temporary file; the usecase removes it after
// the model call.
func (h *AssistantHandler) AnalyzeFile(c echo.Context) error {
	question := c.FormValue("question")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "File upload is required")
	}

	filePath, err := stageUpload(fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}

	answer, err := h.uc.AnalyzeFile(c.Request().Context(), &usecase.AnalyzeFileInput{
		Question: question,
		FilePath: filePath,
		MimeType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"answer": answer}, "File analyzed successfully")
}

// BulkAsk answers a batch of questions sequentially.
func (h *AssistantHandler) BulkAsk(c echo.Context) error {
	var req bulkAskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk question input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	answers, err := h.uc.BulkAsk(c.Request().Context(), &usecase.BulkAskInput{Questions: req.Questions})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, answers, "Questions answered successfully")
}

// stageUpload copies a multipart upload into a temporary file and returns
// its path.
func stageUpload(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "open uploaded file")
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "upload-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return "", errors.Wrap(err, "create temp file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())

		return "", errors.Wrap(err, "stage uploaded file")
	}

	return dst.Name(), nil
}
