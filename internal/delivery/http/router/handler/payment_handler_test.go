package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"musika/internal/delivery/http/middleware"
	"musika/internal/delivery/http/validator"
	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	mockusecase "musika/internal/mocks/usecase"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockPaymentUsecase) {
	t.Helper()

	mockUC := mockusecase.NewMockPaymentUsecase(t)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/payments/ecocash/callback", h.HandleEcoCashCallback)

	return e, mockUC
}

func TestPaymentHandler_HandleEcoCashCallback_Success(t *testing.T) {
	e, mockUC := newPaymentTestServer(t)

	txnID := uuid.New().String()
	mockUC.EXPECT().
		HandleCallback(mock.Anything, &usecase.PaymentCallbackInput{
			TransactionID: txnID,
			Status:        "SUCCESS",
		}).
		Return(&entity.Payment{
			ID:            uuid.New(),
			TransactionID: txnID,
			Status:        entity.PaymentStatusCompleted,
		}, nil)

	body := `{"transaction_id":"` + txnID + `","status":"SUCCESS"}`
	req := httptest.NewRequest(http.MethodPost, "/payments/ecocash/callback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), txnID)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestPaymentHandler_HandleEcoCashCallback_UnknownTransaction(t *testing.T) {
	e, mockUC := newPaymentTestServer(t)

	mockUC.EXPECT().
		HandleCallback(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPaymentNotFound)

	body := `{"transaction_id":"missing","status":"SUCCESS"}`
	req := httptest.NewRequest(http.MethodPost, "/payments/ecocash/callback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYMENT_NOT_FOUND")
}

func TestPaymentHandler_HandleEcoCashCallback_MissingStatus(t *testing.T) {
	e, _ := newPaymentTestServer(t)

	body := `{"transaction_id":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/payments/ecocash/callback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
