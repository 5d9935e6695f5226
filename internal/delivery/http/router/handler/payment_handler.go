package handler

import (
	"net/http"

	"musika/internal/delivery/http/response"
	"musika/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type paymentCallbackRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

// HandleEcoCashCallback receives the gateway's payment status callback.
// The gateway does not sign callbacks, so any caller knowing a transaction id
// can resolve its payment. Known gap.
func (h *PaymentHandler) HandleEcoCashCallback(c echo.Context) error {
	var req paymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback payload")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	payment, err := h.uc.HandleCallback(c.Request().Context(), &usecase.PaymentCallbackInput{
		TransactionID: req.TransactionID,
		Status:        req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment status updated")
}
