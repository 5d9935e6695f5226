// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"musika/internal/delivery/http/response"
	"musika/internal/domain/entity"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type shippingRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone"`
}

type createOrderRequest struct {
	UserID        *uuid.UUID         `json:"user_id"`
	Items         []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string             `json:"payment_method" validate:"required"`
	Phone         string             `json:"phone"`
	Shipping      shippingRequest    `json:"shipping" validate:"required"`
}

// CreateOrder handles the order placement request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateOrderInput{
		UserID: req.UserID,
		Items: lo.Map(req.Items, func(item orderItemRequest, _ int) usecase.OrderItemInput {
			return usecase.OrderItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
		}),
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Phone:         req.Phone,
		Shipping: usecase.ShippingInput{
			FullName:   req.Shipping.FullName,
			Street:     req.Shipping.Street,
			City:       req.Shipping.City,
			Province:   req.Shipping.Province,
			PostalCode: req.Shipping.PostalCode,
			Country:    req.Shipping.Country,
			Phone:      req.Shipping.Phone,
		},
	}

	output, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order created successfully")
}

// GetOrder handles the order lookup request.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetUserOrderHistory lists all orders placed by one user, newest first.
func (h *OrderHandler) GetUserOrderHistory(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	orders, err := h.uc.GetUserOrderHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Order history retrieved successfully")
}

// ListPurchasers lists distinct users that have at least one paid order.
func (h *OrderHandler) ListPurchasers(c echo.Context) error {
	purchasers, err := h.uc.ListPurchasers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchasers, "Purchasers retrieved successfully")
}

// GetPurchaseStats returns aggregate purchase statistics across paid orders.
func (h *OrderHandler) GetPurchaseStats(c echo.Context) error {
	stats, err := h.uc.GetPurchaseStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Purchase statistics retrieved successfully")
}
