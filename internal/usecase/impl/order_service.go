// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "musika/internal/delivery/context"
	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/domain/service"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ecocashPhonePattern is the accepted customer phone format: the 263 country
// code followed by nine digits, no plus sign or separators.
var ecocashPhonePattern = regexp.MustCompile(`^263\d{9}$`)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a new order. For EcoCash payments the customer is
// charged synchronously before anything is persisted; a gateway failure
// aborts the order entirely. Order, items, payment, shipping details and the
// income record are then written in a single transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	if err := validateCreateOrderInput(input); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range input.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	transactionID := uuid.New().String()

	if input.PaymentMethod == entity.PaymentMethodEcoCash {
		err := srv.gateway.InitiatePayment(ctx, &service.PaymentRequest{
			Phone:     input.Phone,
			Amount:    total,
			Reference: transactionID,
		})
		if err != nil {
			srv.log(ctx).Error("Payment initiation failed",
				slog.String("transactionID", transactionID),
				slog.Any("error", err),
			)

			return nil, err
		}
	}

	order := buildOrder(input, total)
	payment := buildPayment(input, order, total, transactionID)
	shipping := buildShippingDetails(input, order)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := repoFactory.NewPaymentRepository().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		if err := repoFactory.NewShippingRepository().Create(ctx, shipping); err != nil {
			return errors.Wrap(err, "failed to create shipping details")
		}

		income := &entity.FinancialRecord{
			ID:          uuid.New(),
			OrderID:     order.ID,
			Type:        entity.FinancialTypeIncome,
			Amount:      total,
			Description: "Order " + order.ID.String(),
		}
		if err := repoFactory.NewFinancialRepository().Create(ctx, income); err != nil {
			return errors.Wrap(err, "failed to create financial record")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order creation transaction",
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrOrderCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.String("transactionID", transactionID),
		slog.String("total", total.StringFixed(2)),
	)

	return &usecase.CreateOrderOutput{Order: order, Payment: payment}, nil
}

// GetOrder retrieves a single order with its items.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// GetUserOrderHistory retrieves all orders placed by a user, newest first.
func (srv *orderService) GetUserOrderHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// ListPurchasers lists distinct users that have at least one paid order.
func (srv *orderService) ListPurchasers(ctx context.Context) ([]*repository.Purchaser, error) {
	purchasers, err := srv.orderRepo.ListPurchasers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchasers")
	}

	return purchasers, nil
}

// GetPurchaseStats returns aggregate purchase statistics across paid orders.
func (srv *orderService) GetPurchaseStats(ctx context.Context) (*repository.PurchaseStats, error) {
	stats, err := srv.orderRepo.PurchaseStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute purchase stats")
	}

	return stats, nil
}

func validateCreateOrderInput(input *usecase.CreateOrderInput) error {
	if len(input.Items) == 0 {
		return domainerrors.ErrOrderEmpty
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return domainerrors.ErrValidationFailed.WithDetails("item unit price must not be negative")
		}
	}

	if !input.PaymentMethod.Valid() {
		return domainerrors.ErrInvalidPaymentMethod
	}

	if input.PaymentMethod == entity.PaymentMethodEcoCash && !ecocashPhonePattern.MatchString(input.Phone) {
		return domainerrors.ErrInvalidPhoneNumber
	}

	return nil
}

func buildOrder(input *usecase.CreateOrderInput, total decimal.Decimal) *entity.Order {
	order := &entity.Order{
		ID:         uuid.New(),
		UserID:     input.UserID,
		TotalPrice: total,
		Status:     entity.OrderStatusPending,
	}

	for _, item := range input.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return order
}

func buildPayment(input *usecase.CreateOrderInput, order *entity.Order, total decimal.Decimal, transactionID string) *entity.Payment {
	return &entity.Payment{
		ID:            uuid.New(),
		OrderID:       order.ID,
		UserID:        input.UserID,
		Method:        input.PaymentMethod,
		TransactionID: transactionID,
		Phone:         input.Phone,
		Amount:        total,
		Status:        entity.PaymentStatusPending,
	}
}

func buildShippingDetails(input *usecase.CreateOrderInput, order *entity.Order) *entity.ShippingDetails {
	return &entity.ShippingDetails{
		ID:         uuid.New(),
		OrderID:    order.ID,
		UserID:     input.UserID,
		FullName:   input.Shipping.FullName,
		Street:     input.Shipping.Street,
		City:       input.Shipping.City,
		Province:   input.Shipping.Province,
		PostalCode: input.Shipping.PostalCode,
		Country:    input.Shipping.Country,
		Phone:      input.Shipping.Phone,
	}
}
