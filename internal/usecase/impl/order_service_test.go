package impl

import (
	"context"
	"net/http"
	"testing"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/domain/service"
	mockRepo "musika/internal/mocks/repository"
	mockSvc "musika/internal/mocks/service"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (usecase.OrderUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockOrderRepository, *mockSvc.MockPaymentGateway) {
	t.Helper()

	mockTx := mockRepo.NewMockTransactionManager(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockGateway := mockSvc.NewMockPaymentGateway(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager: mockTx,
		OrderRepo: mockOrderRepo,
		Gateway:   mockGateway,
		Logger:    newDiscardLogger(),
	})

	return svc, mockTx, mockOrderRepo, mockGateway
}

func validOrderInput() *usecase.CreateOrderInput {
	userID := uuid.New()

	return &usecase.CreateOrderInput{
		UserID: &userID,
		Items: []usecase.OrderItemInput{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromFloat(10.50)},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromFloat(4.00)},
		},
		PaymentMethod: entity.PaymentMethodEcoCash,
		Phone:         "263771234567",
		Shipping: usecase.ShippingInput{
			FullName:   "Tendai Moyo",
			Street:     "12 Samora Machel Ave",
			City:       "Harare",
			Province:   "Harare",
			PostalCode: "00263",
			Country:    "Zimbabwe",
			Phone:      "263771234567",
		},
	}
}

// wireFactory makes the transaction manager run its callback against a
// factory backed by the given repository mocks.
func wireFactory(t *testing.T, mockTx *mockRepo.MockTransactionManager,
	orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository,
	shippingRepo repository.ShippingRepository, financialRepo repository.FinancialRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	if orderRepo != nil {
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
	}
	if paymentRepo != nil {
		factory.EXPECT().NewPaymentRepository().Return(paymentRepo)
	}
	if shippingRepo != nil {
		factory.EXPECT().NewShippingRepository().Return(shippingRepo)
	}
	if financialRepo != nil {
		factory.EXPECT().NewFinancialRepository().Return(financialRepo)
	}

	mockTx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	svc, mockTx, _, mockGateway := newOrderService(t)
	ctx := context.Background()
	input := validOrderInput()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txShippingRepo := mockRepo.NewMockShippingRepository(t)
	txFinancialRepo := mockRepo.NewMockFinancialRepository(t)

	mockGateway.EXPECT().
		InitiatePayment(ctx, mock.AnythingOfType("*service.PaymentRequest")).
		RunAndReturn(func(_ context.Context, req *service.PaymentRequest) error {
			assert.Equal(t, "263771234567", req.Phone)
			assert.True(t, req.Amount.Equal(decimal.NewFromFloat(25.00)))
			assert.NotEmpty(t, req.Reference)

			return nil
		})

	txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	txPaymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	txShippingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ShippingDetails")).Return(nil)
	txFinancialRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FinancialRecord")).Return(nil)
	wireFactory(t, mockTx, txOrderRepo, txPaymentRepo, txShippingRepo, txFinancialRepo)

	output, err := svc.CreateOrder(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)

	// Total is recomputed from the items, 2×10.50 + 1×4.00.
	assert.True(t, output.Order.TotalPrice.Equal(decimal.NewFromFloat(25.00)))
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
	assert.Len(t, output.Order.Items, 2)
	assert.Equal(t, entity.PaymentStatusPending, output.Payment.Status)
	assert.Equal(t, output.Order.ID, output.Payment.OrderID)
	assert.True(t, output.Payment.Amount.Equal(output.Order.TotalPrice))
}

func TestOrderService_CreateOrder_InvalidPhone(t *testing.T) {
	svc, _, _, _ := newOrderService(t)
	input := validOrderInput()
	input.Phone = "0771234567"

	output, err := svc.CreateOrder(context.Background(), input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	svc, _, _, _ := newOrderService(t)
	input := validOrderInput()
	input.Items = nil

	output, err := svc.CreateOrder(context.Background(), input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderEmpty)
}

func TestOrderService_CreateOrder_InvalidPaymentMethod(t *testing.T) {
	svc, _, _, _ := newOrderService(t)
	input := validOrderInput()
	input.PaymentMethod = "paypal"

	output, err := svc.CreateOrder(context.Background(), input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestOrderService_CreateOrder_GatewayFailureAborts(t *testing.T) {
	svc, _, _, mockGateway := newOrderService(t)
	ctx := context.Background()
	input := validOrderInput()

	gatewayErr := domainerrors.NewGatewayError(http.StatusPaymentRequired, "Insufficient funds")
	mockGateway.EXPECT().
		InitiatePayment(ctx, mock.AnythingOfType("*service.PaymentRequest")).
		Return(gatewayErr)

	// No transaction expectations: nothing must be persisted.
	output, err := svc.CreateOrder(ctx, input)
	assert.Nil(t, output)

	var ge *domainerrors.GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, http.StatusPaymentRequired, ge.StatusCode)
	assert.Equal(t, "Insufficient funds", ge.Upstream)
}

func TestOrderService_CreateOrder_CashOnDeliverySkipsGateway(t *testing.T) {
	svc, mockTx, _, _ := newOrderService(t)
	ctx := context.Background()
	input := validOrderInput()
	input.PaymentMethod = entity.PaymentMethodCashOnDelivery
	input.Phone = "" // No phone needed without EcoCash.

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txShippingRepo := mockRepo.NewMockShippingRepository(t)
	txFinancialRepo := mockRepo.NewMockFinancialRepository(t)

	txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	txPaymentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
	txShippingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ShippingDetails")).Return(nil)
	txFinancialRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FinancialRecord")).Return(nil)
	wireFactory(t, mockTx, txOrderRepo, txPaymentRepo, txShippingRepo, txFinancialRepo)

	output, err := svc.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCashOnDelivery, output.Payment.Method)
}

func TestOrderService_CreateOrder_TransactionRollback(t *testing.T) {
	svc, mockTx, _, mockGateway := newOrderService(t)
	ctx := context.Background()
	input := validOrderInput()

	mockGateway.EXPECT().
		InitiatePayment(ctx, mock.AnythingOfType("*service.PaymentRequest")).
		Return(nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	txPaymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(errors.New("connection reset"))
	wireFactory(t, mockTx, txOrderRepo, txPaymentRepo, nil, nil)

	output, err := svc.CreateOrder(ctx, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderCreationFailed)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc, _, mockOrderRepo, _ := newOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := svc.GetOrder(ctx, orderID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetPurchaseStats(t *testing.T) {
	svc, _, mockOrderRepo, _ := newOrderService(t)
	ctx := context.Background()

	stats := &repository.PurchaseStats{
		OrderCount:        4,
		TotalRevenue:      decimal.NewFromInt(100),
		AverageOrderValue: decimal.NewFromInt(25),
	}
	mockOrderRepo.EXPECT().PurchaseStats(ctx).Return(stats, nil)

	got, err := svc.GetPurchaseStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
