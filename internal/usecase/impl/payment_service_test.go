package impl

import (
	"context"
	"testing"

	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	mockRepo "musika/internal/mocks/repository"
	"musika/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *mockRepo.MockTransactionManager) {
	t.Helper()

	mockTx := mockRepo.NewMockTransactionManager(t)
	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   mockTx,
		PaymentRepo: mockRepo.NewMockPaymentRepository(t),
		Logger:      newDiscardLogger(),
	})

	return svc, mockTx
}

func pendingPayment(transactionID string) *entity.Payment {
	return &entity.Payment{
		ID:            uuid.New(),
		OrderID:       uuid.New(),
		Method:        entity.PaymentMethodEcoCash,
		TransactionID: transactionID,
		Status:        entity.PaymentStatusPending,
	}
}

func wirePaymentFactory(t *testing.T, mockTx *mockRepo.MockTransactionManager,
	paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPaymentRepository().Return(paymentRepo)
	if orderRepo != nil {
		factory.EXPECT().NewOrderRepository().Return(orderRepo)
	}

	mockTx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestPaymentService_HandleCallback_Success(t *testing.T) {
	svc, mockTx := newPaymentService(t)
	ctx := context.Background()
	payment := pendingPayment("txn-abc")

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txPaymentRepo.EXPECT().FindByTransactionID(ctx, "txn-abc").Return(payment, nil)
	txPaymentRepo.EXPECT().UpdateStatus(ctx, "txn-abc", entity.PaymentStatusCompleted).Return(nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, payment.OrderID, entity.OrderStatusPaid).Return(nil)
	wirePaymentFactory(t, mockTx, txPaymentRepo, txOrderRepo)

	resolved, err := svc.HandleCallback(ctx, &usecase.PaymentCallbackInput{
		TransactionID: "txn-abc",
		Status:        "SUCCESS",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, resolved.Status)
}

func TestPaymentService_HandleCallback_NonSuccessFails(t *testing.T) {
	for _, status := range []string{"FAILED", "CANCELLED", "success", ""} {
		t.Run("status "+status, func(t *testing.T) {
			svc, mockTx := newPaymentService(t)
			ctx := context.Background()
			payment := pendingPayment("txn-def")

			txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
			txPaymentRepo.EXPECT().FindByTransactionID(ctx, "txn-def").Return(payment, nil)
			txPaymentRepo.EXPECT().UpdateStatus(ctx, "txn-def", entity.PaymentStatusFailed).Return(nil)
			wirePaymentFactory(t, mockTx, txPaymentRepo, nil)

			resolved, err := svc.HandleCallback(ctx, &usecase.PaymentCallbackInput{
				TransactionID: "txn-def",
				Status:        status,
			})

			require.NoError(t, err)
			assert.Equal(t, entity.PaymentStatusFailed, resolved.Status)
		})
	}
}

func TestPaymentService_HandleCallback_UnknownTransaction(t *testing.T) {
	svc, mockTx := newPaymentService(t)
	ctx := context.Background()

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txPaymentRepo.EXPECT().
		FindByTransactionID(ctx, "missing").
		Return(nil, repository.ErrPaymentNotFound)
	wirePaymentFactory(t, mockTx, txPaymentRepo, nil)

	resolved, err := svc.HandleCallback(ctx, &usecase.PaymentCallbackInput{
		TransactionID: "missing",
		Status:        "SUCCESS",
	})

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_HandleCallback_AlreadyResolved(t *testing.T) {
	svc, mockTx := newPaymentService(t)
	ctx := context.Background()
	payment := pendingPayment("txn-ghi")
	payment.Status = entity.PaymentStatusCompleted

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txPaymentRepo.EXPECT().FindByTransactionID(ctx, "txn-ghi").Return(payment, nil)
	wirePaymentFactory(t, mockTx, txPaymentRepo, nil)

	resolved, err := svc.HandleCallback(ctx, &usecase.PaymentCallbackInput{
		TransactionID: "txn-ghi",
		Status:        "SUCCESS",
	})

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}
