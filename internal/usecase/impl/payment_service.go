package impl

import (
	"context"
	"log/slog"

	deliverycontext "musika/internal/delivery/context"
	"musika/internal/domain/entity"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/repository"
	"musika/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gatewayStatusSuccess is the literal status string the gateway sends for a
// completed charge. Any other value fails the payment.
const gatewayStatusSuccess = "SUCCESS"

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleCallback resolves a pending payment from a gateway status callback.
// The callback carries no signature, so the sender cannot be authenticated;
// any caller that knows a transaction id can settle it. Known gap.
func (srv *paymentService) HandleCallback(ctx context.Context, input *usecase.PaymentCallbackInput) (*entity.Payment, error) {
	nextStatus := entity.PaymentStatusFailed
	if input.Status == gatewayStatusSuccess {
		nextStatus = entity.PaymentStatusCompleted
	}

	var payment *entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		found, err := paymentRepo.FindByTransactionID(ctx, input.TransactionID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return domainerrors.ErrPaymentNotFound
			}

			return errors.Wrap(err, "failed to find payment")
		}

		if !found.Status.CanTransitionTo(nextStatus) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				"payment is already " + string(found.Status),
			)
		}

		if err := paymentRepo.UpdateStatus(ctx, input.TransactionID, nextStatus); err != nil {
			return errors.Wrap(err, "failed to update payment status")
		}

		// A completed payment moves the order forward as well.
		if nextStatus == entity.PaymentStatusCompleted {
			orderRepo := repoFactory.NewOrderRepository()
			if err := orderRepo.UpdateStatus(ctx, found.OrderID, entity.OrderStatusPaid); err != nil {
				return errors.Wrap(err, "failed to update order status")
			}
		}

		found.Status = nextStatus
		payment = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Payment callback failed",
			slog.String("transactionID", input.TransactionID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Payment resolved",
		slog.String("transactionID", input.TransactionID),
		slog.String("status", string(nextStatus)),
	)

	return payment, nil
}
