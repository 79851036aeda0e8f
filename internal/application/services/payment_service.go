// Package services wires the validator, the acquiring bank client and the
// payment store into the payment processing flow.
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/acquira/payment-gateway/internal/application"
	"github.com/acquira/payment-gateway/internal/domain"
	"github.com/acquira/payment-gateway/internal/infrastructure/acquirer"
)

type PaymentService struct {
	validator *domain.Validator
	bank      application.AcquiringBankClient
	store     application.PaymentStore
	logger    *slog.Logger
}

func NewPaymentService(
	validator *domain.Validator,
	bank application.AcquiringBankClient,
	store application.PaymentStore,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		validator: validator,
		bank:      bank,
		store:     store,
		logger:    logger,
	}
}

// ProcessPayment runs a submission through validation, authorizes it with the
// acquiring bank and persists the outcome. Rejected submissions never reach
// the bank; acquirer failures never produce a record. Only Authorized and
// Declined records are ever stored.
func (s *PaymentService) ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Payment, error) {
	if violations := s.validator.Validate(req); len(violations) > 0 {
		message := domain.FirstMessage(violations)
		s.logger.Info("payment request rejected",
			"reason", message,
			"violations", len(violations),
		)
		return nil, application.NewInvalidRequestError(message)
	}

	bankReq := application.AuthorizationRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate(),
		Currency:   req.Currency,
		Amount:     *req.Amount,
		CVV:        req.CVV,
	}

	result, err := s.bank.Authorize(ctx, bankReq)
	if err != nil {
		if acqErr, ok := acquirer.IsAcquirerError(err); ok && acqErr.Kind == acquirer.KindUnavailable {
			s.logger.Error("acquiring bank unavailable", "error", err)
			return nil, application.NewAcquirerUnavailableError(err)
		}
		s.logger.Error("acquiring bank unreachable", "error", err)
		return nil, application.NewAcquirerUnreachableError(err)
	}

	status := domain.StatusDeclined
	if result.Authorized {
		status = domain.StatusAuthorized
	}

	payment, err := domain.NewPayment(
		uuid.New().String(),
		status,
		req.CardNumber,
		*req.ExpiryMonth,
		*req.ExpiryYear,
		req.Currency,
		*req.Amount,
	)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	if err := s.store.Insert(ctx, payment); err != nil {
		s.logger.Error("failed to persist payment", "payment_id", payment.ID, "error", err)
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment processed",
		"payment_id", payment.ID,
		"status", payment.Status,
		"card_last_four", payment.CardLastFour,
		"currency", payment.Currency,
		"amount", payment.Amount,
	)
	return payment, nil
}

// GetPaymentByID retrieves a previously processed payment.
func (s *PaymentService) GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error) {
	s.logger.Debug("looking up payment", "payment_id", id)

	payment, err := s.store.Get(ctx, id)
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodePaymentNotFound) {
			return nil, application.NewNotFoundError(id)
		}
		return nil, application.NewInternalError(err)
	}

	return payment, nil
}
