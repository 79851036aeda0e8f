package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/acquira/payment-gateway/internal/application"
	"github.com/acquira/payment-gateway/internal/application/services"
	"github.com/acquira/payment-gateway/internal/domain"
	"github.com/acquira/payment-gateway/internal/infrastructure/acquirer"
)

func ptr[T any](v T) *T {
	return &v
}

type PaymentServiceTestSuite struct {
	suite.Suite
	bank    *MockBankClient
	store   *MockPaymentStore
	service *services.PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

// SetupTest runs before each test
func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.bank = &MockBankClient{}
	suite.store = NewMockPaymentStore()

	validator := domain.NewValidatorWithClock(func() time.Time {
		return time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewPaymentService(validator, suite.bank, suite.store, logger)
}

func validRequest() *domain.PaymentRequest {
	return &domain.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: ptr(4),
		ExpiryYear:  ptr(2030),
		Currency:    "GBP",
		Amount:      ptr(int64(100)),
		CVV:         "123",
	}
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_Authorized() {
	t := suite.T()

	suite.bank.AuthorizeFn = func(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
		return &application.AuthorizationResult{Authorized: true, AuthorizationCode: "abc123"}, nil
	}

	payment, err := suite.service.ProcessPayment(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.Equal(t, domain.StatusAuthorized, payment.Status)
	assert.Equal(t, "8877", payment.CardLastFour)
	assert.Equal(t, 4, payment.ExpiryMonth)
	assert.Equal(t, 2030, payment.ExpiryYear)
	assert.Equal(t, "GBP", payment.Currency)
	assert.Equal(t, int64(100), payment.Amount)

	_, err = uuid.Parse(payment.ID)
	assert.NoError(t, err)

	// The record is persisted and retrievable.
	stored, err := suite.store.Get(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, *payment, *stored)
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_Declined() {
	t := suite.T()

	suite.bank.AuthorizeFn = func(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
		return &application.AuthorizationResult{Authorized: false}, nil
	}

	payment, err := suite.service.ProcessPayment(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, payment.Status)
	assert.Equal(t, 1, suite.store.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_BuildsAcquirerRequest() {
	t := suite.T()

	_, err := suite.service.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, suite.bank.Calls)
	assert.Equal(t, "2222405343248877", suite.bank.LastReq.CardNumber)
	assert.Equal(t, "04/2030", suite.bank.LastReq.ExpiryDate)
	assert.Equal(t, "GBP", suite.bank.LastReq.Currency)
	assert.Equal(t, int64(100), suite.bank.LastReq.Amount)
	assert.Equal(t, "123", suite.bank.LastReq.CVV)
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_ValidationFailure() {
	t := suite.T()

	req := validRequest()
	req.Amount = ptr(int64(0))

	_, err := suite.service.ProcessPayment(context.Background(), req)

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidRequest, svcErr.Code)
	assert.Equal(t, "Amount must be greater than zero", svcErr.Message)

	// Nothing reached the bank, nothing was persisted.
	assert.Equal(t, 0, suite.bank.Calls)
	assert.Equal(t, 0, suite.store.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_UnsupportedCurrency() {
	t := suite.T()

	req := validRequest()
	req.Currency = "JPY"

	_, err := suite.service.ProcessPayment(context.Background(), req)

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "Currency must be one of the supported types (GBP, EUR, USD)", svcErr.Message)
	assert.Equal(t, 0, suite.bank.Calls)
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_FirstViolationWins() {
	t := suite.T()

	req := validRequest()
	req.CardNumber = "123"
	req.Currency = "JPY"
	req.CVV = ""

	_, err := suite.service.ProcessPayment(context.Background(), req)

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "Card Number must be between 14-19 digits", svcErr.Message)
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_AcquirerUnavailable() {
	t := suite.T()

	suite.bank.AuthorizeFn = func(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
		return nil, &acquirer.Error{Kind: acquirer.KindUnavailable, Message: "acquiring bank service not available", StatusCode: 503}
	}

	_, err := suite.service.ProcessPayment(context.Background(), validRequest())

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeAcquirerUnavailable, svcErr.Code)
	assert.Equal(t, "Internal server error. Please try again later", svcErr.Message)

	// No partial record survives a failed round trip.
	assert.Equal(t, 0, suite.store.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_AcquirerUnreachable() {
	t := suite.T()

	suite.bank.AuthorizeFn = func(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
		return nil, &acquirer.Error{Kind: acquirer.KindUnreachable, Message: "error connecting to acquiring bank"}
	}

	_, err := suite.service.ProcessPayment(context.Background(), validRequest())

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeAcquirerUnreachable, svcErr.Code)
	assert.Equal(t, 0, suite.store.Count())
}

func (suite *PaymentServiceTestSuite) Test_ProcessPayment_StoreFailure() {
	t := suite.T()

	suite.store.InsertFn = func(ctx context.Context, payment *domain.Payment) error {
		return domain.NewDuplicatePaymentError(payment.ID)
	}

	_, err := suite.service.ProcessPayment(context.Background(), validRequest())

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
}

func (suite *PaymentServiceTestSuite) Test_GetPaymentByID_Found() {
	t := suite.T()

	payment, err := suite.service.ProcessPayment(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := suite.service.GetPaymentByID(context.Background(), payment.ID)

	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.ID)
	assert.Equal(t, payment.Status, got.Status)
	assert.Equal(t, "8877", got.CardLastFour)
	assert.Equal(t, "GBP", got.Currency)
	assert.Equal(t, int64(100), got.Amount)
}

func (suite *PaymentServiceTestSuite) Test_GetPaymentByID_NotFound() {
	t := suite.T()

	_, err := suite.service.GetPaymentByID(context.Background(), uuid.New().String())

	require.Error(t, err)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeNotFound, svcErr.Code)
	assert.Equal(t, "Page not found", svcErr.Message)
}
