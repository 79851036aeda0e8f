// Package application holds the orchestration layer: the outbound ports the
// payment service depends on and the error shapes it returns to the boundary.
package application

import (
	"context"

	"github.com/acquira/payment-gateway/internal/domain"
)

// AuthorizationRequest is the validated payload forwarded to the acquiring
// bank. It is built once per payment and never retried or mutated.
type AuthorizationRequest struct {
	CardNumber string
	ExpiryDate string // zero-padded "MM/YYYY"
	Currency   string
	Amount     int64
	CVV        string
}

// AuthorizationResult is the only part of the acquirer's answer this system
// trusts: the binary decision and an optional authorization code.
type AuthorizationResult struct {
	Authorized        bool
	AuthorizationCode string
}

// AcquiringBankClient performs a single authorization round trip. A declined
// authorization is a successful call; errors mean the acquirer could not be
// asked at all.
type AcquiringBankClient interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*AuthorizationResult, error)
}

// PaymentStore keeps payment records for the lifetime of the process.
// Inserts are atomic; a Get never observes a partially written record.
type PaymentStore interface {
	Insert(ctx context.Context, payment *domain.Payment) error
	Get(ctx context.Context, id string) (*domain.Payment, error)
}
