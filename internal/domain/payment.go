// Package domain encodes the payment entities and the business rules a
// payment request has to satisfy before it is sent to the acquiring bank.
package domain

import (
	"errors"
	"fmt"
)

// PaymentStatus is the terminal outcome of a processed payment.
type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
)

// PaymentRequest is the inbound payment submission. Numeric fields are
// pointers so an absent field can be told apart from a zero value during
// validation. The full card number and CVV never outlive the request.
type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth *int
	ExpiryYear  *int
	Currency    string
	Amount      *int64
	CVV         string
}

// ExpiryDate formats the expiry as the acquirer expects it, e.g. "04/2025".
// Only meaningful once the request has passed validation.
func (r *PaymentRequest) ExpiryDate() string {
	if r.ExpiryMonth == nil || r.ExpiryYear == nil {
		return ""
	}
	return fmt.Sprintf("%02d/%d", *r.ExpiryMonth, *r.ExpiryYear)
}

// Payment is the persisted record of a processed payment. It carries only the
// masked card fragment; the full number and CVV are never stored.
type Payment struct {
	ID           string
	Status       PaymentStatus
	CardLastFour string
	ExpiryMonth  int
	ExpiryYear   int
	Currency     string
	Amount       int64
}

// NewPayment builds the record persisted once the acquirer has responded.
// The card number is reduced to its last four digits here and discarded.
func NewPayment(
	id string,
	status PaymentStatus,
	cardNumber string,
	expiryMonth int,
	expiryYear int,
	currency string,
	amount int64,
) (*Payment, error) {
	if id == "" {
		return nil, errors.New("payment ID is required")
	}
	if status != StatusAuthorized && status != StatusDeclined {
		return nil, fmt.Errorf("invalid payment status %q", status)
	}

	return &Payment{
		ID:           id,
		Status:       status,
		CardLastFour: LastFour(cardNumber),
		ExpiryMonth:  expiryMonth,
		ExpiryYear:   expiryYear,
		Currency:     currency,
		Amount:       amount,
	}, nil
}

// LastFour returns the final four digits of a card number, or an empty string
// when the number is shorter than four characters.
func LastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return ""
	}
	return cardNumber[len(cardNumber)-4:]
}
