package rest

import "github.com/acquira/payment-gateway/internal/domain"

// PostPaymentRequest is the inbound JSON body. Numeric fields are pointers so
// a missing field is distinguishable from zero and produces the right
// validation message.
type PostPaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth *int   `json:"expiry_month"`
	ExpiryYear  *int   `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      *int64 `json:"amount"`
	CVV         string `json:"cvv"`
}

// PaymentResponse is the public view of a processed payment. The card number
// appears only as its last four digits, kept as a string so a fragment with
// leading zeros survives.
type PaymentResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	CardNumberLastFour string `json:"card_number_last_four"`
	ExpiryMonth        int    `json:"expiry_month"`
	ExpiryYear         int    `json:"expiry_year"`
	Currency           string `json:"currency"`
	Amount             int64  `json:"amount"`
}

// ErrorResponse carries the single human-readable message callers get on any
// failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

func toDomainRequest(req *PostPaymentRequest) *domain.PaymentRequest {
	return &domain.PaymentRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		CVV:         req.CVV,
	}
}

func toPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 payment.ID,
		Status:             string(payment.Status),
		CardNumberLastFour: payment.CardLastFour,
		ExpiryMonth:        payment.ExpiryMonth,
		ExpiryYear:         payment.ExpiryYear,
		Currency:           payment.Currency,
		Amount:             payment.Amount,
	}
}
