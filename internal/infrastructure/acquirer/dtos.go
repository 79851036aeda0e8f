package acquirer

// BankPaymentRequest is the acquirer's wire shape for an authorization.
type BankPaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

// BankPaymentResponse is the acquirer's answer. The authorization code is
// null when the payment is declined.
type BankPaymentResponse struct {
	Authorized        bool    `json:"authorized"`
	AuthorizationCode *string `json:"authorization_code"`
}
