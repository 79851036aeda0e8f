package domain

import (
	"regexp"
	"time"
)

// Violation is a single validation rule failure with its caller-visible
// message.
type Violation struct {
	Field   string
	Message string
}

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{14,19}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

var supportedCurrencies = map[string]struct{}{
	"GBP": {},
	"EUR": {},
	"USD": {},
}

// Validator checks payment requests against the fixed rule set. The clock is
// injectable so the expiry boundary can be pinned in tests.
type Validator struct {
	now func() time.Time
}

func NewValidator() *Validator {
	return NewValidatorWithClock(time.Now)
}

// NewValidatorWithClock fixes the clock used by the future-expiry rule.
func NewValidatorWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Validate returns every violation the request produces, in a fixed order:
// card number, expiry month, expiry year, currency, amount, cvv, then the
// cross-field future-expiry rule. Callers that surface a single message take
// the first entry; the ordering is part of the public contract, not an
// implementation detail.
func (v *Validator) Validate(req *PaymentRequest) []Violation {
	var violations []Violation

	switch {
	case req.CardNumber == "":
		violations = append(violations, Violation{"card_number", "Card Number is required"})
	case !cardNumberPattern.MatchString(req.CardNumber):
		violations = append(violations, Violation{"card_number", "Card Number must be between 14-19 digits"})
	}

	switch {
	case req.ExpiryMonth == nil:
		violations = append(violations, Violation{"expiry_month", "Expiry Month is required"})
	case *req.ExpiryMonth < 1 || *req.ExpiryMonth > 12:
		violations = append(violations, Violation{"expiry_month", "Expiry Month must be between 1 and 12"})
	}

	if req.ExpiryYear == nil {
		violations = append(violations, Violation{"expiry_year", "Expiry Year is required"})
	}

	switch {
	case req.Currency == "":
		violations = append(violations, Violation{"currency", "Currency is required"})
	case len(req.Currency) != 3:
		violations = append(violations, Violation{"currency", "Currency must be 3 characters"})
	default:
		if _, ok := supportedCurrencies[req.Currency]; !ok {
			violations = append(violations, Violation{"currency", "Currency must be one of the supported types (GBP, EUR, USD)"})
		}
	}

	switch {
	case req.Amount == nil:
		violations = append(violations, Violation{"amount", "Amount is required"})
	case *req.Amount < 1:
		violations = append(violations, Violation{"amount", "Amount must be greater than zero"})
	}

	switch {
	case req.CVV == "":
		violations = append(violations, Violation{"cvv", "CVV is required"})
	case !cvvPattern.MatchString(req.CVV):
		violations = append(violations, Violation{"cvv", "CVV must be 3 or 4 digits"})
	}

	if v.expired(req) {
		violations = append(violations, Violation{"expiry_date", "Expiry Date must be in the future"})
	}

	return violations
}

// expired applies the cross-field future-expiry rule. The rule is skipped
// when the month or year is missing or the month is out of range; those
// fields already carry their own violation. The current month counts as not
// yet expired.
func (v *Validator) expired(req *PaymentRequest) bool {
	if req.ExpiryMonth == nil || req.ExpiryYear == nil {
		return false
	}
	if *req.ExpiryMonth < 1 || *req.ExpiryMonth > 12 {
		return false
	}

	now := v.now()
	if *req.ExpiryYear != now.Year() {
		return *req.ExpiryYear < now.Year()
	}
	return *req.ExpiryMonth < int(now.Month())
}

// FirstMessage selects the message the caller sees when a request fails
// validation: the first violation in rule order, or a generic fallback when
// no per-field message is available.
func FirstMessage(violations []Violation) string {
	for _, violation := range violations {
		if violation.Message != "" {
			return violation.Message
		}
	}
	return "Validation failed"
}
