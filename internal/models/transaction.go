package models

import (
	"strings"
	"time"
)

// PaymentMethod is how a transaction was paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentBank PaymentMethod = "BANK"
)

// ParsePaymentMethod parses a payment method, case-insensitively.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(s)) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentCard:
		return PaymentCard, nil
	case PaymentUPI:
		return PaymentUPI, nil
	case PaymentBank:
		return PaymentBank, nil
	}
	return "", ErrInvalidPaymentMethod
}

// Transaction represents a single financial event, expense or income.
// Type is stored on the transaction itself and is not required to match
// the type of the referenced category.
type Transaction struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	AmountCents   int64         `json:"amount_cents"`
	CategoryID    int64         `json:"category_id"`
	Type          CategoryType  `json:"type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Date          Date          `json:"date"`
	Note          string        `json:"note,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
