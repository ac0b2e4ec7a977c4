package models

import "time"

// User represents a registered user
type User struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"` // Not serialized
	Name               string    `json:"name"`
	Currency           string    `json:"currency"`
	MonthlyBudgetCents int64     `json:"monthly_budget_cents"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
