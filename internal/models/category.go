package models

import (
	"strings"
	"time"
)

// CategoryType classifies a category (and, independently, a transaction)
// as expense or income.
type CategoryType string

const (
	TypeExpense CategoryType = "EXPENSE"
	TypeIncome  CategoryType = "INCOME"
)

// ParseCategoryType parses a category type, case-insensitively.
func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(strings.ToUpper(s)) {
	case TypeExpense:
		return TypeExpense, nil
	case TypeIncome:
		return TypeIncome, nil
	}
	return "", ErrInvalidCategoryType
}

// Category is a named bucket transactions are filed under. A category
// with UserID == nil is a seeded default, visible to every user.
type Category struct {
	ID        int64        `json:"id"`
	UserID    *int64       `json:"user_id,omitempty"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// IsDefault reports whether the category is a global default. Defaults
// are immutable and cannot be deleted.
func (c *Category) IsDefault() bool {
	return c.UserID == nil
}
