package models

import "errors"

// Domain errors. Handlers map these to HTTP statuses; everything else
// is treated as an internal error.
var (
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidDate              = errors.New("transaction date cannot be in the future")
	ErrInvalidPeriod            = errors.New("invalid month/year period")
	ErrInvalidCategoryType      = errors.New("invalid category type")
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrCategoryNotFound         = errors.New("category not found or unauthorized access")
	ErrDuplicateCategory        = errors.New("category with this name already exists for the user or as a default")
	ErrDefaultCategoryProtected = errors.New("default categories cannot be deleted")
	ErrCategoryInUse            = errors.New("category cannot be deleted as it is used by existing transactions")
	ErrTransactionNotFound      = errors.New("transaction not found or unauthorized access")
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailTaken               = errors.New("email is already registered")
	ErrInvalidCredentials       = errors.New("invalid credentials")
)
