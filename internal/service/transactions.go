package service

import (
	"context"
	"time"

	"github.com/nvoronin/expense-service/internal/models"
)

// TransactionInput carries the caller-supplied fields of a transaction.
// Updates are full-field replacements of these values.
type TransactionInput struct {
	AmountCents   int64
	CategoryID    int64
	Type          models.CategoryType
	PaymentMethod models.PaymentMethod
	Date          models.Date
	Note          string
}

// validateTransaction gates every create and update. It has no side
// effects. "Not found" and "owned by another user" are reported
// identically so the existence of other users' categories is not leaked.
func (s *Service) validateTransaction(ctx context.Context, userID int64, in TransactionInput) error {
	if in.AmountCents <= 0 {
		return models.ErrInvalidAmount
	}

	n := s.now()
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	if in.Date.Time.After(today) {
		return models.ErrInvalidDate
	}

	if _, err := s.categories.FindVisibleCategoryByID(ctx, in.CategoryID, userID); err != nil {
		return err
	}
	return nil
}

// CreateTransaction validates and records a new transaction.
func (s *Service) CreateTransaction(ctx context.Context, userID int64, in TransactionInput) (*models.Transaction, error) {
	if err := s.validateTransaction(ctx, userID, in); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:        userID,
		AmountCents:   in.AmountCents,
		CategoryID:    in.CategoryID,
		Type:          in.Type,
		PaymentMethod: in.PaymentMethod,
		Date:          in.Date,
		Note:          in.Note,
		CreatedAt:     s.now(),
	}
	if err := s.transactions.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Infof("Transaction created for user %d: %s cents in category %d", userID, models.FormatCents(tx.AmountCents), tx.CategoryID)
	return tx, nil
}

// GetTransaction resolves a transaction owned by the user. A transaction
// belonging to someone else is reported exactly like a missing one.
func (s *Service) GetTransaction(ctx context.Context, transactionID, userID int64) (*models.Transaction, error) {
	tx, err := s.transactions.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, models.ErrTransactionNotFound
	}
	return tx, nil
}

// UpdateTransaction validates the replacement fields and applies them.
// CreatedAt is immutable.
func (s *Service) UpdateTransaction(ctx context.Context, transactionID, userID int64, in TransactionInput) (*models.Transaction, error) {
	tx, err := s.GetTransaction(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.validateTransaction(ctx, userID, in); err != nil {
		return nil, err
	}

	tx.AmountCents = in.AmountCents
	tx.CategoryID = in.CategoryID
	tx.Type = in.Type
	tx.PaymentMethod = in.PaymentMethod
	tx.Date = in.Date
	tx.Note = in.Note
	if err := s.transactions.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *Service) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	tx, err := s.GetTransaction(ctx, transactionID, userID)
	if err != nil {
		return err
	}
	return s.transactions.DeleteTransaction(ctx, tx.ID)
}

// TransactionFilter is the set of optional query filters. A nil field
// means "not supplied"; an empty Type means "not supplied".
type TransactionFilter struct {
	Month      *int
	Year       *int
	CategoryID *int64
	Type       models.CategoryType
}

// QueryTransactions selects the matching transaction set for the filter
// combination. The branch table mirrors long-standing behavior and must
// stay as is, quirks included: when month, year, category and type are
// all supplied, the query goes by category and type alone and the date
// range is not applied. A month without a year (or vice versa) falls
// through to the date-less branches.
func (s *Service) QueryTransactions(ctx context.Context, userID int64, f TransactionFilter) ([]models.Transaction, error) {
	if f.Month != nil && f.Year != nil {
		start, end, err := monthRange(*f.Year, *f.Month)
		if err != nil {
			return nil, err
		}

		switch {
		case f.CategoryID != nil && f.Type != "":
			return s.transactions.FindTransactionsByOwnerAndCategoryAndType(ctx, userID, *f.CategoryID, f.Type)
		case f.CategoryID != nil:
			txs, err := s.transactions.FindTransactionsByOwnerAndDateRange(ctx, userID, start, end)
			if err != nil {
				return nil, err
			}
			out := make([]models.Transaction, 0, len(txs))
			for _, tx := range txs {
				if tx.CategoryID == *f.CategoryID {
					out = append(out, tx)
				}
			}
			return out, nil
		case f.Type != "":
			txs, err := s.transactions.FindTransactionsByOwnerAndDateRange(ctx, userID, start, end)
			if err != nil {
				return nil, err
			}
			out := make([]models.Transaction, 0, len(txs))
			for _, tx := range txs {
				if tx.Type == f.Type {
					out = append(out, tx)
				}
			}
			return out, nil
		default:
			return s.transactions.FindTransactionsByOwnerAndDateRange(ctx, userID, start, end)
		}
	}

	switch {
	case f.CategoryID != nil && f.Type != "":
		return s.transactions.FindTransactionsByOwnerAndCategoryAndType(ctx, userID, *f.CategoryID, f.Type)
	case f.CategoryID != nil:
		return s.transactions.FindTransactionsByOwnerAndCategory(ctx, userID, *f.CategoryID)
	case f.Type != "":
		return s.transactions.FindTransactionsByOwnerAndType(ctx, userID, f.Type)
	default:
		return s.transactions.FindTransactionsByOwner(ctx, userID)
	}
}

// monthRange returns the inclusive [first day, last day] range of a
// calendar month, validating the period first.
func monthRange(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, time.Time{}, models.ErrInvalidPeriod
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}
