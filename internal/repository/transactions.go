package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nvoronin/expense-service/internal/models"
)

const transactionColumns = "id, user_id, amount_cents, category_id, type, payment_method, date, note, created_at"

func (r *Repository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.AmountCents, &tx.CategoryID, &tx.Type, &tx.PaymentMethod, &tx.Date, &tx.Note, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// FindTransactionsByOwner retrieves the user's full transaction history
func (r *Repository) FindTransactionsByOwner(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	return r.queryTransactions(ctx, query, userID)
}

// FindTransactionsByOwnerAndDateRange retrieves the user's transactions
// with dates in the inclusive [start, end] range
func (r *Repository) FindTransactionsByOwnerAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND date BETWEEN $2 AND $3`
	return r.queryTransactions(ctx, query, userID, start, end)
}

// FindTransactionsByOwnerAndCategory retrieves the user's transactions in
// a category
func (r *Repository) FindTransactionsByOwnerAndCategory(ctx context.Context, userID, categoryID int64) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND category_id = $2`
	return r.queryTransactions(ctx, query, userID, categoryID)
}

// FindTransactionsByOwnerAndType retrieves the user's transactions of a type
func (r *Repository) FindTransactionsByOwnerAndType(ctx context.Context, userID int64, txType models.CategoryType) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND type = $2`
	return r.queryTransactions(ctx, query, userID, txType)
}

// FindTransactionsByOwnerAndCategoryAndType retrieves the user's
// transactions in a category with a type
func (r *Repository) FindTransactionsByOwnerAndCategoryAndType(ctx context.Context, userID, categoryID int64, txType models.CategoryType) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 AND category_id = $2 AND type = $3`
	return r.queryTransactions(ctx, query, userID, categoryID, txType)
}

// FindTransactionByID retrieves a transaction by id
func (r *Repository) FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	tx := &models.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&tx.ID, &tx.UserID, &tx.AmountCents, &tx.CategoryID, &tx.Type, &tx.PaymentMethod, &tx.Date, &tx.Note, &tx.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return tx, nil
}

// CreateTransaction creates a new transaction in the database
func (r *Repository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, amount_cents, category_id, type, payment_method, date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, tx.UserID, tx.AmountCents, tx.CategoryID, tx.Type, tx.PaymentMethod, tx.Date, tx.Note, tx.CreatedAt).
		Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// UpdateTransaction replaces the mutable fields of a transaction
func (r *Repository) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET amount_cents = $2, category_id = $3, type = $4, payment_method = $5, date = $6, note = $7
		WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, tx.ID, tx.AmountCents, tx.CategoryID, tx.Type, tx.PaymentMethod, tx.Date, tx.Note); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction permanently removes a transaction
func (r *Repository) DeleteTransaction(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
