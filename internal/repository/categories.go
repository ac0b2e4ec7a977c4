package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nvoronin/expense-service/internal/models"
)

func scanCategory(row *sql.Row) (*models.Category, error) {
	category := &models.Category{}
	var userID sql.NullInt64
	err := row.Scan(&category.ID, &userID, &category.Name, &category.Type, &category.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}
	if userID.Valid {
		category.UserID = &userID.Int64
	}
	return category, nil
}

// ListVisibleCategories retrieves the user's own categories plus the defaults
func (r *Repository) ListVisibleCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE user_id = $1 OR user_id IS NULL`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		var owner sql.NullInt64
		if err := rows.Scan(&category.ID, &owner, &category.Name, &category.Type, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if owner.Valid {
			category.UserID = &owner.Int64
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// FindVisibleCategoryByID retrieves a category by id if it is owned by the
// user or is a default
func (r *Repository) FindVisibleCategoryByID(ctx context.Context, id, userID int64) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	return scanCategory(r.db.QueryRowContext(ctx, query, id, userID))
}

// FindCategoryByOwnerAndName retrieves a category owned by the user with
// the given name
func (r *Repository) FindCategoryByOwnerAndName(ctx context.Context, userID int64, name string) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE user_id = $1 AND name = $2`
	return scanCategory(r.db.QueryRowContext(ctx, query, userID, name))
}

// FindDefaultCategoryByName retrieves a default category with the given name
func (r *Repository) FindDefaultCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE user_id IS NULL AND name = $1`
	return scanCategory(r.db.QueryRowContext(ctx, query, name))
}

// CreateCategory creates a new category in the database
func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var userID sql.NullInt64
	if category.UserID != nil {
		userID = sql.NullInt64{Int64: *category.UserID, Valid: true}
	}
	err := r.db.QueryRowContext(ctx, query, userID, category.Name, category.Type, category.CreatedAt).
		Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// DeleteCategory permanently removes a category
func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
