package service

import (
	"context"
	"errors"

	"github.com/nvoronin/expense-service/internal/models"
)

// ListCategories returns the categories visible to the user: their own
// plus the global defaults.
func (s *Service) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return s.categories.ListVisibleCategories(ctx, userID)
}

// GetCategory resolves a category by id if it is visible to the user.
// A category that exists but belongs to someone else is reported exactly
// like a missing one.
func (s *Service) GetCategory(ctx context.Context, categoryID, userID int64) (*models.Category, error) {
	return s.categories.FindVisibleCategoryByID(ctx, categoryID, userID)
}

// CreateCategory creates a user-owned category. The owner is always the
// calling user; default categories are seeded by migrations, never
// through this path.
//
// The duplicate check is asymmetric: a name collision with the user's
// own categories always fails, a collision with a default category only
// fails when a type was supplied.
func (s *Service) CreateCategory(ctx context.Context, userID int64, name string, categoryType models.CategoryType) (*models.Category, error) {
	own, err := s.categories.FindCategoryByOwnerAndName(ctx, userID, name)
	if err != nil && !errors.Is(err, models.ErrCategoryNotFound) {
		return nil, err
	}
	if own != nil {
		return nil, models.ErrDuplicateCategory
	}

	if categoryType != "" {
		def, err := s.categories.FindDefaultCategoryByName(ctx, name)
		if err != nil && !errors.Is(err, models.ErrCategoryNotFound) {
			return nil, err
		}
		if def != nil {
			return nil, models.ErrDuplicateCategory
		}
	}

	category := &models.Category{
		UserID:    &userID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: s.now(),
	}
	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.log.Infof("Category created for user %d: %s", userID, category.Name)
	return category, nil
}

// DeleteCategory removes a user-owned category. Default categories are
// protected, and a category still referenced by the user's transactions
// cannot be deleted.
func (s *Service) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	category, err := s.categories.FindVisibleCategoryByID(ctx, categoryID, userID)
	if err != nil {
		return err
	}
	if category.IsDefault() {
		return models.ErrDefaultCategoryProtected
	}

	refs, err := s.transactions.FindTransactionsByOwnerAndCategory(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		return models.ErrCategoryInUse
	}

	if err := s.categories.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	s.log.Infof("Category %d deleted by user %d", categoryID, userID)
	return nil
}
