package service

import (
	"context"
	"time"

	"github.com/nvoronin/expense-service/internal/models"
)

// UserStore provides persistence for users.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	ListUsersWithBudget(ctx context.Context) ([]models.User, error)
}

// CategoryStore provides persistence for categories. "Visible" means
// owned by the given user or a global default (nil owner). Find methods
// return models.ErrCategoryNotFound when nothing matches.
type CategoryStore interface {
	ListVisibleCategories(ctx context.Context, userID int64) ([]models.Category, error)
	FindVisibleCategoryByID(ctx context.Context, id, userID int64) (*models.Category, error)
	FindCategoryByOwnerAndName(ctx context.Context, userID int64, name string) (*models.Category, error)
	FindDefaultCategoryByName(ctx context.Context, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

// TransactionStore provides persistence for transactions. The date range
// query is inclusive on both ends. Result ordering is whatever the store
// produces; callers must not rely on it.
type TransactionStore interface {
	FindTransactionsByOwner(ctx context.Context, userID int64) ([]models.Transaction, error)
	FindTransactionsByOwnerAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Transaction, error)
	FindTransactionsByOwnerAndCategory(ctx context.Context, userID, categoryID int64) ([]models.Transaction, error)
	FindTransactionsByOwnerAndType(ctx context.Context, userID int64, txType models.CategoryType) ([]models.Transaction, error)
	FindTransactionsByOwnerAndCategoryAndType(ctx context.Context, userID, categoryID int64, txType models.CategoryType) ([]models.Transaction, error)
	FindTransactionByID(ctx context.Context, id int64) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
}
