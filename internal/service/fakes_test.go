package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nvoronin/expense-service/internal/config"
	"github.com/nvoronin/expense-service/internal/models"
)

// In-memory stores used across the service tests.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserStore) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return models.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) ListUsersWithBudget(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.MonthlyBudgetCents > 0 {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeCategoryStore struct {
	categories map[int64]*models.Category
	nextID     int64
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[int64]*models.Category)}
}

func (f *fakeCategoryStore) add(userID *int64, name string, categoryType models.CategoryType) *models.Category {
	f.nextID++
	c := &models.Category{ID: f.nextID, UserID: userID, Name: name, Type: categoryType}
	f.categories[c.ID] = c
	return c
}

func (f *fakeCategoryStore) ListVisibleCategories(_ context.Context, userID int64) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		if c.UserID == nil || *c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) FindVisibleCategoryByID(_ context.Context, id, userID int64) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok || (c.UserID != nil && *c.UserID != userID) {
		return nil, models.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryStore) FindCategoryByOwnerAndName(_ context.Context, userID int64, name string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.UserID != nil && *c.UserID == userID && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (f *fakeCategoryStore) FindDefaultCategoryByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.UserID == nil && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (f *fakeCategoryStore) CreateCategory(_ context.Context, category *models.Category) error {
	f.nextID++
	category.ID = f.nextID
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) DeleteCategory(_ context.Context, id int64) error {
	delete(f.categories, id)
	return nil
}

type fakeTransactionStore struct {
	txs    map[int64]*models.Transaction
	nextID int64

	// calls records which finder was used, for resolver dispatch tests.
	calls []string
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{txs: make(map[int64]*models.Transaction)}
}

func (f *fakeTransactionStore) add(tx models.Transaction) *models.Transaction {
	f.nextID++
	tx.ID = f.nextID
	f.txs[tx.ID] = &tx
	return &tx
}

func (f *fakeTransactionStore) matching(pred func(*models.Transaction) bool) []models.Transaction {
	var out []models.Transaction
	for _, tx := range f.txs {
		if pred(tx) {
			out = append(out, *tx)
		}
	}
	return out
}

func (f *fakeTransactionStore) FindTransactionsByOwner(_ context.Context, userID int64) ([]models.Transaction, error) {
	f.calls = append(f.calls, "ByOwner")
	return f.matching(func(tx *models.Transaction) bool { return tx.UserID == userID }), nil
}

func (f *fakeTransactionStore) FindTransactionsByOwnerAndDateRange(_ context.Context, userID int64, start, end time.Time) ([]models.Transaction, error) {
	f.calls = append(f.calls, "ByOwnerAndDateRange")
	return f.matching(func(tx *models.Transaction) bool {
		return tx.UserID == userID && !tx.Date.Time.Before(start) && !tx.Date.Time.After(end)
	}), nil
}

func (f *fakeTransactionStore) FindTransactionsByOwnerAndCategory(_ context.Context, userID, categoryID int64) ([]models.Transaction, error) {
	f.calls = append(f.calls, "ByOwnerAndCategory")
	return f.matching(func(tx *models.Transaction) bool {
		return tx.UserID == userID && tx.CategoryID == categoryID
	}), nil
}

func (f *fakeTransactionStore) FindTransactionsByOwnerAndType(_ context.Context, userID int64, txType models.CategoryType) ([]models.Transaction, error) {
	f.calls = append(f.calls, "ByOwnerAndType")
	return f.matching(func(tx *models.Transaction) bool {
		return tx.UserID == userID && tx.Type == txType
	}), nil
}

func (f *fakeTransactionStore) FindTransactionsByOwnerAndCategoryAndType(_ context.Context, userID, categoryID int64, txType models.CategoryType) ([]models.Transaction, error) {
	f.calls = append(f.calls, "ByOwnerAndCategoryAndType")
	return f.matching(func(tx *models.Transaction) bool {
		return tx.UserID == userID && tx.CategoryID == categoryID && tx.Type == txType
	}), nil
}

func (f *fakeTransactionStore) FindTransactionByID(_ context.Context, id int64) (*models.Transaction, error) {
	tx, ok := f.txs[id]
	if !ok {
		return nil, models.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (f *fakeTransactionStore) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	f.nextID++
	tx.ID = f.nextID
	cp := *tx
	f.txs[tx.ID] = &cp
	return nil
}

func (f *fakeTransactionStore) UpdateTransaction(_ context.Context, tx *models.Transaction) error {
	if _, ok := f.txs[tx.ID]; !ok {
		return models.ErrTransactionNotFound
	}
	cp := *tx
	f.txs[tx.ID] = &cp
	return nil
}

func (f *fakeTransactionStore) DeleteTransaction(_ context.Context, id int64) error {
	delete(f.txs, id)
	return nil
}

// testNow is the fixed clock instant used across the service tests.
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *fakeUserStore, *fakeCategoryStore, *fakeTransactionStore) {
	t.Helper()
	users := newFakeUserStore()
	categories := newFakeCategoryStore()
	transactions := newFakeTransactionStore()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := NewService(users, categories, transactions, logger, &config.Config{JWTSecret: "test-secret"})
	svc.now = func() time.Time { return testNow }
	return svc, users, categories, transactions
}

func idsOf(txs []models.Transaction) map[int64]bool {
	ids := make(map[int64]bool, len(txs))
	for _, tx := range txs {
		ids[tx.ID] = true
	}
	return ids
}

func sameIDs(got []models.Transaction, want ...int64) bool {
	ids := idsOf(got)
	if len(ids) != len(want) {
		return false
	}
	for _, id := range want {
		if !ids[id] {
			return false
		}
	}
	return true
}
