package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/nvoronin/expense-service/internal/models"
)

// Accounts is the slice of the service the watcher needs.
type Accounts interface {
	UsersWithBudget(ctx context.Context) ([]models.User, error)
	SummarizeMonth(ctx context.Context, userID int64, year, month int) (*models.MonthlySummary, error)
}

// AlertSender sends budget alert emails.
type AlertSender interface {
	SendBudgetAlert(to, name, currency string, year int, month time.Month, spentCents, budgetCents int64) error
}

// BudgetWatcher periodically compares each user's month-to-date expense
// total against their monthly budget and emails an alert when the budget
// is exceeded. At most one alert is sent per user per month.
type BudgetWatcher struct {
	accounts Accounts
	sender   AlertSender
	log      *logrus.Logger
	cron     *cron.Cron
	now      func() time.Time

	mu      sync.Mutex
	alerted map[string]struct{}
}

// NewBudgetWatcher creates a budget watcher
func NewBudgetWatcher(accounts Accounts, sender AlertSender, log *logrus.Logger) *BudgetWatcher {
	return &BudgetWatcher{
		accounts: accounts,
		sender:   sender,
		log:      log,
		now:      time.Now,
		alerted:  make(map[string]struct{}),
	}
}

// Start schedules the watcher with the given cron spec
func (w *BudgetWatcher) Start(spec string) error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc(spec, func() {
		if err := w.Run(context.Background()); err != nil {
			w.log.Errorf("Budget check failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule budget check: %w", err)
	}
	w.cron.Start()
	w.log.Infof("Budget watcher scheduled: %s", spec)
	return nil
}

// Stop halts the scheduler
func (w *BudgetWatcher) Stop() {
	if w.cron != nil {
		w.cron.Stop()
	}
}

// Run performs one budget check over all users with a budget.
func (w *BudgetWatcher) Run(ctx context.Context) error {
	users, err := w.accounts.UsersWithBudget(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	n := w.now()
	year, month := n.Year(), n.Month()
	for _, user := range users {
		summary, err := w.accounts.SummarizeMonth(ctx, user.ID, year, int(month))
		if err != nil {
			w.log.Errorf("Failed to summarize month for user %d: %v", user.ID, err)
			continue
		}
		if summary.TotalExpenseCents <= user.MonthlyBudgetCents {
			continue
		}

		key := fmt.Sprintf("%d-%d-%d", user.ID, year, month)
		w.mu.Lock()
		_, already := w.alerted[key]
		if !already {
			w.alerted[key] = struct{}{}
		}
		w.mu.Unlock()
		if already {
			continue
		}

		if err := w.sender.SendBudgetAlert(user.Email, user.Name, user.Currency, year, month, summary.TotalExpenseCents, user.MonthlyBudgetCents); err != nil {
			w.log.Errorf("Failed to alert user %d: %v", user.ID, err)
		}
	}
	return nil
}
