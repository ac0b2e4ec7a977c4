package service

import (
	"context"

	"github.com/nvoronin/expense-service/internal/models"
)

// SummarizeMonth reduces the user's transactions for one calendar month
// into totals and per-category breakdowns. Sums are exact int64 cents.
// The result is recomputed on every call and never cached.
func (s *Service) SummarizeMonth(ctx context.Context, userID int64, year, month int) (*models.MonthlySummary, error) {
	start, end, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}

	txs, err := s.transactions.FindTransactionsByOwnerAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{
		Year:                   year,
		Month:                  month,
		CategoryExpenseSummary: make(map[int64]int64),
		CategoryIncomeSummary:  make(map[int64]int64),
	}

	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			summary.TotalIncomeCents += tx.AmountCents
			summary.CategoryIncomeSummary[tx.CategoryID] += tx.AmountCents
		case models.TypeExpense:
			summary.TotalExpenseCents += tx.AmountCents
			summary.CategoryExpenseSummary[tx.CategoryID] += tx.AmountCents
		}
	}
	summary.BalanceCents = summary.TotalIncomeCents - summary.TotalExpenseCents

	return summary, nil
}
