package models

// MonthlySummary is the aggregate for one user and calendar month.
// It is derived on demand and never persisted. The category maps contain
// one entry per category that actually occurs in the month; categories
// without matching transactions are absent, not zero.
type MonthlySummary struct {
	Year                   int             `json:"year"`
	Month                  int             `json:"month"`
	TotalIncomeCents       int64           `json:"total_income_cents"`
	TotalExpenseCents      int64           `json:"total_expense_cents"`
	BalanceCents           int64           `json:"balance_cents"`
	CategoryExpenseSummary map[int64]int64 `json:"category_expense_summary"`
	CategoryIncomeSummary  map[int64]int64 `json:"category_income_summary"`
}
