package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/nvoronin/expense-service/internal/models"
)

// MonthlyStatement renders a user's monthly summary and transaction list
// as an XML document. Category names are resolved from the visible
// category list; a transaction whose category is unknown keeps only the
// numeric id.
func MonthlyStatement(user *models.User, summary *models.MonthlySummary, txs []models.Transaction, categories []models.Category) ([]byte, error) {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("statement")
	root.CreateAttr("year", strconv.Itoa(summary.Year))
	root.CreateAttr("month", strconv.Itoa(summary.Month))
	root.CreateAttr("currency", user.Currency)

	sum := root.CreateElement("summary")
	sum.CreateElement("total_income").SetText(models.FormatCents(summary.TotalIncomeCents))
	sum.CreateElement("total_expense").SetText(models.FormatCents(summary.TotalExpenseCents))
	sum.CreateElement("balance").SetText(models.FormatCents(summary.BalanceCents))

	byCategory := sum.CreateElement("by_category")
	appendCategoryTotals(byCategory, "expense", summary.CategoryExpenseSummary, names)
	appendCategoryTotals(byCategory, "income", summary.CategoryIncomeSummary, names)

	list := root.CreateElement("transactions")
	for _, tx := range txs {
		e := list.CreateElement("transaction")
		e.CreateAttr("id", strconv.FormatInt(tx.ID, 10))
		e.CreateElement("date").SetText(tx.Date.Format("2006-01-02"))
		e.CreateElement("amount").SetText(models.FormatCents(tx.AmountCents))
		e.CreateElement("type").SetText(string(tx.Type))
		e.CreateElement("payment_method").SetText(string(tx.PaymentMethod))
		category := e.CreateElement("category")
		category.CreateAttr("id", strconv.FormatInt(tx.CategoryID, 10))
		if name, ok := names[tx.CategoryID]; ok {
			category.SetText(name)
		}
		if tx.Note != "" {
			e.CreateElement("note").SetText(tx.Note)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize statement: %w", err)
	}
	return out, nil
}

func appendCategoryTotals(parent *etree.Element, kind string, totals map[int64]int64, names map[int64]string) {
	for id, cents := range totals {
		e := parent.CreateElement(kind)
		e.CreateAttr("category_id", strconv.FormatInt(id, 10))
		if name, ok := names[id]; ok {
			e.CreateAttr("name", name)
		}
		e.SetText(models.FormatCents(cents))
	}
}
