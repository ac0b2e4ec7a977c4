package handler

import (
	"net/http"
	"strconv"

	"github.com/nvoronin/expense-service/internal/export"
	"github.com/nvoronin/expense-service/internal/models"
	"github.com/nvoronin/expense-service/internal/service"
)

func (h *Handler) parsePeriod(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		h.writeError(w, models.ErrInvalidPeriod)
		return 0, 0, false
	}
	month, err = strconv.Atoi(q.Get("month"))
	if err != nil {
		h.writeError(w, models.ErrInvalidPeriod)
		return 0, 0, false
	}
	return year, month, true
}

// MonthlySummary returns the aggregate for one calendar month
func (h *Handler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	year, month, ok := h.parsePeriod(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.SummarizeMonth(r.Context(), userID, year, month)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// ExportMonthly returns an XML statement for one calendar month
func (h *Handler) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	year, month, ok := h.parsePeriod(w, r)
	if !ok {
		return
	}

	user, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	summary, err := h.svc.SummarizeMonth(r.Context(), userID, year, month)
	if err != nil {
		h.writeError(w, err)
		return
	}
	txs, err := h.svc.QueryTransactions(r.Context(), userID, service.TransactionFilter{Year: &year, Month: &month})
	if err != nil {
		h.writeError(w, err)
		return
	}
	categories, err := h.svc.ListCategories(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	statement, err := export.MonthlyStatement(user, summary, txs, categories)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(statement); err != nil {
		h.log.Errorf("Failed to write statement: %v", err)
	}
}
