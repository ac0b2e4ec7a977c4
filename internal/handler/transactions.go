package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nvoronin/expense-service/internal/models"
	"github.com/nvoronin/expense-service/internal/service"
)

type transactionRequest struct {
	AmountCents   int64  `json:"amount_cents"`
	CategoryID    int64  `json:"category_id"`
	Type          string `json:"type"`
	PaymentMethod string `json:"payment_method"`
	Date          string `json:"date"`
	Note          string `json:"note"`
}

func (h *Handler) parseTransactionInput(w http.ResponseWriter, req transactionRequest) (service.TransactionInput, bool) {
	txType, err := models.ParseCategoryType(req.Type)
	if err != nil {
		h.writeError(w, err)
		return service.TransactionInput{}, false
	}
	method, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		h.writeError(w, err)
		return service.TransactionInput{}, false
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date, expected YYYY-MM-DD"})
		return service.TransactionInput{}, false
	}

	return service.TransactionInput{
		AmountCents:   req.AmountCents,
		CategoryID:    req.CategoryID,
		Type:          txType,
		PaymentMethod: method,
		Date:          date,
		Note:          req.Note,
	}, true
}

// CreateTransaction records a new transaction
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req transactionRequest
	if !h.decode(w, r, &req) {
		return
	}
	in, ok := h.parseTransactionInput(w, req)
	if !ok {
		return
	}

	tx, err := h.svc.CreateTransaction(r.Context(), userID, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, tx)
}

// GetTransaction returns a single transaction owned by the user
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	transactionID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transaction id"})
		return
	}

	tx, err := h.svc.GetTransaction(r.Context(), transactionID, userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tx)
}

// UpdateTransaction replaces all caller-supplied fields of a transaction
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	transactionID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transaction id"})
		return
	}
	var req transactionRequest
	if !h.decode(w, r, &req) {
		return
	}
	in, ok := h.parseTransactionInput(w, req)
	if !ok {
		return
	}

	tx, err := h.svc.UpdateTransaction(r.Context(), transactionID, userID, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tx)
}

// DeleteTransaction removes a transaction
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	transactionID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid transaction id"})
		return
	}

	if err := h.svc.DeleteTransaction(r.Context(), transactionID, userID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// QueryTransactions lists transactions matching the optional month, year,
// categoryId and type query parameters
func (h *Handler) QueryTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	txs, err := h.svc.QueryTransactions(r.Context(), userID, filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	h.writeJSON(w, http.StatusOK, txs)
}

func (h *Handler) parseFilter(w http.ResponseWriter, r *http.Request) (service.TransactionFilter, bool) {
	var filter service.TransactionFilter
	q := r.URL.Query()

	if v := q.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid month"})
			return filter, false
		}
		filter.Month = &month
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid year"})
			return filter, false
		}
		filter.Year = &year
	}
	if v := q.Get("categoryId"); v != "" {
		categoryID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid categoryId"})
			return filter, false
		}
		filter.CategoryID = &categoryID
	}
	if v := q.Get("type"); v != "" {
		txType, err := models.ParseCategoryType(v)
		if err != nil {
			h.writeError(w, err)
			return filter, false
		}
		filter.Type = txType
	}
	return filter, true
}
