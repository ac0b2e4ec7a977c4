package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nvoronin/expense-service/internal/models"
)

type categoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ListCategories returns the categories visible to the user
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	categories, err := h.svc.ListCategories(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	h.writeJSON(w, http.StatusOK, categories)
}

// CreateCategory creates a user-owned category
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req categoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	// Type is optional on categories; an empty type is stored as is.
	var categoryType models.CategoryType
	if req.Type != "" {
		parsed, err := models.ParseCategoryType(req.Type)
		if err != nil {
			h.writeError(w, err)
			return
		}
		categoryType = parsed
	}

	category, err := h.svc.CreateCategory(r.Context(), userID, req.Name, categoryType)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, category)
}

// DeleteCategory deletes a user-owned category
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	categoryID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid category id"})
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), categoryID, userID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
