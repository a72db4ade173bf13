package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nesteggapp/nestegg/internal/adapter/http/dto"
	"github.com/nesteggapp/nestegg/internal/domain"
)

// CategoryService defines the behavior needed by CategoryHandler.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ArchiveCategory(ctx context.Context, id string) error
	RestoreCategory(ctx context.Context, id string) error
}

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categoryUC CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryUC CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// Create creates a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create category", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

// List lists all categories, archived included.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUC.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}

// Archive blocks the category from new record entry.
func (h *CategoryHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.categoryUC.ArchiveCategory(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to archive category", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restore reactivates an archived category.
func (h *CategoryHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.categoryUC.RestoreCategory(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to restore category", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
