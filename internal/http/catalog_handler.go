package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Menu serves the storefront menu, filtered by ?category= and ?q=.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Menu(r.Context(), r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.GetFood(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Admin surface below: unlike Menu these skip the cache and always read
// MongoDB, so the panel sees its own writes immediately.

func (h *CatalogHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListFoods(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var in service.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	item, err := h.catalog.CreateFood(r.Context(), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	var in service.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	item, err := h.catalog.UpdateFood(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteFood(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	category, err := h.catalog.UpdateCategory(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
