package transport

import (
	"net/http"

	"rental-hub/internal/domain"
	"rental-hub/internal/middleware"
	"rental-hub/internal/store"

	"go.uber.org/zap"
)

// SetProducts replaces the whole catalog
func (h *StateHandler) SetProducts(w http.ResponseWriter, r *http.Request) {
	products, ok := h.decodeProducts(w, r, store.ActionSetProducts)
	if !ok {
		return
	}

	st := h.store.SetProducts(products)

	h.logger.Debug("Catalog replaced", zap.Int("products", len(products)))
	h.respondWithState(w, st)
}

// SetFeaturedProducts replaces the featured list
func (h *StateHandler) SetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, ok := h.decodeProducts(w, r, store.ActionSetFeaturedProducts)
	if !ok {
		return
	}

	st := h.store.SetFeaturedProducts(products)
	h.respondWithState(w, st)
}

// SetSearchQuery stores the catalog search text
func (h *StateHandler) SetSearchQuery(w http.ResponseWriter, r *http.Request) {
	var req SetSearchQueryRequest
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.rejectRequest(w, store.ActionSetSearchQuery, err)
		return
	}

	st := h.store.SetSearchQuery(req.Query)
	h.respondWithState(w, st)
}

// SetSelectedCategory stores the catalog category filter
func (h *StateHandler) SetSelectedCategory(w http.ResponseWriter, r *http.Request) {
	var req SetCategoryRequest
	if err := middleware.DecodeJSON(r, &req); err != nil {
		h.rejectRequest(w, store.ActionSetSelectedCategory, err)
		return
	}

	st := h.store.SetSelectedCategory(req.Category)
	h.respondWithState(w, st)
}

func (h *StateHandler) decodeProducts(w http.ResponseWriter, r *http.Request, action string) ([]domain.Product, bool) {
	var products []domain.Product
	if err := middleware.DecodeJSON(r, &products); err != nil {
		h.rejectRequest(w, action, err)
		return nil, false
	}
	if products == nil {
		products = []domain.Product{}
	}

	if err := middleware.ValidateEach(products); err != nil {
		h.rejectRequest(w, action, err)
		return nil, false
	}
	return products, true
}
