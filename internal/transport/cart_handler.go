package transport

import (
	"net/http"

	"rental-hub/internal/domain"
	"rental-hub/internal/middleware"
	"rental-hub/internal/store"

	"github.com/go-chi/chi/v5"
)

// AddToCart merges the item into the cart
func (h *StateHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItemInput
	if err := middleware.DecodeAndValidate(r, &item); err != nil {
		h.rejectRequest(w, store.ActionAddToCart, err)
		return
	}

	st := h.store.AddToCart(item)
	h.respondWithState(w, st)
}

// RemoveFromCart drops a cart line. Unknown ids still succeed.
func (h *StateHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	st := h.store.RemoveFromCart(chi.URLParam(r, "itemID"))
	h.respondWithState(w, st)
}

// UpdateCartItemQuantity sets the quantity of a cart line
func (h *StateHandler) UpdateCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.rejectRequest(w, store.ActionUpdateCartItemQuantity, err)
		return
	}

	st := h.store.UpdateCartItemQuantity(chi.URLParam(r, "itemID"), *req.Quantity)
	h.respondWithState(w, st)
}

// ClearCart empties the cart
func (h *StateHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	st := h.store.ClearCart()
	h.respondWithState(w, st)
}

// CalculateCartTotal recomputes the cart total
func (h *StateHandler) CalculateCartTotal(w http.ResponseWriter, r *http.Request) {
	st := h.store.CalculateCartTotal()
	h.respondWithState(w, st)
}
