package transport

import (
	"net/http"

	"rental-hub/internal/middleware"
	"rental-hub/internal/store"
)

// SetLoading handles the global loading flag
func (h *StateHandler) SetLoading(w http.ResponseWriter, r *http.Request) {
	var req SetLoadingRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.rejectRequest(w, store.ActionSetLoading, err)
		return
	}

	st := h.store.SetLoading(*req.Loading)
	h.respondWithState(w, st)
}

// ToggleSidebar flips the sidebar open flag
func (h *StateHandler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	st := h.store.ToggleSidebar()
	h.respondWithState(w, st)
}

// SetTheme handles theme selection
func (h *StateHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.rejectRequest(w, store.ActionSetTheme, err)
		return
	}

	st := h.store.SetTheme(req.Theme)
	h.respondWithState(w, st)
}
