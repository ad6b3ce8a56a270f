package transport

import (
	"net/http"

	"rental-hub/internal/domain"
	"rental-hub/internal/middleware"
	"rental-hub/internal/store"

	"go.uber.org/zap"
)

// SetUser replaces the session user. A JSON null body clears it.
func (h *StateHandler) SetUser(w http.ResponseWriter, r *http.Request) {
	var user *domain.User
	if err := middleware.DecodeJSON(r, &user); err != nil {
		h.rejectRequest(w, store.ActionSetUser, err)
		return
	}

	if user != nil {
		if err := middleware.ValidateRequest(user); err != nil {
			h.rejectRequest(w, store.ActionSetUser, err)
			return
		}
	}

	st := h.store.SetUser(user)
	h.respondWithState(w, st)
}

// Login stores the user produced by an external authentication step
func (h *StateHandler) Login(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := middleware.DecodeAndValidate(r, &user); err != nil {
		h.rejectRequest(w, store.ActionLogin, err)
		return
	}

	st := h.store.Login(user)

	h.logger.Info("User logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	h.respondWithState(w, st)
}

// Logout clears the user and the cart
func (h *StateHandler) Logout(w http.ResponseWriter, r *http.Request) {
	st := h.store.Logout()

	h.logger.Info("User logged out")
	h.respondWithState(w, st)
}
