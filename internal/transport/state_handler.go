package transport

import (
	"net/http"

	"rental-hub/internal/domain"
	"rental-hub/internal/middleware"
	"rental-hub/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AppStore is the part of the application store the HTTP layer drives.
// Mutators return the state produced by their own transition.
type AppStore interface {
	Name() string
	Snapshot() store.State
	Subscribe(l store.Listener) (unsubscribe func())

	SetLoading(loading bool) store.State
	ToggleSidebar() store.State
	SetTheme(theme domain.Theme) store.State

	SetUser(user *domain.User) store.State
	Login(user domain.User) store.State
	Logout() store.State

	SetProducts(products []domain.Product) store.State
	SetFeaturedProducts(products []domain.Product) store.State
	SetSearchQuery(query string) store.State
	SetSelectedCategory(category string) store.State

	AddToCart(item domain.CartItemInput) store.State
	RemoveFromCart(itemID string) store.State
	UpdateCartItemQuantity(itemID string, quantity int) store.State
	ClearCart() store.State
	CalculateCartTotal() store.State
}

// SetLoadingRequest represents the loading flag payload
type SetLoadingRequest struct {
	Loading *bool `json:"loading" validate:"required"`
}

// SetThemeRequest represents the theme payload
type SetThemeRequest struct {
	Theme domain.Theme `json:"theme" validate:"required,oneof=light dark"`
}

// SetSearchQueryRequest represents the search payload. An empty query is valid.
type SetSearchQueryRequest struct {
	Query string `json:"query"`
}

// SetCategoryRequest represents the category filter payload
type SetCategoryRequest struct {
	Category string `json:"category"`
}

// UpdateQuantityRequest represents the cart quantity payload. Zero or
// negative quantities remove the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// StateHandler exposes the application store over HTTP
type StateHandler struct {
	store  AppStore
	logger *zap.Logger
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(s AppStore, logger *zap.Logger) *StateHandler {
	return &StateHandler{
		store:  s,
		logger: logger,
	}
}

// RegisterRoutes registers all state routes
func (h *StateHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Get("/state/events", h.StreamEvents)

		r.Route("/ui", func(r chi.Router) {
			r.Put("/loading", h.SetLoading)
			r.Post("/sidebar/toggle", h.ToggleSidebar)
			r.Put("/theme", h.SetTheme)
		})

		r.Route("/session", func(r chi.Router) {
			r.Put("/user", h.SetUser)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Put("/products", h.SetProducts)
			r.Put("/featured", h.SetFeaturedProducts)
			r.Put("/search", h.SetSearchQuery)
			r.Put("/category", h.SetSelectedCategory)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Delete("/", h.ClearCart)
			r.Post("/total", h.CalculateCartTotal)
			r.Post("/items", h.AddToCart)
			r.Patch("/items/{itemID}", h.UpdateCartItemQuantity)
			r.Delete("/items/{itemID}", h.RemoveFromCart)
		})
	})
}

// GetState returns the current state snapshot
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.Snapshot())
}

// respondWithState writes the state produced by the request's own transition
func (h *StateHandler) respondWithState(w http.ResponseWriter, st store.State) {
	middleware.RespondWithJSON(w, http.StatusOK, st)
}

func (h *StateHandler) rejectRequest(w http.ResponseWriter, action string, err error) {
	h.logger.Debug("Request rejected",
		zap.String("action", action),
		zap.Error(err),
	)
	middleware.RespondWithRequestError(w, err)
}
