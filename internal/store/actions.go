package store

import (
	"fmt"

	"rental-hub/internal/domain"
)

// Action names reported to subscribers and the action log
const (
	ActionSetLoading             = "setLoading"
	ActionToggleSidebar          = "toggleSidebar"
	ActionSetTheme               = "setTheme"
	ActionSetUser                = "setUser"
	ActionLogin                  = "login"
	ActionLogout                 = "logout"
	ActionSetProducts            = "setProducts"
	ActionSetFeaturedProducts    = "setFeaturedProducts"
	ActionSetSearchQuery         = "setSearchQuery"
	ActionSetSelectedCategory    = "setSelectedCategory"
	ActionAddToCart              = "addToCart"
	ActionRemoveFromCart         = "removeFromCart"
	ActionUpdateCartItemQuantity = "updateCartItemQuantity"
	ActionClearCart              = "clearCart"
	ActionCalculateCartTotal     = "calculateCartTotal"
)

func (s *Store) SetLoading(loading bool) State {
	return s.transition(ActionSetLoading, func(st *State) {
		st.IsLoading = loading
	})
}

func (s *Store) ToggleSidebar() State {
	return s.transition(ActionToggleSidebar, func(st *State) {
		st.IsSidebarOpen = !st.IsSidebarOpen
	})
}

func (s *Store) SetTheme(theme domain.Theme) State {
	return s.transition(ActionSetTheme, func(st *State) {
		st.Theme = theme
	})
}

// SetUser replaces the current user; a nil user signs the session out
// without touching the cart.
func (s *Store) SetUser(user *domain.User) State {
	return s.transition(ActionSetUser, func(st *State) {
		st.User = user.Clone()
		st.IsAuthenticated = user != nil
	})
}

func (s *Store) Login(user domain.User) State {
	return s.transition(ActionLogin, func(st *State) {
		st.User = user.Clone()
		st.IsAuthenticated = true
	})
}

// Logout clears the user and empties the cart. A signed-out session never
// keeps the previous user's cart.
func (s *Store) Logout() State {
	return s.transition(ActionLogout, func(st *State) {
		st.User = nil
		st.IsAuthenticated = false
		st.Cart = []domain.CartItem{}
		st.CartTotal = 0
	})
}

func (s *Store) SetProducts(products []domain.Product) State {
	return s.transition(ActionSetProducts, func(st *State) {
		st.Products = domain.CloneProducts(products)
	})
}

// SetFeaturedProducts replaces the featured list. It is not checked
// against the catalog.
func (s *Store) SetFeaturedProducts(products []domain.Product) State {
	return s.transition(ActionSetFeaturedProducts, func(st *State) {
		st.FeaturedProducts = domain.CloneProducts(products)
	})
}

func (s *Store) SetSearchQuery(query string) State {
	return s.transition(ActionSetSearchQuery, func(st *State) {
		st.SearchQuery = query
	})
}

func (s *Store) SetSelectedCategory(category string) State {
	return s.transition(ActionSetSelectedCategory, func(st *State) {
		st.SelectedCategory = category
	})
}

// AddToCart merges item into the line with the same product, adding only
// its quantity, or appends a new line with a fresh id.
func (s *Store) AddToCart(item domain.CartItemInput) State {
	return s.transition(ActionAddToCart, func(st *State) {
		i := st.findCartItem(func(c domain.CartItem) bool {
			return c.ProductID == item.ProductID
		})
		if i >= 0 {
			st.Cart[i].Quantity += item.Quantity
		} else {
			st.Cart = append(st.Cart, domain.NewCartItem(s.uniqueID(st), item))
		}
		st.recalculate()
	})
}

// RemoveFromCart drops the line with itemID. Unknown ids are ignored.
func (s *Store) RemoveFromCart(itemID string) State {
	return s.transition(ActionRemoveFromCart, func(st *State) {
		st.removeCartItem(itemID)
		st.recalculate()
	})
}

// UpdateCartItemQuantity sets the quantity of the line with itemID. A
// quantity of zero or less removes the line.
func (s *Store) UpdateCartItemQuantity(itemID string, quantity int) State {
	return s.transition(ActionUpdateCartItemQuantity, func(st *State) {
		i := st.findCartItem(func(c domain.CartItem) bool {
			return c.ID == itemID
		})
		if i >= 0 {
			if quantity <= 0 {
				st.removeCartItem(itemID)
			} else {
				st.Cart[i].Quantity = quantity
			}
		}
		st.recalculate()
	})
}

func (s *Store) ClearCart() State {
	return s.transition(ActionClearCart, func(st *State) {
		st.Cart = []domain.CartItem{}
		st.CartTotal = 0
	})
}

func (s *Store) CalculateCartTotal() State {
	return s.transition(ActionCalculateCartTotal, func(st *State) {
		st.recalculate()
	})
}

// maxIDAttempts bounds how often the generator is asked for a fresh id
const maxIDAttempts = 3

// uniqueID returns an id not used in the cart. After maxIDAttempts
// collisions the last generated id gets a numeric suffix.
func (s *Store) uniqueID(st *State) string {
	used := func(id string) bool {
		return st.findCartItem(func(c domain.CartItem) bool { return c.ID == id }) >= 0
	}

	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = s.newID(s.now())
		if !used(id) {
			return id
		}
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if !used(candidate) {
			return candidate
		}
	}
}
