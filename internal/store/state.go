package store

import "rental-hub/internal/domain"

// State is the full application state observed by UI consumers
type State struct {
	// UI
	IsLoading     bool         `json:"isLoading"`
	IsSidebarOpen bool         `json:"isSidebarOpen"`
	Theme         domain.Theme `json:"theme"`

	// Session
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`

	// Catalog
	Products         []domain.Product `json:"products"`
	FeaturedProducts []domain.Product `json:"featuredProducts"`
	SearchQuery      string           `json:"searchQuery"`
	SelectedCategory string           `json:"selectedCategory"`

	// Cart
	Cart      []domain.CartItem `json:"cart"`
	CartTotal float64           `json:"cartTotal"`
}

// InitialState returns the state a store starts with
func InitialState() State {
	return State{
		Theme:            domain.ThemeLight,
		Products:         []domain.Product{},
		FeaturedProducts: []domain.Product{},
		SelectedCategory: domain.CategoryAll,
		Cart:             []domain.CartItem{},
	}
}

// Clone returns a deep copy of s. List fields are never nil in the copy,
// so they encode as [] rather than null.
func (s State) Clone() State {
	s.User = s.User.Clone()
	s.Products = domain.CloneProducts(s.Products)
	if s.Products == nil {
		s.Products = []domain.Product{}
	}
	s.FeaturedProducts = domain.CloneProducts(s.FeaturedProducts)
	if s.FeaturedProducts == nil {
		s.FeaturedProducts = []domain.Product{}
	}
	cart := make([]domain.CartItem, len(s.Cart))
	copy(cart, s.Cart)
	s.Cart = cart
	return s
}

// CalculateTotal sums price × quantity × rental days over every cart line
func CalculateTotal(cart []domain.CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.LineTotal()
	}
	return total
}

func (s *State) findCartItem(match func(domain.CartItem) bool) int {
	for i := range s.Cart {
		if match(s.Cart[i]) {
			return i
		}
	}
	return -1
}

func (s *State) removeCartItem(itemID string) {
	kept := make([]domain.CartItem, 0, len(s.Cart))
	for _, item := range s.Cart {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.Cart = kept
}

func (s *State) recalculate() {
	s.CartTotal = CalculateTotal(s.Cart)
}
