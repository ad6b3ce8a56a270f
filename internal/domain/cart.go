package domain

// CartItem is one line of the shopping cart. ID is generated when the line
// is created and is distinct from ProductID.
type CartItem struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	RentalDays int     `json:"rentalDays"`
}

// CartItemInput is a cart line as supplied by the caller, before an ID is assigned
type CartItemInput struct {
	ProductID  string  `json:"productId" validate:"required"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	RentalDays int     `json:"rentalDays"`
}

// LineTotal is price per day times quantity times rental days
func (c CartItem) LineTotal() float64 {
	return c.Price * float64(c.Quantity) * float64(c.RentalDays)
}

// NewCartItem builds a cart line from input with the given id
func NewCartItem(id string, in CartItemInput) CartItem {
	return CartItem{
		ID:         id,
		ProductID:  in.ProductID,
		Name:       in.Name,
		Price:      in.Price,
		Quantity:   in.Quantity,
		Image:      in.Image,
		RentalDays: in.RentalDays,
	}
}
