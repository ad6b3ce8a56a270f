package domain

// Product represents a rentable item in the catalog
type Product struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}

// Clone returns a copy that shares no slices with p
func (p Product) Clone() Product {
	if p.Images != nil {
		images := make([]string, len(p.Images))
		copy(images, p.Images)
		p.Images = images
	}
	return p
}

// CloneProducts copies a product list element by element.
// A nil list stays nil.
func CloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
