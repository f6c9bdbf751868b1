package models

// Product represents a catalog entry. Products are seeded at startup and
// never modified afterwards; ID is unique across the catalog.
type Product struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       float64  `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	InStock     bool     `json:"inStock" yaml:"inStock"`
	Images      []string `json:"images" yaml:"images"`
	Features    []string `json:"features" yaml:"features"`
}

// Review represents a customer review for a product. ProductID is not
// checked against the catalog and Rating carries whatever value the
// reviewer supplied.
type Review struct {
	ID        int               `json:"id"`
	ProductID int               `json:"productId"`
	Rating    float64           `json:"rating"`
	Author    string            `json:"author,omitempty"`
	Comment   string            `json:"comment,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
	Date      string            `json:"date"` // ISO 8601, assigned at insertion
}
