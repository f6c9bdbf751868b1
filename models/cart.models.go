package models

// CartItem represents one line of the cart. Name, Price and Image are
// snapshots of the product taken when the item was first added; later
// catalog changes do not propagate into existing lines.
type CartItem struct {
	ID       int     `json:"id"` // same as the product id
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}
