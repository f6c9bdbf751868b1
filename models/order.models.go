package models

import "time"

// Order represents a placed order built from the cart at checkout
type Order struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"` // e.g., "Pending", "Shipped"
	CreatedAt time.Time  `json:"created_at"`
}
