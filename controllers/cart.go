package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-storefront/store"
)

// CartController handles cart-related requests
type CartController struct {
	Cart    *store.Cart
	Catalog *store.Catalog
}

// NewCartController creates a new CartController
func NewCartController(cart *store.Cart, catalog *store.Catalog) *CartController {
	return &CartController{
		Cart:    cart,
		Catalog: catalog,
	}
}

// AddToCart adds a product to the cart, defaulting to one unit
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product := cc.Catalog.ProductByID(strconv.Itoa(input.ProductID))
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	cc.Cart.Add(*product, input.Quantity)

	json.NewEncoder(w).Encode("Item added to cart")
}

// GetCart retrieves the cart lines and their derived totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"items":      cc.Cart.Items(),
		"totalItems": cc.Cart.TotalItems(),
		"totalPrice": cc.Cart.TotalPrice(),
	})
}

// UpdateQuantity overwrites the quantity of a cart line. A quantity of
// zero or less removes the line.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	productID, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	err = json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	cc.Cart.SetQuantity(productID, input.Quantity)

	json.NewEncoder(w).Encode("Cart updated")
}

// RemoveFromCart deletes a cart line; removing an absent line succeeds
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	productID, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	cc.Cart.Remove(productID)

	json.NewEncoder(w).Encode("Item removed from cart")
}

// ClearCart empties the cart unconditionally
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cc.Cart.Clear()
	json.NewEncoder(w).Encode("Cart cleared")
}
