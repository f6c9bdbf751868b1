// controllers/order.go
package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"go-storefront/models"
	"go-storefront/store"
)

// OrderController handles checkout and order history
type OrderController struct {
	Auth *store.Auth
	Cart *store.Cart
}

// NewOrderController creates a new OrderController
func NewOrderController(auth *store.Auth, cart *store.Cart) *OrderController {
	return &OrderController{
		Auth: auth,
		Cart: cart,
	}
}

// CreateOrder builds an order from the current cart, attaches it to the
// logged-in user's history and clears the cart.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user := oc.Auth.CurrentUser()
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items := oc.Cart.Items()
	if len(items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	order := models.Order{
		ID:        uuid.NewString(),
		Items:     items,
		Total:     oc.Cart.TotalPrice(),
		Status:    "Pending",
		CreatedAt: time.Now().UTC(),
	}

	oc.Auth.AddOrder(order)
	oc.Cart.Clear()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GetOrders retrieves the logged-in user's order history
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	user := oc.Auth.CurrentUser()
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.Orders)
}
