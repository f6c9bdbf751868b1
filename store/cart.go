package store

import (
	"errors"
	"log"
	"sync"

	"go-storefront/models"
	"go-storefront/storage"
)

const cartKey = "cart"

// CartSnapshot is the cart's full serializable state.
type CartSnapshot struct {
	Items []models.CartItem `json:"items"`
}

// Cart owns the line items. At most one line exists per product id; adding
// an id that is already present increments its quantity. When a backend is
// set, the full state is written after every mutation.
type Cart struct {
	mu      sync.RWMutex
	items   []models.CartItem
	backend storage.Backend
}

// NewCart returns a cart restored from backend when a snapshot exists
// there. A nil backend keeps the cart purely in memory.
func NewCart(backend storage.Backend) *Cart {
	c := &Cart{backend: backend}
	if backend != nil {
		var snap CartSnapshot
		err := backend.Load(cartKey, &snap)
		switch {
		case err == nil:
			c.items = snap.Items
		case errors.Is(err, storage.ErrNotFound):
			// fresh install, start empty
		default:
			log.Printf("cart: restoring snapshot: %v", err)
		}
	}
	return c
}

// Add puts quantity units of product in the cart. An existing line for the
// same id is incremented; otherwise a new line snapshots the product's
// current name, price and primary image.
func (c *Cart) Add(product models.Product, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity += quantity
			c.persistLocked()
			return
		}
	}

	var image string
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	c.items = append(c.items, models.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    image,
		Quantity: quantity,
	})
	c.persistLocked()
}

// Remove deletes the line for productID; absent ids are ignored.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
	c.persistLocked()
}

// SetQuantity overwrites the quantity of an existing line. A quantity of
// zero or less removes the line; an absent id is a no-op and never creates
// one.
func (c *Cart) SetQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			if quantity <= 0 {
				c.removeLocked(productID)
			} else {
				c.items[i].Quantity = quantity
			}
			c.persistLocked()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persistLocked()
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.CartItem(nil), c.items...)
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Snapshot returns the cart's full state for persistence.
func (c *Cart) Snapshot() CartSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CartSnapshot{Items: append([]models.CartItem(nil), c.items...)}
}

// Restore replaces the cart's state wholesale.
func (c *Cart) Restore(snap CartSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]models.CartItem(nil), snap.Items...)
	c.persistLocked()
}

func (c *Cart) removeLocked(productID int) {
	for i, item := range c.items {
		if item.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) persistLocked() {
	if c.backend == nil {
		return
	}
	snap := CartSnapshot{Items: c.items}
	if err := c.backend.Save(cartKey, snap); err != nil {
		log.Printf("cart: saving snapshot: %v", err)
	}
}
