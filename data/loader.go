// Package data supplies the compiled-in datasets the stores are seeded
// with at startup.
package data

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"go-storefront/models"
)

//go:embed products.yaml
var productsYAML []byte

// Products parses the embedded seed catalog.
func Products() ([]models.Product, error) {
	var products []models.Product
	if err := yaml.Unmarshal(productsYAML, &products); err != nil {
		return nil, fmt.Errorf("parsing seed catalog: %w", err)
	}

	seen := make(map[int]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %d in seed catalog", p.ID)
		}
		seen[p.ID] = true
	}
	return products, nil
}

// Users returns the mock user directory a fresh install starts with.
// In a real app this would live in a separate credential service.
func Users() []models.User {
	return []models.User{
		{
			ID:       1,
			Email:    "user@example.com",
			Password: "password123",
			Name:     "Demo User",
			Orders:   []models.Order{},
		},
	}
}
