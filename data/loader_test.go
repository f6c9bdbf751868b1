package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)
	require.Len(t, products, 12)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.Positive(t, p.ID)
		assert.False(t, seen[p.ID], "product id %d appears twice", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.NotEmpty(t, p.Images, "every product needs a primary image")
	}

	assert.Equal(t, "Smartphone Pro Max", products[0].Name)
	assert.Equal(t, 999.99, products[0].Price)
}

func TestUsers(t *testing.T) {
	users := Users()
	require.Len(t, users, 1)
	assert.Equal(t, "user@example.com", users[0].Email)
	assert.NotNil(t, users[0].Orders)
}
