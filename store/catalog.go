// Package store holds the application state: the product catalog, the
// shopping cart and the mock auth directory. Each store is an explicit
// container guarded by its own lock; consumers get copies, never views
// into internal slices.
package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-storefront/models"
)

// Filters narrows the product listing. Zero values mean "no filter": an
// empty Category or Search excludes nothing, and nil price bounds are
// open-ended. All supplied filters apply conjunctively.
type Filters struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// ReviewInput is the reviewer-supplied part of a review. Neither ProductID
// nor Rating is validated; the store records what it is given.
type ReviewInput struct {
	ProductID int               `json:"productId"`
	Rating    float64           `json:"rating"`
	Author    string            `json:"author"`
	Comment   string            `json:"comment"`
	Extra     map[string]string `json:"extra"`
}

// Catalog owns the product list and its reviews. Products are read-only
// after construction; reviews are append-only.
type Catalog struct {
	mu           sync.RWMutex
	products     []models.Product
	reviews      []models.Review
	nextReviewID int
}

// NewCatalog builds a catalog over the given products. The slice is copied;
// the caller keeps no handle into the store.
func NewCatalog(products []models.Product) *Catalog {
	return &Catalog{
		products:     append([]models.Product(nil), products...),
		nextReviewID: 1,
	}
}

// Products returns the full catalog in insertion order.
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Product(nil), c.products...)
}

// FilteredProducts applies filters conjunctively, then sorts by sortKey.
// With no sortKey (or an unrecognized one) the insertion order is kept;
// filtering never reorders. Recognized keys: price-asc, price-desc,
// name-asc, name-desc (locale-aware) and rating-desc, where products
// without reviews rank with rating 0.
func (c *Catalog) FilteredProducts(filters Filters, sortKey string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	filtered := make([]models.Product, 0, len(c.products))
	search := strings.ToLower(filters.Search)
	for _, p := range c.products {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortKey {
	case "price-asc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case "price-desc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case "name-asc":
		cl := collate.New(language.Und)
		sort.SliceStable(filtered, func(i, j int) bool {
			return cl.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	case "name-desc":
		cl := collate.New(language.Und)
		sort.SliceStable(filtered, func(i, j int) bool {
			return cl.CompareString(filtered[i].Name, filtered[j].Name) > 0
		})
	case "rating-desc":
		ratings := make(map[int]float64, len(filtered))
		for _, p := range filtered {
			ratings[p.ID] = c.averageRatingLocked(p.ID)
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			return ratings[filtered[i].ID] > ratings[filtered[j].ID]
		})
	default:
		// Unknown keys are tolerated: no reordering.
	}

	return filtered
}

// ProductByID looks a product up by its id, coercing the given string to a
// number first. A malformed or unmatched id yields nil rather than an
// error.
func (c *Catalog) ProductByID(id string) *models.Product {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == n {
			product := p
			return &product
		}
	}
	return nil
}

// Categories returns the distinct category values across the catalog.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// ReviewsFor returns every review referencing productID, in insertion
// order. Reviews for ids the catalog does not contain are returned too;
// referential integrity is not enforced on insertion.
func (c *Catalog) ReviewsFor(productID int) []models.Review {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var reviews []models.Review
	for _, r := range c.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	return reviews
}

// AverageRating is the arithmetic mean of the ratings referencing
// productID, or 0 when no review does.
func (c *Catalog) AverageRating(productID int) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.averageRatingLocked(productID)
}

func (c *Catalog) averageRatingLocked(productID int) float64 {
	var sum float64
	var count int
	for _, r := range c.reviews {
		if r.ProductID == productID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// AddReview appends a review with a generated id and the current timestamp.
// The input is recorded as given: rating bounds and the existence of the
// product are not checked.
func (c *Catalog) AddReview(input ReviewInput) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reviews = append(c.reviews, models.Review{
		ID:        c.nextReviewID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Author:    input.Author,
		Comment:   input.Comment,
		Extra:     input.Extra,
		Date:      time.Now().UTC().Format(time.RFC3339),
	})
	c.nextReviewID++
}
