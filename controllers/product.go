package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-storefront/store"
)

// ProductController handles product-related requests
type ProductController struct {
	Catalog *store.Catalog
}

// NewProductController creates a new ProductController
func NewProductController(catalog *store.Catalog) *ProductController {
	return &ProductController{
		Catalog: catalog,
	}
}

// GetProducts retrieves the catalog, filtered and sorted per the query
// string: category, minPrice, maxPrice, search and sort. Malformed price
// bounds and unknown sort keys are tolerated rather than rejected.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filters store.Filters
	filters.Category = query.Get("category")
	filters.Search = query.Get("search")
	if raw := query.Get("minPrice"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = &min
		}
	}
	if raw := query.Get("maxPrice"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = &max
		}
	}

	products := pc.Catalog.FilteredProducts(filters, query.Get("sort"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	product := pc.Catalog.ProductByID(params["id"])
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetCategories retrieves the distinct categories across the catalog
func (pc *ProductController) GetCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pc.Catalog.Categories())
}

// GetReviews retrieves the reviews for a product, in insertion order
func (pc *ProductController) GetReviews(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"reviews":       pc.Catalog.ReviewsFor(id),
		"averageRating": pc.Catalog.AverageRating(id),
	})
}

// AddReview records a review for the product in the path. The review body
// is stored as submitted; see store.Catalog.AddReview.
func (pc *ProductController) AddReview(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var input store.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	input.ProductID = id

	pc.Catalog.AddReview(input)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode("Review added")
}
