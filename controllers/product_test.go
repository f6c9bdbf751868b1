package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/store"
)

func productRouter() *mux.Router {
	catalog := store.NewCatalog([]models.Product{
		{ID: 1, Name: "Alpha", Price: 10, Category: "Electronics"},
		{ID: 2, Name: "Bravo", Price: 20, Category: "Electronics"},
		{ID: 3, Name: "Charlie", Price: 30, Category: "Fashion"},
	})
	pc := NewProductController(catalog)

	router := mux.NewRouter()
	router.HandleFunc("/products", pc.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", pc.GetProductByID).Methods("GET")
	router.HandleFunc("/categories", pc.GetCategories).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", pc.GetReviews).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", pc.AddReview).Methods("POST")
	return router
}

func TestGetProductsFilteredAndSorted(t *testing.T) {
	router := productRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?minPrice=15&sort=price-desc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var products []models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 2)
	assert.Equal(t, 3, products[0].ID)
	assert.Equal(t, 2, products[1].ID)
}

func TestGetProductsIgnoresMalformedBounds(t *testing.T) {
	router := productRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?minPrice=abc&sort=nope", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var products []models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	assert.Len(t, products, 3, "malformed bound and unknown sort key are tolerated")
}

func TestGetProductByID(t *testing.T) {
	router := productRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var product models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&product))
	assert.Equal(t, "Bravo", product.Name)
}

func TestGetProductByIDNotFound(t *testing.T) {
	router := productRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewRoundTrip(t *testing.T) {
	router := productRouter()

	body := `{"rating": 4, "author": "ann", "comment": "solid"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products/2/reviews", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/2/reviews", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Reviews       []models.Review `json:"reviews"`
		AverageRating float64         `json:"averageRating"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "ann", got.Reviews[0].Author)
	assert.Equal(t, 2, got.Reviews[0].ProductID, "the path id wins over the body")
	assert.InDelta(t, 4.0, got.AverageRating, 1e-9)
}
