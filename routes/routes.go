// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/controllers"
)

// metaFor mirrors the route metadata of the storefront's pages: checkout,
// profile and order history need a session; the login and register pages
// are hidden from logged-in users.
var metaFor = map[string]Meta{
	"/login":    {HideForAuth: true},
	"/register": {HideForAuth: true},
	"/profile":  {RequiresAuth: true},
	"/checkout": {RequiresAuth: true},
	"/orders":   {RequiresAuth: true},
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Auth routes (hidden from logged-in users)
	router.Handle("/register", guarded("/register", userController.Register)).Methods("POST")
	router.Handle("/login", guarded("/login", userController.Login)).Methods("POST")
	router.HandleFunc("/logout", userController.Logout).Methods("POST")
	router.Handle("/profile", guarded("/profile", userController.GetProfile)).Methods("GET")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/categories", productController.GetCategories).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", productController.GetReviews).Methods("GET")
	router.HandleFunc("/products/{id}/reviews", productController.AddReview).Methods("POST")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/items/{id}", cartController.UpdateQuantity).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", cartController.RemoveFromCart).Methods("DELETE")

	// Order routes (session required)
	router.Handle("/checkout", guarded("/checkout", orderController.CreateOrder)).Methods("POST")
	router.Handle("/orders", guarded("/orders", orderController.GetOrders)).Methods("GET")
}

func guarded(path string, h http.HandlerFunc) http.Handler {
	return Guard(metaFor[path])(h)
}
