// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"go-storefront/controllers"
	"go-storefront/data"
	"go-storefront/middleware"
	"go-storefront/routes"
	"go-storefront/storage"
	"go-storefront/store"
	"go-storefront/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	// Open the snapshot directory; cart and auth state survive restarts there
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = ".storefront"
	}
	backend, err := storage.NewDir(dataDir)
	if err != nil {
		log.Fatal(err)
	}

	// Load the seed catalog
	products, err := data.Products()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize the stores
	catalog := store.NewCatalog(products)
	cart := store.NewCart(backend)
	auth := store.NewAuth(data.Users(), backend)

	// Initialize controllers
	userController := controllers.NewUserController(auth)
	productController := controllers.NewProductController(catalog)
	cartController := controllers.NewCartController(cart, catalog)
	orderController := controllers.NewOrderController(auth, cart)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.Authenticate)
	routes.RegisterRoutes(router, userController, productController, cartController, orderController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
