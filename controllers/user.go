package controllers

import (
	"encoding/json"
	"net/http"

	"go-storefront/middleware"
	"go-storefront/store"
	"go-storefront/utils"
)

// UserController handles user-related requests
type UserController struct {
	Auth *store.Auth
}

// NewUserController creates a new UserController
func NewUserController(auth *store.Auth) *UserController {
	return &UserController{
		Auth: auth,
	}
}

// Register handles user registration. A successful registration logs the
// new user in immediately and returns a session token.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	result := uc.Auth.Register(input.Name, input.Email, input.Password)
	if !result.Success {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(result)
		return
	}

	token, err := utils.GenerateJWT(input.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  uc.Auth.CurrentUser(),
	})
}

// Login handles user authentication
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	result := uc.Auth.Login(creds.Email, creds.Password)
	if !result.Success {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(result)
		return
	}

	token, err := utils.GenerateJWT(creds.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	// Return the token
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Logout clears the session unconditionally
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	uc.Auth.Logout()
	json.NewEncoder(w).Encode("Logged out")
}

// GetProfile retrieves the authenticated user's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}

	user := uc.Auth.UserByEmail(claims.Email)
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	// The store hands out password-stripped copies only
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
