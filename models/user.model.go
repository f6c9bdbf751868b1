package models

// User represents an entry in the mock user directory. Password is stored
// and compared in plain text: this is a demo stand-in for a real credential
// service, not a pattern to copy. Orders is append-only.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"-"`
	Orders   []Order `json:"orders"`
}

// Result reports the outcome of a registration or login attempt. Failures
// are values, never panics; Message is human-readable.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
