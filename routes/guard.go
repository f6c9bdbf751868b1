package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/middleware"
)

// Meta is the per-route metadata the navigation guard inspects. The flags
// are independent checks, not mutually exclusive.
type Meta struct {
	RequiresAuth bool
	HideForAuth  bool
}

// Decision is the guard's verdict for one transition.
type Decision int

const (
	Proceed Decision = iota
	RedirectLogin
	RedirectHome
)

// Decide applies the guard's decision table. RequiresAuth is checked
// first, so a route carrying both flags resolves to the login redirect
// when both conditions hold.
func Decide(meta Meta, authenticated bool) Decision {
	if meta.RequiresAuth && !authenticated {
		return RedirectLogin
	}
	if meta.HideForAuth && authenticated {
		return RedirectHome
	}
	return Proceed
}

// Guard gates a route on its metadata and the request's session state,
// redirecting per Decide.
func Guard(meta Meta) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Decide(meta, middleware.IsAuthenticated(r)) {
			case RedirectLogin:
				http.Redirect(w, r, "/login", http.StatusSeeOther)
			case RedirectHome:
				http.Redirect(w, r, "/", http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
