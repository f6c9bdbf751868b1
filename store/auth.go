package store

import (
	"errors"
	"log"
	"sync"

	"go-storefront/models"
	"go-storefront/storage"
)

const authKey = "auth"

// storedUser mirrors models.User with the password included, so the mock
// directory survives a restart. models.User itself never serializes its
// password.
type storedUser struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Orders   []models.Order `json:"orders"`
}

// AuthSnapshot is the auth store's full serializable state.
type AuthSnapshot struct {
	Users     []storedUser `json:"users"`
	SessionID int          `json:"session_id"` // 0 when logged out
	NextID    int          `json:"next_id"`
}

// Auth owns the mock user directory and the current session. The session
// is a password-stripped copy of one directory entry, or nil. When a
// backend is set, the full state is written after every mutation.
type Auth struct {
	mu      sync.RWMutex
	users   []models.User
	session *models.User
	nextID  int
	backend storage.Backend
}

// NewAuth returns an auth store restored from backend when a snapshot
// exists there, seeded with seed otherwise. A nil backend keeps the store
// purely in memory.
func NewAuth(seed []models.User, backend storage.Backend) *Auth {
	a := &Auth{backend: backend}

	if backend != nil {
		var snap AuthSnapshot
		err := backend.Load(authKey, &snap)
		switch {
		case err == nil:
			a.restoreLocked(snap)
			return a
		case errors.Is(err, storage.ErrNotFound):
			// fresh install, fall through to the seed
		default:
			log.Printf("auth: restoring snapshot: %v", err)
		}
	}

	a.users = append([]models.User(nil), seed...)
	a.nextID = 1
	for _, u := range a.users {
		if u.ID >= a.nextID {
			a.nextID = u.ID + 1
		}
	}
	return a
}

// Register creates a user and immediately logs it in. Registration fails
// as a result value when the email is already taken (exact, case-sensitive
// match); the directory is left untouched in that case.
func (a *Auth) Register(name, email, password string) models.Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.users {
		if u.Email == email {
			return models.Result{Success: false, Message: "Email already in use"}
		}
	}

	user := models.User{
		ID:       a.nextID,
		Name:     name,
		Email:    email,
		Password: password,
		Orders:   []models.Order{},
	}
	a.nextID++
	a.users = append(a.users, user)
	a.session = publicCopy(user)
	a.persistLocked()

	return models.Result{Success: true}
}

// Login establishes a session for the directory entry matching both email
// and password by equality. Any mismatch fails as a result value and
// leaves the current session untouched.
func (a *Auth) Login(email, password string) models.Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, u := range a.users {
		if u.Email == email && u.Password == password {
			a.session = publicCopy(u)
			a.persistLocked()
			return models.Result{Success: true}
		}
	}
	return models.Result{Success: false, Message: "Invalid email or password"}
}

// Logout clears the session unconditionally.
func (a *Auth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = nil
	a.persistLocked()
}

// AddOrder appends order to the logged-in user's history, both in the
// directory and in the session copy, behind the one lock. Without a
// session it is a no-op.
func (a *Auth) AddOrder(order models.Order) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return
	}
	for i := range a.users {
		if a.users[i].ID == a.session.ID {
			a.users[i].Orders = append(a.users[i].Orders, order)
			a.session.Orders = append(a.session.Orders, order)
			a.persistLocked()
			return
		}
	}
}

// CurrentUser returns a copy of the session user, or nil when logged out.
// The copy never carries a password.
func (a *Auth) CurrentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return nil
	}
	return publicCopy(*a.session)
}

// IsAuthenticated reports whether a session is established.
func (a *Auth) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session != nil
}

// UserByEmail returns a password-stripped copy of the directory entry for
// email, or nil when no entry matches.
func (a *Auth) UserByEmail(email string) *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, u := range a.users {
		if u.Email == email {
			return publicCopy(u)
		}
	}
	return nil
}

// Snapshot returns the store's full state for persistence.
func (a *Auth) Snapshot() AuthSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshotLocked()
}

// Restore replaces the store's state wholesale. The id counter is re-seeded
// past the highest restored id so later registrations cannot collide.
func (a *Auth) Restore(snap AuthSnapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.restoreLocked(snap)
	a.persistLocked()
}

func (a *Auth) snapshotLocked() AuthSnapshot {
	snap := AuthSnapshot{NextID: a.nextID}
	for _, u := range a.users {
		snap.Users = append(snap.Users, storedUser{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Orders:   append([]models.Order(nil), u.Orders...),
		})
	}
	if a.session != nil {
		snap.SessionID = a.session.ID
	}
	return snap
}

func (a *Auth) restoreLocked(snap AuthSnapshot) {
	a.users = nil
	a.session = nil
	a.nextID = snap.NextID
	if a.nextID < 1 {
		a.nextID = 1
	}
	for _, su := range snap.Users {
		u := models.User{
			ID:       su.ID,
			Name:     su.Name,
			Email:    su.Email,
			Password: su.Password,
			Orders:   append([]models.Order(nil), su.Orders...),
		}
		a.users = append(a.users, u)
		if u.ID >= a.nextID {
			a.nextID = u.ID + 1
		}
		if snap.SessionID != 0 && u.ID == snap.SessionID {
			a.session = publicCopy(u)
		}
	}
}

func (a *Auth) persistLocked() {
	if a.backend == nil {
		return
	}
	if err := a.backend.Save(authKey, a.snapshotLocked()); err != nil {
		log.Printf("auth: saving snapshot: %v", err)
	}
}

// publicCopy clones a user with the password stripped and the order list
// detached from the directory's backing array.
func publicCopy(u models.User) *models.User {
	copied := u
	copied.Password = ""
	copied.Orders = append([]models.Order(nil), u.Orders...)
	return &copied
}
