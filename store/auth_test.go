package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/storage"
)

func seedUsers() []models.User {
	return []models.User{
		{ID: 1, Email: "demo@example.com", Password: "secret", Name: "Demo", Orders: []models.Order{}},
	}
}

func TestRegisterAutoLogin(t *testing.T) {
	a := NewAuth(seedUsers(), nil)

	result := a.Register("New User", "new@example.com", "pw")
	require.True(t, result.Success)

	user := a.CurrentUser()
	require.NotNil(t, user, "registration establishes the session")
	assert.Equal(t, "new@example.com", user.Email)
	assert.Empty(t, user.Password, "the session copy never carries a password")
	assert.True(t, a.IsAuthenticated())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := NewAuth(seedUsers(), nil)

	result := a.Register("Imposter", "demo@example.com", "other")
	assert.False(t, result.Success)
	assert.Equal(t, "Email already in use", result.Message)
	assert.False(t, a.IsAuthenticated())

	// The directory is untouched: the original credentials still work and
	// the attempted ones do not.
	assert.True(t, a.Login("demo@example.com", "secret").Success)
	a.Logout()
	assert.False(t, a.Login("demo@example.com", "other").Success)
}

func TestRegisterAssignsFreshIDs(t *testing.T) {
	a := NewAuth(seedUsers(), nil)

	require.True(t, a.Register("A", "a@example.com", "pw").Success)
	first := a.CurrentUser().ID
	require.True(t, a.Register("B", "b@example.com", "pw").Success)
	second := a.CurrentUser().ID

	assert.Greater(t, first, 1)
	assert.Greater(t, second, first)
}

func TestLogin(t *testing.T) {
	a := NewAuth(seedUsers(), nil)

	result := a.Login("demo@example.com", "secret")
	require.True(t, result.Success)
	require.NotNil(t, a.CurrentUser())
	assert.Empty(t, a.CurrentUser().Password)
}

func TestLoginMismatchLeavesSessionUntouched(t *testing.T) {
	a := NewAuth(seedUsers(), nil)
	require.True(t, a.Login("demo@example.com", "secret").Success)

	for _, creds := range [][2]string{
		{"demo@example.com", "wrong"},
		{"nobody@example.com", "secret"},
		{"nobody@example.com", "wrong"},
	} {
		result := a.Login(creds[0], creds[1])
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid email or password", result.Message)
		require.NotNil(t, a.CurrentUser(), "a failed login keeps the existing session")
		assert.Equal(t, "demo@example.com", a.CurrentUser().Email)
	}
}

func TestLogout(t *testing.T) {
	a := NewAuth(seedUsers(), nil)
	require.True(t, a.Login("demo@example.com", "secret").Success)

	a.Logout()
	assert.Nil(t, a.CurrentUser())
	assert.False(t, a.IsAuthenticated())

	a.Logout() // logging out twice is fine
	assert.False(t, a.IsAuthenticated())
}

func TestAddOrderWithoutSessionIsNoOp(t *testing.T) {
	a := NewAuth(seedUsers(), nil)

	a.AddOrder(models.Order{ID: "o-1", Total: 10})

	require.True(t, a.Login("demo@example.com", "secret").Success)
	assert.Empty(t, a.CurrentUser().Orders)
}

func TestAddOrderUpdatesDirectoryAndSession(t *testing.T) {
	a := NewAuth(seedUsers(), nil)
	require.True(t, a.Login("demo@example.com", "secret").Success)

	a.AddOrder(models.Order{ID: "o-1", Total: 10})

	require.Len(t, a.CurrentUser().Orders, 1, "visible on the session copy")

	// And on the directory entry: a fresh session sees it too.
	a.Logout()
	require.True(t, a.Login("demo@example.com", "secret").Success)
	require.Len(t, a.CurrentUser().Orders, 1)
	assert.Equal(t, "o-1", a.CurrentUser().Orders[0].ID)
}

func TestAuthSnapshotRestore(t *testing.T) {
	a := NewAuth(seedUsers(), nil)
	require.True(t, a.Register("New User", "new@example.com", "pw").Success)

	snap := a.Snapshot()

	restored := NewAuth(nil, nil)
	restored.Restore(snap)

	require.NotNil(t, restored.CurrentUser(), "the session is part of the snapshot")
	assert.Equal(t, "new@example.com", restored.CurrentUser().Email)
	assert.True(t, restored.Login("demo@example.com", "secret").Success, "credentials round-trip")
}

func TestAuthSurvivesRestart(t *testing.T) {
	backend, err := storage.NewDir(t.TempDir())
	require.NoError(t, err)

	a := NewAuth(seedUsers(), backend)
	require.True(t, a.Register("New User", "new@example.com", "pw").Success)
	registeredID := a.CurrentUser().ID

	reopened := NewAuth(seedUsers(), backend)
	require.True(t, reopened.IsAuthenticated())
	assert.Equal(t, "new@example.com", reopened.CurrentUser().Email)

	// The id counter resumes past restored ids instead of restarting.
	require.True(t, reopened.Register("Another", "another@example.com", "pw").Success)
	assert.Greater(t, reopened.CurrentUser().ID, registeredID)
}
