package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_CredentialsLifecycle(t *testing.T) {
	store := newTestStore(t)

	// Signed out initially
	_, ok := store.Token()
	assert.False(t, ok)
	assert.Empty(t, store.UserID())

	// Sign-in persists token and user id
	require.NoError(t, store.SetCredentials("t", "5"))
	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "t", token)
	assert.Equal(t, "5", store.UserID())

	// Log-out clears both
	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok)
	assert.Empty(t, store.UserID())
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store1.SetCredentials("t", "5"))
	require.NoError(t, store1.SetSavedPassword("hunter2"))
	require.NoError(t, store1.Close())

	store2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = store2.Close() }()

	token, ok := store2.Token()
	assert.True(t, ok)
	assert.Equal(t, "t", token)
	assert.Equal(t, "5", store2.UserID())
	assert.Equal(t, "hunter2", store2.SavedPassword())
}

func TestStore_SavedPasswordSurvivesLogout(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetCredentials("t", "5"))
	require.NoError(t, store.SetSavedPassword("hunter2"))
	require.NoError(t, store.Clear())

	assert.Equal(t, "hunter2", store.SavedPassword())

	require.NoError(t, store.ClearSavedPassword())
	assert.Empty(t, store.SavedPassword())
}

func TestStore_TrackingIDStable(t *testing.T) {
	store := newTestStore(t)

	first := store.GetOrCreateTrackingID()
	require.NotEmpty(t, first)
	assert.Equal(t, first, store.GetOrCreateTrackingID())
}
