package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/config"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
	"github.com/lunar-gate/skilldeck/internal/tui/views"
)

func newTestModel(t *testing.T, signedIn bool) (*Model, *session.Store) {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	if signedIn {
		require.NoError(t, store.SetCredentials("jwt-token", "7"))
	}

	client, err := api.New("http://127.0.0.1:1/", store)
	require.NoError(t, err)

	cfg := &config.Config{PageSize: 3}
	return NewModel(cfg, store, client, telemetry.New(nil)), store
}

func TestStartViewDependsOnStoredToken(t *testing.T) {
	m, _ := newTestModel(t, false)
	assert.Equal(t, ViewLogin, m.currentView)

	m, _ = newTestModel(t, true)
	assert.Equal(t, ViewSkills, m.currentView)
}

func TestSignedInNavigatesToSkills(t *testing.T) {
	m, _ := newTestModel(t, false)
	m.Init()

	updated, _ := m.Update(views.SignedInMsg{})

	assert.Equal(t, ViewSkills, updated.(*Model).currentView)
}

func TestSignedOutNavigatesToLogin(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.Init()

	updated, _ := m.Update(views.SignedOutMsg{})

	assert.Equal(t, ViewLogin, updated.(*Model).currentView)
}

func TestSessionExpiredClearsTokenAndRedirects(t *testing.T) {
	m, store := newTestModel(t, true)
	m.Init()

	updated, _ := m.Update(views.SessionExpiredMsg{})

	assert.Equal(t, ViewLogin, updated.(*Model).currentView)
	_, ok := store.Token()
	assert.False(t, ok, "an expired session token must be dropped")
}

func TestPlainQDoesNotQuitLoginForm(t *testing.T) {
	m, _ := newTestModel(t, false)
	m.Init()

	// "q" must type into the username field, not exit
	assert.False(t, m.shouldQuit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}))
	assert.True(t, m.shouldQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
}

func TestViewTypeString(t *testing.T) {
	assert.Equal(t, "login", ViewLogin.String())
	assert.Equal(t, "skills", ViewSkills.String())
}
