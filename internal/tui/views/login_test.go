package views

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
)

func newTestLoginView(t *testing.T) (*LoginView, *session.Store) {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	// The address is never dialed in these tests: local validation
	// failures return before any request is built.
	client, err := api.New("http://127.0.0.1:1/", store)
	require.NoError(t, err)

	lv := NewLoginView(client, store)
	lv.Init(telemetry.New(nil))
	return lv, store
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(lv *LoginView, text string) {
	for _, r := range text {
		lv.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoginEmptySubmitBlocked(t *testing.T) {
	lv, _ := newTestLoginView(t)

	cmd := lv.Update(keyPress("enter"))

	assert.Nil(t, cmd, "no command should be issued for an invalid form")
	msg, ok := lv.FieldError(fieldUsername)
	require.True(t, ok)
	assert.Equal(t, "Please fill in all fields.", msg)
	_, ok = lv.FieldError(fieldPassword)
	assert.True(t, ok)
}

func TestLoginPartialSubmitBlocked(t *testing.T) {
	lv, _ := newTestLoginView(t)

	typeText(lv, "alice")
	cmd := lv.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	_, ok := lv.FieldError(fieldUsername)
	assert.False(t, ok, "filled field should carry no error")
	_, ok = lv.FieldError(fieldPassword)
	assert.True(t, ok)
}

func TestSignUpPasswordMismatchBlocked(t *testing.T) {
	lv, _ := newTestLoginView(t)

	lv.Update(keyPress("ctrl+t"))
	require.Equal(t, ModeSignUp, lv.Mode())

	typeText(lv, "alice")
	lv.Update(keyPress("tab"))
	typeText(lv, "hunter2")
	lv.Update(keyPress("tab"))
	typeText(lv, "hunter3")

	cmd := lv.Update(keyPress("enter"))

	assert.Nil(t, cmd, "mismatched passwords must not reach the network")
	msg, ok := lv.FieldError(fieldConfirm)
	require.True(t, ok)
	assert.Equal(t, "Passwords do not match.", msg)
}

func TestSignInSuccessPersistsSession(t *testing.T) {
	lv, store := newTestLoginView(t)

	cmd := lv.Update(signInResultMsg{Token: "jwt-token", UserID: "7"})
	require.NotNil(t, cmd)
	assert.IsType(t, SignedInMsg{}, cmd())

	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "7", store.UserID())
}

func TestSignInFailureShowsFieldError(t *testing.T) {
	lv, store := newTestLoginView(t)

	cmd := lv.Update(signInResultMsg{Err: assert.AnError})

	assert.Nil(t, cmd)
	msg, ok := lv.FieldError(fieldUsername)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials. Please try again.", msg)

	_, stored := store.Token()
	assert.False(t, stored, "failed sign-in must not store a token")
}

func TestSignUpSuccessReturnsToSignIn(t *testing.T) {
	lv, _ := newTestLoginView(t)

	lv.Update(keyPress("ctrl+t"))
	require.Equal(t, ModeSignUp, lv.Mode())

	cmd := lv.Update(signUpResultMsg{})

	assert.Nil(t, cmd)
	assert.Equal(t, ModeSignIn, lv.Mode(), "should fall back to sign-in after registering")
}

func TestSavedPasswordRestoredIntoForm(t *testing.T) {
	store, err := session.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.SetSavedPassword("hunter2"))

	client, err := api.New("http://127.0.0.1:1/", store)
	require.NoError(t, err)

	lv := NewLoginView(client, store)
	lv.Init(telemetry.New(nil))

	// Only the username is missing now
	cmd := lv.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	_, ok := lv.FieldError(fieldPassword)
	assert.False(t, ok, "restored password should satisfy validation")
	_, ok = lv.FieldError(fieldUsername)
	assert.True(t, ok)
}
