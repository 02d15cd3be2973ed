package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/log"
	"github.com/lunar-gate/skilldeck/internal/models"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
	"github.com/lunar-gate/skilldeck/internal/tui/theme"
)

// LoginMode selects between the sign-in and sign-up forms.
type LoginMode int

const (
	ModeSignIn LoginMode = iota
	ModeSignUp
)

// Form fields, in tab order.
const (
	fieldUsername = iota
	fieldPassword
	fieldConfirm // sign-up only
)

// LoginView renders the sign-in / sign-up forms and performs the
// credential exchange. Validation is local and field-scoped; nothing
// is sent until it passes.
type LoginView struct {
	client    *api.Client
	session   *session.Store
	telemetry telemetry.Client

	mode     LoginMode
	username textinput.Model
	password textinput.Model
	confirm  textinput.Model
	focused  int

	fieldErrs    map[int]string
	notice       string
	showPassword bool
	savePassword bool
	submitting   bool

	width  int
	height int
}

// NewLoginView creates the login view.
func NewLoginView(client *api.Client, store *session.Store) *LoginView {
	username := textinput.New()
	username.Placeholder = "Login"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "Confirm password"
	confirm.CharLimit = 64
	confirm.Width = 32
	confirm.EchoMode = textinput.EchoPassword

	lv := &LoginView{
		client:    client,
		session:   store,
		mode:      ModeSignIn,
		username:  username,
		password:  password,
		confirm:   confirm,
		fieldErrs: map[int]string{},
	}

	// Restore a remembered password into the form, as a convenience
	if saved := store.SavedPassword(); saved != "" {
		lv.password.SetValue(saved)
		lv.savePassword = true
	}

	return lv
}

// Init sets the telemetry client.
func (lv *LoginView) Init(tc telemetry.Client) {
	lv.telemetry = tc
}

// Reset clears transient state when navigating back to this view.
func (lv *LoginView) Reset() {
	lv.fieldErrs = map[int]string{}
	lv.notice = ""
	lv.submitting = false
	lv.setFocus(fieldUsername)
}

// SetSize updates the view dimensions.
func (lv *LoginView) SetSize(w, h int) {
	lv.width = w
	lv.height = h
}

// Mode returns the current form mode.
func (lv *LoginView) Mode() LoginMode { return lv.mode }

// Update handles input and network results.
func (lv *LoginView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return lv.handleKey(msg)

	case signInResultMsg:
		lv.submitting = false
		if msg.Err != nil {
			lv.telemetry.TrackSignIn(false)
			log.Debugf("sign-in failed: %v", msg.Err)
			// Remote failures land on the username field
			lv.fieldErrs[fieldUsername] = "Invalid credentials. Please try again."
			return nil
		}
		lv.telemetry.TrackSignIn(true)
		if err := lv.session.SetCredentials(msg.Token, msg.UserID); err != nil {
			lv.fieldErrs[fieldUsername] = "Could not save session. Please try again."
			return nil
		}
		lv.persistSavedPassword()
		return func() tea.Msg { return SignedInMsg{} }

	case signUpResultMsg:
		lv.submitting = false
		if msg.Err != nil {
			lv.telemetry.TrackSignUp(false)
			log.Debugf("sign-up failed: %v", msg.Err)
			lv.fieldErrs[fieldUsername] = "Could not create account. Please try again."
			return nil
		}
		lv.telemetry.TrackSignUp(true)
		// Back to sign-in so the new account can log in
		lv.mode = ModeSignIn
		lv.notice = "Account created. Please sign in."
		lv.confirm.Reset()
		lv.setFocus(fieldUsername)
		return nil
	}
	return nil
}

func (lv *LoginView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if lv.submitting {
		return nil
	}

	switch msg.String() {
	case "tab", "down":
		lv.setFocus(lv.nextField(1))
		return nil

	case "shift+tab", "up":
		lv.setFocus(lv.nextField(-1))
		return nil

	case "enter":
		return lv.submit()

	case "ctrl+t":
		lv.toggleMode()
		return nil

	case "ctrl+v":
		lv.togglePasswordEcho()
		return nil

	case "ctrl+r":
		lv.savePassword = !lv.savePassword
		return nil
	}

	var cmd tea.Cmd
	switch lv.focused {
	case fieldUsername:
		lv.username, cmd = lv.username.Update(msg)
	case fieldPassword:
		lv.password, cmd = lv.password.Update(msg)
	case fieldConfirm:
		lv.confirm, cmd = lv.confirm.Update(msg)
	}
	return cmd
}

func (lv *LoginView) toggleMode() {
	if lv.mode == ModeSignIn {
		lv.mode = ModeSignUp
	} else {
		lv.mode = ModeSignIn
	}
	lv.fieldErrs = map[int]string{}
	lv.notice = ""
	lv.setFocus(fieldUsername)
}

func (lv *LoginView) togglePasswordEcho() {
	lv.showPassword = !lv.showPassword
	echo := textinput.EchoPassword
	if lv.showPassword {
		echo = textinput.EchoNormal
	}
	lv.password.EchoMode = echo
	lv.confirm.EchoMode = echo
}

func (lv *LoginView) fieldCount() int {
	if lv.mode == ModeSignUp {
		return 3
	}
	return 2
}

func (lv *LoginView) nextField(delta int) int {
	n := lv.fieldCount()
	return ((lv.focused+delta)%n + n) % n
}

func (lv *LoginView) setFocus(field int) {
	lv.focused = field
	lv.username.Blur()
	lv.password.Blur()
	lv.confirm.Blur()
	switch field {
	case fieldUsername:
		lv.username.Focus()
	case fieldPassword:
		lv.password.Focus()
	case fieldConfirm:
		lv.confirm.Focus()
	}
}

// validate checks the form locally. Errors are field-scoped and block
// submission; no network call happens while any are present.
func (lv *LoginView) validate() bool {
	lv.fieldErrs = map[int]string{}

	if strings.TrimSpace(lv.username.Value()) == "" {
		lv.fieldErrs[fieldUsername] = "Please fill in all fields."
	}
	if lv.password.Value() == "" {
		lv.fieldErrs[fieldPassword] = "Please fill in all fields."
	}
	if lv.mode == ModeSignUp {
		if lv.confirm.Value() == "" {
			lv.fieldErrs[fieldConfirm] = "Please fill in all fields."
		} else if lv.confirm.Value() != lv.password.Value() {
			lv.fieldErrs[fieldConfirm] = "Passwords do not match."
		}
	}
	return len(lv.fieldErrs) == 0
}

func (lv *LoginView) submit() tea.Cmd {
	if !lv.validate() {
		return nil
	}

	lv.notice = ""
	lv.submitting = true
	username := lv.username.Value()
	password := lv.password.Value()

	if lv.mode == ModeSignUp {
		client := lv.client
		return func() tea.Msg {
			err := client.SignUp(context.Background(), username, password)
			return signUpResultMsg{Err: err}
		}
	}

	client := lv.client
	return func() tea.Msg {
		token, userID, err := client.SignIn(context.Background(), models.Credentials{
			Username: username,
			Password: password,
		})
		return signInResultMsg{Token: token, UserID: userID, Err: err}
	}
}

// persistSavedPassword honors the "save password" toggle after a
// successful sign-in.
func (lv *LoginView) persistSavedPassword() {
	if lv.savePassword {
		if err := lv.session.SetSavedPassword(lv.password.Value()); err != nil {
			log.Debugf("save password: %v", err)
		}
		return
	}
	if err := lv.session.ClearSavedPassword(); err != nil {
		log.Debugf("clear saved password: %v", err)
	}
}

// FieldError returns the error for a form field, if any. Exposed for
// tests.
func (lv *LoginView) FieldError(field int) (string, bool) {
	msg, ok := lv.fieldErrs[field]
	return msg, ok
}

// View renders the form.
func (lv *LoginView) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Current.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Current.Secondary)
	errStyle := lipgloss.NewStyle().Foreground(theme.Current.Error)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	okStyle := lipgloss.NewStyle().Foreground(theme.Current.Success)

	title := "Sign in"
	action := "enter: sign in"
	if lv.mode == ModeSignUp {
		title = "Create account"
		action = "enter: register"
	}

	var parts []string
	parts = append(parts, titleStyle.Render(title), "")

	if lv.notice != "" {
		parts = append(parts, okStyle.Render(lv.notice), "")
	}

	parts = append(parts, labelStyle.Render("Username"), lv.username.View())
	if msg, ok := lv.fieldErrs[fieldUsername]; ok {
		parts = append(parts, errStyle.Render(msg))
	}

	parts = append(parts, "", labelStyle.Render("Password"), lv.password.View())
	if msg, ok := lv.fieldErrs[fieldPassword]; ok {
		parts = append(parts, errStyle.Render(msg))
	}

	if lv.mode == ModeSignUp {
		parts = append(parts, "", labelStyle.Render("Confirm password"), lv.confirm.View())
		if msg, ok := lv.fieldErrs[fieldConfirm]; ok {
			parts = append(parts, errStyle.Render(msg))
		}
	}

	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	parts = append(parts, "",
		mutedStyle.Render(check(lv.showPassword)+" show password (ctrl+v)   "+check(lv.savePassword)+" save password (ctrl+r)"))

	if lv.submitting {
		parts = append(parts, "", mutedStyle.Render("Signing in..."))
	}

	other := "ctrl+t: create account"
	if lv.mode == ModeSignUp {
		other = "ctrl+t: back to sign in"
	}
	parts = append(parts, "", mutedStyle.Render(action+" • "+other+" • ctrl+c: quit"))

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Primary).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if lv.width > 0 && lv.height > 0 {
		return lipgloss.Place(lv.width, lv.height, lipgloss.Center, lipgloss.Center, form)
	}
	return form
}
