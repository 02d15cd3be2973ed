package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/config"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
	"github.com/lunar-gate/skilldeck/internal/tui/views"
)

// ViewType identifies the current view.
type ViewType int

const (
	ViewLogin ViewType = iota
	ViewSkills
)

// String returns the view name used in telemetry.
func (v ViewType) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewSkills:
		return "skills"
	}
	return "unknown"
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg       *config.Config
	session   *session.Store
	client    *api.Client
	telemetry telemetry.Client
	keymap    Keymap
	styles    Styles

	currentView ViewType
	loginView   *views.LoginView
	skillsView  *views.SkillsView

	width    int
	height   int
	quitting bool

	sessionStart time.Time
}

// NewModel creates a new TUI model. The starting view depends on
// whether a session token is already stored.
func NewModel(cfg *config.Config, store *session.Store, client *api.Client, tc telemetry.Client) *Model {
	startingView := ViewLogin
	if _, ok := store.Token(); ok {
		startingView = ViewSkills
	}

	return &Model{
		cfg:          cfg,
		session:      store,
		client:       client,
		telemetry:    tc,
		keymap:       DefaultKeymap(),
		styles:       DefaultStyles(),
		currentView:  startingView,
		loginView:    views.NewLoginView(client, store),
		skillsView:   views.NewSkillsView(client, store, cfg.PageSize),
		sessionStart: time.Now(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	m.loginView.Init(m.telemetry)

	_, signedIn := m.session.Token()
	m.telemetry.TrackAppStarted("tui", signedIn)

	if m.currentView == ViewSkills {
		return m.skillsView.Init(m.telemetry)
	}
	return nil
}

func (m *Model) navigate(to ViewType) {
	if to == m.currentView {
		return
	}
	m.telemetry.TrackViewNavigated(to.String(), m.currentView.String())
	m.currentView = to
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.loginView.SetSize(msg.Width, msg.Height)
		m.skillsView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.shouldQuit(msg) {
			m.quitting = true
			m.telemetry.TrackAppExited("tui", time.Since(m.sessionStart).Milliseconds())
			return m, tea.Quit
		}

	case views.SignedInMsg:
		m.navigate(ViewSkills)
		return m, m.skillsView.Init(m.telemetry)

	case views.SignedOutMsg:
		m.loginView.Reset()
		m.navigate(ViewLogin)
		return m, nil

	case views.SessionExpiredMsg:
		// The stored token no longer works; drop it and sign in again
		_ = m.session.Clear()
		m.loginView.Reset()
		m.navigate(ViewLogin)
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		return m, m.loginView.Update(msg)
	case ViewSkills:
		return m, m.skillsView.Update(msg)
	}
	return m, nil
}

// shouldQuit decides whether a key press exits the program. Plain "q"
// only quits when no text field owns the keyboard.
func (m *Model) shouldQuit(msg tea.KeyMsg) bool {
	if !key.Matches(msg, m.keymap.Quit) {
		return false
	}
	if msg.String() == "ctrl+c" {
		return true
	}
	if m.currentView == ViewLogin {
		return false
	}
	return !m.skillsView.TypingActive()
}

// View renders the current view.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		// First WindowSizeMsg hasn't arrived yet
		return m.styles.Muted.Render("Loading...")
	}
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewSkills:
		return m.skillsView.View()
	}
	return ""
}

// Run executes the TUI program.
func Run(cfg *config.Config, store *session.Store, client *api.Client, tc telemetry.Client) error {
	model := NewModel(cfg, store, client, tc)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
