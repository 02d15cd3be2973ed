package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunar-gate/skilldeck/internal/tui/theme"
)

// SearchBar is the input component for filtering the skills list.
// It only holds draft text; the query takes effect when the parent
// commits it with enter.
type SearchBar struct {
	input textinput.Model
}

// NewSearchBar creates a new search bar component.
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search skills (enter to apply)"
	ti.CharLimit = 100
	ti.Width = 40

	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Current.Text)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Current.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Current.Primary)

	return &SearchBar{input: ti}
}

// HandleKey passes a key message to the underlying textinput.
// Returns a tea.Cmd that MUST be executed by the parent for cursor blink.
func (sb *SearchBar) HandleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	sb.input, cmd = sb.input.Update(msg)
	return cmd
}

// View renders the search bar.
func (sb *SearchBar) View(focused bool) string {
	border := theme.Current.Overlay
	if focused {
		border = theme.Current.Accent
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return boxStyle.Render(sb.input.View())
}

// Focus sets focus on the search bar.
func (sb *SearchBar) Focus() {
	sb.input.Focus()
}

// Blur removes focus from the search bar.
func (sb *SearchBar) Blur() {
	sb.input.Blur()
}

// Focused returns true if the search bar has focus.
func (sb *SearchBar) Focused() bool {
	return sb.input.Focused()
}

// Value returns the current draft text.
func (sb *SearchBar) Value() string {
	return sb.input.Value()
}

// SetValue sets the draft text.
func (sb *SearchBar) SetValue(v string) {
	sb.input.SetValue(v)
}

// Clear clears the draft text.
func (sb *SearchBar) Clear() {
	sb.input.Reset()
}

// SetWidth sets the width of the search bar.
func (sb *SearchBar) SetWidth(w int) {
	if w > 4 {
		sb.input.Width = w - 4
	}
}
