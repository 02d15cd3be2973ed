package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lunar-gate/skilldeck/internal/tui/theme"
)

// ConfirmDialog is a simple yes/no confirmation dialog.
type ConfirmDialog struct {
	title    string
	message  string
	selected bool // false = no, true = yes
}

// NewConfirmDialog creates a new confirmation dialog.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		title:    title,
		message:  message,
		selected: false, // Default to "No"
	}
}

// SetMessage replaces the dialog message and resets the selection.
func (c *ConfirmDialog) SetMessage(message string) {
	c.message = message
	c.selected = false
}

// SelectYes selects the "Yes" option.
func (c *ConfirmDialog) SelectYes() {
	c.selected = true
}

// SelectNo selects the "No" option.
func (c *ConfirmDialog) SelectNo() {
	c.selected = false
}

// IsYesSelected returns whether "Yes" is selected.
func (c *ConfirmDialog) IsYesSelected() bool {
	return c.selected
}

// Toggle switches between Yes and No.
func (c *ConfirmDialog) Toggle() {
	c.selected = !c.selected
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	yesStyle := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Padding(0, 2)

	noStyle := lipgloss.NewStyle().
		Foreground(theme.Current.TextMuted).
		Padding(0, 2)

	active := lipgloss.NewStyle().
		Background(theme.Current.Accent).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}).
		Padding(0, 2).
		Bold(true)

	if c.selected {
		yesStyle = active
	} else {
		noStyle = active
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		"[ ",
		yesStyle.Render("Yes"),
		" ] [ ",
		noStyle.Render("No"),
		" ]",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Secondary).
		Padding(1, 2).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				lipgloss.NewStyle().Bold(true).Render(c.title),
				"",
				c.message,
				"",
				buttons,
			),
		)
}

// CenteredView renders the dialog centered on the screen.
func (c *ConfirmDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, c.View())
}
