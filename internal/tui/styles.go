package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lunar-gate/skilldeck/internal/tui/theme"
)

// Styles contains all reusable Lipgloss styles for the TUI.
type Styles struct {
	// Header styles
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderUser  lipgloss.Style

	// List styles
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ItemTitle        lipgloss.Style
	ItemDesc         lipgloss.Style
	ItemMeta         lipgloss.Style
	PendingLevel     lipgloss.Style

	// Panel styles
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style

	// Footer styles
	Footer lipgloss.Style

	// Text styles
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	Highlight lipgloss.Style

	// Status indicators
	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style

	// Form styles
	Label      lipgloss.Style
	FieldError lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles using the current theme.
func DefaultStyles() Styles {
	th := theme.Current

	return Styles{
		Header: lipgloss.NewStyle().
			Padding(0, 1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(th.Primary).
			Bold(true),

		HeaderUser: lipgloss.NewStyle().
			Foreground(th.TextMuted).
			Italic(true),

		ListItem: lipgloss.NewStyle().
			Foreground(th.Text).
			Padding(0, 1),

		ListItemSelected: lipgloss.NewStyle().
			Foreground(th.TextHighlight).
			Background(th.Overlay).
			Padding(0, 1).
			Bold(true),

		ItemTitle: lipgloss.NewStyle().
			Foreground(th.TextHighlight).
			Bold(true),

		ItemDesc: lipgloss.NewStyle().
			Foreground(th.Text),

		ItemMeta: lipgloss.NewStyle().
			Foreground(th.TextMuted).
			Italic(true),

		PendingLevel: lipgloss.NewStyle().
			Foreground(th.Warning).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Overlay).
			Padding(0, 1),

		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Secondary).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(th.TextMuted).
			Padding(0, 1),

		Normal: lipgloss.NewStyle().
			Foreground(th.Text),

		Muted: lipgloss.NewStyle().
			Foreground(th.TextMuted),

		Bold: lipgloss.NewStyle().
			Foreground(th.Text).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(th.Accent).
			Bold(true),

		StatusOK: lipgloss.NewStyle().
			Foreground(th.Success).
			Bold(true),

		StatusError: lipgloss.NewStyle().
			Foreground(th.Error).
			Bold(true),

		StatusInfo: lipgloss.NewStyle().
			Foreground(th.Info),

		Label: lipgloss.NewStyle().
			Foreground(th.Secondary),

		FieldError: lipgloss.NewStyle().
			Foreground(th.Error),
	}
}
