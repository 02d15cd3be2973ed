package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunar-gate/skilldeck/internal/models"
	"github.com/lunar-gate/skilldeck/internal/tui/theme"
)

// AddDialogState represents the dialog's current state.
type AddDialogState int

const (
	// AddStateLoading is shown while the skill catalog loads.
	AddStateLoading AddDialogState = iota
	// AddStateInput is the form: skill picker plus level input.
	AddStateInput
	// AddStateError is shown when the catalog could not be loaded.
	AddStateError
)

// Dialog fields, in tab order.
const (
	fieldPicker = iota
	fieldLevel
)

// AddDialog is a popup for associating a new skill from the catalog.
type AddDialog struct {
	state      AddDialogState
	catalog    []models.Skill
	skillIdx   int
	levelInput textinput.Model
	focused    int
	loadErr    error
	formErr    string

	cancelled bool
	confirmed bool

	width  int
	height int
}

// NewAddDialog creates the add-skill dialog.
func NewAddDialog() *AddDialog {
	ti := textinput.New()
	ti.Placeholder = "Level, 0 to 100"
	ti.CharLimit = 3
	ti.Width = 20
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Current.TextMuted)

	return &AddDialog{
		state:      AddStateLoading,
		levelInput: ti,
	}
}

// Open resets the dialog for a fresh catalog load.
func (d *AddDialog) Open() {
	d.state = AddStateLoading
	d.catalog = nil
	d.skillIdx = 0
	d.focused = fieldPicker
	d.loadErr = nil
	d.formErr = ""
	d.cancelled = false
	d.confirmed = false
	d.levelInput.Reset()
	d.levelInput.Blur()
}

// SetCatalog installs the fetched skill catalog (or the fetch error).
func (d *AddDialog) SetCatalog(skills []models.Skill, err error) {
	if err != nil {
		d.state = AddStateError
		d.loadErr = err
		return
	}
	d.catalog = skills
	d.state = AddStateInput
}

// SetSize sets the dialog dimensions.
func (d *AddDialog) SetSize(w, h int) {
	d.width = w
	d.height = h
}

// Cancelled reports whether the user dismissed the dialog.
func (d *AddDialog) Cancelled() bool { return d.cancelled }

// Confirmed reports whether a valid selection was submitted.
func (d *AddDialog) Confirmed() bool { return d.confirmed }

// Selection returns the chosen catalog skill id and level string.
// Only meaningful after Confirmed() returns true.
func (d *AddDialog) Selection() (skillID int, level string) {
	if len(d.catalog) == 0 {
		return 0, ""
	}
	return d.catalog[d.skillIdx].ID, d.levelInput.Value()
}

// Update handles keyboard input.
func (d *AddDialog) Update(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		d.cancelled = true
		return nil
	}

	if d.state != AddStateInput {
		return nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		d.toggleFocus()
		return nil

	case "left":
		if d.focused == fieldPicker && d.skillIdx > 0 {
			d.skillIdx--
		}
		return nil

	case "right":
		if d.focused == fieldPicker && d.skillIdx < len(d.catalog)-1 {
			d.skillIdx++
		}
		return nil

	case "enter":
		d.submit()
		return nil
	}

	if d.focused == fieldLevel {
		var cmd tea.Cmd
		d.levelInput, cmd = d.levelInput.Update(msg)
		return cmd
	}
	return nil
}

func (d *AddDialog) toggleFocus() {
	if d.focused == fieldPicker {
		d.focused = fieldLevel
		d.levelInput.Focus()
	} else {
		d.focused = fieldPicker
		d.levelInput.Blur()
	}
}

// submit validates the form locally; nothing is sent on failure.
func (d *AddDialog) submit() {
	if len(d.catalog) == 0 {
		d.formErr = "Please choose a skill"
		return
	}
	if _, err := models.ParseLevel(d.levelInput.Value()); err != nil {
		d.formErr = "Level must be a number between 0 and 100"
		return
	}
	d.formErr = ""
	d.confirmed = true
}

// View renders the dialog.
func (d *AddDialog) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Current.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(theme.Current.Error)

	var body string
	switch d.state {
	case AddStateLoading:
		body = mutedStyle.Render("Loading skill catalog...")

	case AddStateError:
		body = errStyle.Render(fmt.Sprintf("Could not load catalog: %v", d.loadErr))

	case AddStateInput:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			d.renderPicker(),
			"",
			d.renderLevel(),
		)
		if d.formErr != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, "", errStyle.Render(d.formErr))
		}
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Add a skill"),
		mutedStyle.Render("Pick a skill and a level, enter to save, esc to cancel"),
		"",
		body,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Secondary).
		Padding(1, 2).
		Render(content)
}

func (d *AddDialog) renderPicker() string {
	label := "Skill"
	if d.focused == fieldPicker {
		label = "> Skill"
	}

	var choice string
	if len(d.catalog) == 0 {
		choice = "(catalog is empty)"
	} else {
		choice = fmt.Sprintf("◂ %s ▸  (%d/%d)", d.catalog[d.skillIdx].Name, d.skillIdx+1, len(d.catalog))
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.Current.Secondary)
	return labelStyle.Render(label) + "  " + choice
}

func (d *AddDialog) renderLevel() string {
	label := "Level"
	if d.focused == fieldLevel {
		label = "> Level"
	}
	labelStyle := lipgloss.NewStyle().Foreground(theme.Current.Secondary)
	return labelStyle.Render(label) + "  " + d.levelInput.View()
}

// CenteredView renders the dialog centered on the screen.
func (d *AddDialog) CenteredView(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, d.View())
}
