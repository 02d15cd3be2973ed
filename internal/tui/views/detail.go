package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunar-gate/skilldeck/internal/log"
	"github.com/lunar-gate/skilldeck/internal/models"
	"github.com/lunar-gate/skilldeck/internal/tui/theme"
)

// DetailPanel renders the currently selected association, fetched
// individually — never sourced from the already-loaded page. A fetch
// failure puts the panel in a "not found" state without touching the
// list.
type DetailPanel struct {
	assoc    *models.Association
	assocID  int
	loading  bool
	notFound bool

	width  int
	height int

	// Cached markdown renderer (expensive to create)
	renderer *glamour.TermRenderer
}

// NewDetailPanel creates the detail panel.
func NewDetailPanel() *DetailPanel {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	return &DetailPanel{renderer: renderer}
}

// SetSize updates the panel dimensions.
func (dp *DetailPanel) SetSize(w, h int) {
	dp.width = w
	dp.height = h
}

// StartLoading marks a new selection as loading.
func (dp *DetailPanel) StartLoading(id int) {
	dp.assocID = id
	dp.assoc = nil
	dp.loading = true
	dp.notFound = false
}

// Resolve installs the fetch result for the given association id.
// Results for a superseded selection are ignored.
func (dp *DetailPanel) Resolve(id int, assoc *models.Association, err error) {
	if id != dp.assocID {
		return
	}
	dp.loading = false
	if err != nil {
		log.Debugf("detail fetch for %d: %v", id, err)
		dp.notFound = true
		return
	}
	dp.assoc = assoc
}

// Clear empties the panel back to its placeholder state.
func (dp *DetailPanel) Clear() {
	dp.assoc = nil
	dp.assocID = 0
	dp.loading = false
	dp.notFound = false
}

// CopyImageURL puts the shown association's image URL on the clipboard.
func (dp *DetailPanel) CopyImageURL() error {
	if dp.assoc == nil {
		return fmt.Errorf("nothing selected")
	}
	return clipboard.WriteAll(dp.assoc.ImageURL)
}

// View renders the panel.
func (dp *DetailPanel) View() string {
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Italic(true)

	var body string
	switch {
	case dp.loading:
		body = mutedStyle.Render("Loading...")
	case dp.notFound:
		body = mutedStyle.Render("Skill not found")
	case dp.assoc == nil:
		body = mutedStyle.Render("Select a skill to see its details")
	default:
		body = dp.renderAssociation()
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current.Secondary).
		Padding(0, 1).
		Width(max(20, dp.width-2))

	if dp.height > 2 {
		panel = panel.Height(dp.height - 2)
	}
	return panel.Render(body)
}

func (dp *DetailPanel) renderAssociation() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Current.Primary)
	metaStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted)

	header := titleStyle.Render(dp.assoc.Name) +
		metaStyle.Render(fmt.Sprintf("  level %s", dp.assoc.Level))

	desc := dp.assoc.Description
	if dp.renderer != nil {
		if rendered, err := dp.renderer.Render(desc); err == nil {
			desc = strings.TrimSpace(rendered)
		}
	}

	parts := []string{header, desc}
	if dp.assoc.ImageURL != "" {
		parts = append(parts, metaStyle.Render(dp.assoc.ImageURL+"  (c to copy)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
