package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunar-gate/skilldeck/internal/models"
)

func testCatalog() []models.Skill {
	return []models.Skill{
		{ID: 1, Name: "Go"},
		{ID: 2, Name: "SQL"},
		{ID: 3, Name: "Kubernetes"},
	}
}

func pressKey(d *AddDialog, k string) {
	switch k {
	case "enter":
		d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		d.Update(tea.KeyMsg{Type: tea.KeyTab})
	case "left":
		d.Update(tea.KeyMsg{Type: tea.KeyLeft})
	case "right":
		d.Update(tea.KeyMsg{Type: tea.KeyRight})
	default:
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func TestAddDialogEscapeCancels(t *testing.T) {
	d := NewAddDialog()
	d.Open()

	pressKey(d, "esc")

	assert.True(t, d.Cancelled())
	assert.False(t, d.Confirmed())
}

func TestAddDialogSubmitValidSelection(t *testing.T) {
	d := NewAddDialog()
	d.Open()
	d.SetCatalog(testCatalog(), nil)

	pressKey(d, "right") // move to SQL
	pressKey(d, "tab")   // focus level input
	pressKey(d, "7")
	pressKey(d, "5")
	pressKey(d, "enter")

	require.True(t, d.Confirmed())
	skillID, level := d.Selection()
	assert.Equal(t, 2, skillID)
	assert.Equal(t, "75", level)
}

func TestAddDialogRejectsInvalidLevel(t *testing.T) {
	d := NewAddDialog()
	d.Open()
	d.SetCatalog(testCatalog(), nil)

	pressKey(d, "tab")
	pressKey(d, "abc")
	pressKey(d, "enter")

	assert.False(t, d.Confirmed(), "a non-numeric level must not submit")
	assert.False(t, d.Cancelled())
}

func TestAddDialogRejectsEmptyCatalog(t *testing.T) {
	d := NewAddDialog()
	d.Open()
	d.SetCatalog(nil, nil)

	pressKey(d, "tab")
	pressKey(d, "50")
	pressKey(d, "enter")

	assert.False(t, d.Confirmed(), "nothing to associate when the catalog is empty")
}

func TestAddDialogPickerStaysInBounds(t *testing.T) {
	d := NewAddDialog()
	d.Open()
	d.SetCatalog(testCatalog(), nil)

	pressKey(d, "left") // already at the first entry
	pressKey(d, "right")
	pressKey(d, "right")
	pressKey(d, "right") // already at the last entry
	pressKey(d, "tab")
	pressKey(d, "10")
	pressKey(d, "enter")

	require.True(t, d.Confirmed())
	skillID, _ := d.Selection()
	assert.Equal(t, 3, skillID)
}

func TestAddDialogCatalogErrorState(t *testing.T) {
	d := NewAddDialog()
	d.Open()
	d.SetCatalog(nil, assert.AnError)

	// Form keys do nothing in the error state
	pressKey(d, "enter")
	assert.False(t, d.Confirmed())

	// But escape still closes the dialog
	pressKey(d, "esc")
	assert.True(t, d.Cancelled())
}
