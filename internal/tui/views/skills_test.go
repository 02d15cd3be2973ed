package views

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/models"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
)

func newTestSkillsView(t *testing.T) *SkillsView {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.SetCredentials("jwt-token", "7"))

	client, err := api.New("http://127.0.0.1:1/", store)
	require.NoError(t, err)

	sv := NewSkillsView(client, store, 3)
	sv.SetSize(100, 40)

	// Init stamps the first fetch (seq 1); the command is not executed,
	// the tests inject the response directly.
	cmd := sv.Init(telemetry.New(nil))
	require.NotNil(t, cmd)
	return sv
}

func testPage() *models.Page {
	return &models.Page{
		TotalPages: 2,
		Items: []models.Association{
			{ID: 10, Name: "Go", Level: "80"},
			{ID: 11, Name: "SQL", Level: "60"},
		},
	}
}

func TestSkillsViewRendersLoadedPage(t *testing.T) {
	sv := newTestSkillsView(t)

	sv.Update(pageLoadedMsg{Seq: 1, Page: testPage()})

	out := sv.View()
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "SQL")
	assert.Contains(t, out, "page 1/2")
}

func TestSkillsViewShowsFetchError(t *testing.T) {
	sv := newTestSkillsView(t)

	sv.Update(pageLoadedMsg{Seq: 1, Err: assert.AnError})

	assert.Contains(t, sv.View(), "Could not load skills")
}

func TestSkillsViewIgnoresStaleResponse(t *testing.T) {
	sv := newTestSkillsView(t)
	sv.Update(pageLoadedMsg{Seq: 1, Page: testPage()})

	// A stale response (older sequence) must not replace the page
	stale := &models.Page{TotalPages: 1, Items: []models.Association{{ID: 99, Name: "Stale", Level: "1"}}}
	sv.Update(pageLoadedMsg{Seq: 0, Page: stale})

	out := sv.View()
	assert.Contains(t, out, "Go")
	assert.NotContains(t, out, "Stale")
}

func TestSkillsViewClampsCursorAfterShrink(t *testing.T) {
	sv := newTestSkillsView(t)
	sv.Update(pageLoadedMsg{Seq: 1, Page: testPage()})
	sv.cursor = 1

	shrunk := &models.Page{TotalPages: 2, Items: []models.Association{{ID: 10, Name: "Go", Level: "80"}}}
	sv.Update(pageLoadedMsg{Seq: 1, Page: shrunk})

	assert.Equal(t, 0, sv.cursor)
}

func TestSkillsViewDeleteFailureKeepsList(t *testing.T) {
	sv := newTestSkillsView(t)
	sv.Update(pageLoadedMsg{Seq: 1, Page: testPage()})

	cmd := sv.Update(deleteDoneMsg{ID: 10, Err: assert.AnError})

	assert.Nil(t, cmd, "a failed delete must not trigger a refetch")
	out := sv.View()
	assert.Contains(t, out, "Go", "list stays intact after a failed delete")
	assert.Contains(t, out, "Could not delete")
}

func TestSkillsViewPendingEditMarkedInList(t *testing.T) {
	sv := newTestSkillsView(t)
	sv.Update(pageLoadedMsg{Seq: 1, Page: testPage()})

	sv.ctrl.StageEdit(10, "95")

	out := sv.View()
	assert.Contains(t, out, "level 95", "staged level shows in place of the fetched one")
}
