package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunar-gate/skilldeck/internal/api"
	"github.com/lunar-gate/skilldeck/internal/log"
	"github.com/lunar-gate/skilldeck/internal/models"
	"github.com/lunar-gate/skilldeck/internal/session"
	"github.com/lunar-gate/skilldeck/internal/skills"
	"github.com/lunar-gate/skilldeck/internal/telemetry"
	"github.com/lunar-gate/skilldeck/internal/tui/components"
	"github.com/lunar-gate/skilldeck/internal/tui/theme"
)

// focusArea tracks which part of the skills view receives keys.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusEdit
)

// pageSizes the "p" key cycles through.
var pageSizes = []int{3, 5, 10}

// sortSpecs the "s" key cycles through. Blank means server order.
var sortSpecs = []string{"", "nome,asc", "nome,desc", "level,asc", "level,desc"}

// SkillsView is the main screen: the paged, searchable, sortable list
// of the user's skill associations, with a detail panel underneath.
type SkillsView struct {
	client    *api.Client
	session   *session.Store
	telemetry telemetry.Client

	ctrl   *skills.Controller
	search *components.SearchBar
	detail *DetailPanel

	confirm    *components.ConfirmDialog
	addDialog  *components.AddDialog
	showDelete bool
	showAdd    bool
	deleteID   int

	levelInput textinput.Model
	editID     int

	focus     focusArea
	cursor    int
	status    string
	statusErr bool

	width  int
	height int
}

// NewSkillsView creates the skills list view.
func NewSkillsView(client *api.Client, store *session.Store, pageSize int) *SkillsView {
	levelInput := textinput.New()
	levelInput.Placeholder = "0-100"
	levelInput.CharLimit = 3
	levelInput.Width = 8

	return &SkillsView{
		client:     client,
		session:    store,
		ctrl:       skills.NewController(store, pageSize),
		search:     components.NewSearchBar(),
		detail:     NewDetailPanel(),
		confirm:    components.NewConfirmDialog("Delete skill", ""),
		addDialog:  components.NewAddDialog(),
		levelInput: levelInput,
	}
}

// Init sets the telemetry client and issues the first list fetch.
func (sv *SkillsView) Init(tc telemetry.Client) tea.Cmd {
	sv.telemetry = tc
	fetch, err := sv.ctrl.Refresh()
	if err != nil {
		return sv.authCmd(err)
	}
	return sv.fetchCmd(fetch)
}

// SetSize updates the view dimensions.
func (sv *SkillsView) SetSize(w, h int) {
	sv.width = w
	sv.height = h
	sv.search.SetWidth(w - 4)
	sv.addDialog.SetSize(w, h)
	sv.detail.SetSize(w, sv.detailHeight())
}

// detailHeight gives the detail panel the bottom ~30% of the screen.
func (sv *SkillsView) detailHeight() int {
	h := sv.height * 3 / 10
	if h < 6 {
		h = 6
	}
	return h
}

// fetchCmd issues a list request for a controller-stamped fetch.
func (sv *SkillsView) fetchCmd(fetch *skills.Fetch) tea.Cmd {
	if fetch == nil {
		return nil
	}
	client := sv.client
	f := *fetch
	return func() tea.Msg {
		page, err := client.ListAssociations(context.Background(), api.ListRequest{
			UserID: f.UserID,
			Page:   f.Query.Page,
			Size:   f.Query.Size,
			Search: f.Query.Search,
			Sort:   f.Query.Sort,
		})
		return pageLoadedMsg{Seq: f.Seq, Page: page, Err: err}
	}
}

// authCmd turns a missing or rejected session into a redirect to the
// sign-in flow. Returns nil for other errors.
func (sv *SkillsView) authCmd(err error) tea.Cmd {
	if errors.Is(err, skills.ErrNoSession) || errors.Is(err, api.ErrNoToken) || errors.Is(err, api.ErrUnauthorized) {
		return func() tea.Msg { return SessionExpiredMsg{} }
	}
	return nil
}

func (sv *SkillsView) setError(msg string) {
	sv.status = msg
	sv.statusErr = true
	sv.telemetry.TrackErrorDisplayed("request_failed", "skills")
}

func (sv *SkillsView) setStatus(msg string) {
	sv.status = msg
	sv.statusErr = false
}

// TypingActive reports whether a text field or overlay currently owns
// the keyboard, so plain letters like "q" must not act as shortcuts.
func (sv *SkillsView) TypingActive() bool {
	return sv.focus == focusSearch || sv.focus == focusEdit || sv.showAdd
}

// Update handles input and network results.
func (sv *SkillsView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return sv.handleKey(msg)

	case pageLoadedMsg:
		return sv.handlePageLoaded(msg)

	case detailLoadedMsg:
		sv.detail.Resolve(msg.ID, msg.Assoc, msg.Err)
		if cmd := sv.authCmd(msg.Err); cmd != nil {
			return cmd
		}
		return nil

	case levelSavedMsg:
		sv.ctrl.ClearPending(msg.ID)
		if msg.Err != nil {
			sv.telemetry.TrackLevelUpdated(false)
			if cmd := sv.authCmd(msg.Err); cmd != nil {
				return cmd
			}
			sv.setError("Could not save the level. Please try again.")
			return nil
		}
		sv.telemetry.TrackLevelUpdated(true)
		sv.setStatus("Level saved.")
		return sv.issue(sv.ctrl.Refresh())

	case deleteDoneMsg:
		if msg.Err != nil {
			sv.telemetry.TrackAssociationDeleted(false)
			if cmd := sv.authCmd(msg.Err); cmd != nil {
				return cmd
			}
			sv.setError("Could not delete the skill. Please try again.")
			return nil
		}
		sv.telemetry.TrackAssociationDeleted(true)
		sv.setStatus("Skill removed.")
		if sv.ctrl.SelectedID() == msg.ID {
			sv.ctrl.Select(0)
			sv.detail.Clear()
		}
		return sv.issue(sv.ctrl.Refresh())

	case catalogLoadedMsg:
		sv.addDialog.SetCatalog(msg.Skills, msg.Err)
		if cmd := sv.authCmd(msg.Err); cmd != nil {
			return cmd
		}
		return nil

	case associationCreatedMsg:
		if msg.Err != nil {
			sv.telemetry.TrackAssociationCreated(false)
			if cmd := sv.authCmd(msg.Err); cmd != nil {
				return cmd
			}
			sv.setError("Could not add the skill. Please try again.")
			return nil
		}
		sv.telemetry.TrackAssociationCreated(true)
		sv.setStatus("Skill added.")
		return sv.issue(sv.ctrl.Refresh())
	}
	return nil
}

func (sv *SkillsView) handlePageLoaded(msg pageLoadedMsg) tea.Cmd {
	follow, err := sv.ctrl.Apply(msg.Seq, msg.Page, msg.Err)
	if err != nil {
		if cmd := sv.authCmd(err); cmd != nil {
			return cmd
		}
		log.Debugf("list fetch: %v", err)
		sv.setError("Could not load skills. Please try again.")
		return nil
	}
	if follow != nil {
		return sv.fetchCmd(follow)
	}

	// A fresh page clears any stale error banner
	if sv.statusErr {
		sv.status = ""
		sv.statusErr = false
	}

	// Keep the cursor on a real row after the page changed
	if n := len(sv.ctrl.Items()); sv.cursor >= n {
		sv.cursor = n - 1
	}
	if sv.cursor < 0 {
		sv.cursor = 0
	}
	return nil
}

// issue dispatches a controller-returned fetch, routing a missing
// session to the sign-in flow.
func (sv *SkillsView) issue(fetch *skills.Fetch, err error) tea.Cmd {
	if err != nil {
		return sv.authCmd(err)
	}
	return sv.fetchCmd(fetch)
}

func (sv *SkillsView) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Overlays swallow all keys while open
	if sv.showDelete {
		return sv.handleDeleteKey(msg)
	}
	if sv.showAdd {
		return sv.handleAddKey(msg)
	}

	switch sv.focus {
	case focusSearch:
		return sv.handleSearchKey(msg)
	case focusEdit:
		return sv.handleEditKey(msg)
	}
	return sv.handleListKey(msg)
}

func (sv *SkillsView) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Discard the draft, restore the committed term
		sv.search.SetValue(sv.ctrl.Query().Search)
		sv.search.Blur()
		sv.focus = focusList
		return nil

	case "enter":
		sv.search.Blur()
		sv.focus = focusList
		fetch, err := sv.ctrl.CommitSearch(sv.search.Value())
		if fetch != nil {
			sv.telemetry.TrackSearchPerformed(sv.ctrl.TotalPages())
		}
		return sv.issue(fetch, err)
	}
	return sv.search.HandleKey(msg)
}

func (sv *SkillsView) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		sv.focus = focusList
		sv.levelInput.Blur()
		return nil

	case "enter":
		value := sv.levelInput.Value()
		if _, err := models.ParseLevel(value); err != nil {
			sv.setError("Level must be a number between 0 and 100.")
			return nil
		}
		id := sv.editID
		sv.focus = focusList
		sv.levelInput.Blur()
		sv.ctrl.StageEdit(id, value)
		sv.setStatus("Saving...")

		client := sv.client
		userID := sv.session.UserID()
		return func() tea.Msg {
			_, err := client.UpdateAssociation(context.Background(), id, userID, value)
			return levelSavedMsg{ID: id, Err: err}
		}
	}
	var cmd tea.Cmd
	sv.levelInput, cmd = sv.levelInput.Update(msg)
	return cmd
}

func (sv *SkillsView) handleDeleteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "n":
		sv.showDelete = false
		return nil

	case "left", "right", "tab", "h", "l":
		sv.confirm.Toggle()
		return nil

	case "y":
		sv.confirm.SelectYes()
		return sv.confirmDelete()

	case "enter":
		return sv.confirmDelete()
	}
	return nil
}

func (sv *SkillsView) confirmDelete() tea.Cmd {
	sv.showDelete = false
	if !sv.confirm.IsYesSelected() {
		return nil
	}
	id := sv.deleteID
	client := sv.client
	sv.setStatus("Deleting...")
	return func() tea.Msg {
		err := client.DeleteAssociation(context.Background(), id)
		return deleteDoneMsg{ID: id, Err: err}
	}
}

func (sv *SkillsView) handleAddKey(msg tea.KeyMsg) tea.Cmd {
	cmd := sv.addDialog.Update(msg)
	if sv.addDialog.Cancelled() {
		sv.showAdd = false
		return nil
	}
	if sv.addDialog.Confirmed() {
		sv.showAdd = false
		skillID, level := sv.addDialog.Selection()
		client := sv.client
		userID := sv.session.UserID()
		sv.setStatus("Adding...")
		return func() tea.Msg {
			_, err := client.CreateAssociation(context.Background(), userID, skillID, level)
			return associationCreatedMsg{Err: err}
		}
	}
	return cmd
}

func (sv *SkillsView) handleListKey(msg tea.KeyMsg) tea.Cmd {
	items := sv.ctrl.Items()

	switch msg.String() {
	case "/":
		sv.focus = focusSearch
		sv.search.Focus()
		return textinput.Blink

	case "up", "k":
		if sv.cursor > 0 {
			sv.cursor--
		}
		return nil

	case "down", "j":
		if sv.cursor < len(items)-1 {
			sv.cursor++
		}
		return nil

	case "left", "h":
		fetch, err := sv.ctrl.PrevPage()
		if fetch != nil {
			sv.telemetry.TrackPaginationUsed("prev", fetch.Query.Page)
		}
		return sv.issue(fetch, err)

	case "right", "l":
		fetch, err := sv.ctrl.NextPage()
		if fetch != nil {
			sv.telemetry.TrackPaginationUsed("next", fetch.Query.Page)
		}
		return sv.issue(fetch, err)

	case "s":
		spec := nextSort(sv.ctrl.Query().Sort)
		fetch, err := sv.ctrl.SetSort(spec)
		if fetch != nil {
			sv.telemetry.TrackSortChanged(spec)
		}
		return sv.issue(fetch, err)

	case "p":
		size := nextPageSize(sv.ctrl.Query().Size)
		fetch, err := sv.ctrl.SetPageSize(size)
		if fetch != nil {
			sv.telemetry.TrackPageSizeChanged(size)
		}
		return sv.issue(fetch, err)

	case "enter":
		if sv.cursor >= len(items) {
			return nil
		}
		id := items[sv.cursor].ID
		sv.ctrl.Select(id)
		sv.detail.StartLoading(id)
		sv.telemetry.TrackDetailViewed()
		client := sv.client
		return func() tea.Msg {
			assoc, err := client.GetAssociation(context.Background(), id)
			return detailLoadedMsg{ID: id, Assoc: assoc, Err: err}
		}

	case "esc":
		sv.ctrl.Select(0)
		sv.detail.Clear()
		return nil

	case "e":
		if sv.cursor >= len(items) {
			return nil
		}
		item := items[sv.cursor]
		sv.editID = item.ID
		sv.levelInput.SetValue(sv.ctrl.DisplayLevel(item))
		sv.levelInput.Focus()
		sv.focus = focusEdit
		return textinput.Blink

	case "d":
		if sv.cursor >= len(items) {
			return nil
		}
		item := items[sv.cursor]
		sv.deleteID = item.ID
		sv.confirm.SetMessage(fmt.Sprintf("Remove %q from your skills?", item.Name))
		sv.showDelete = true
		return nil

	case "a":
		sv.showAdd = true
		sv.addDialog.Open()
		client := sv.client
		return func() tea.Msg {
			catalog, err := client.ListSkills(context.Background())
			return catalogLoadedMsg{Skills: catalog, Err: err}
		}

	case "r":
		return sv.issue(sv.ctrl.Refresh())

	case "c":
		if err := sv.detail.CopyImageURL(); err != nil {
			sv.setError("Nothing to copy.")
		} else {
			sv.setStatus("Image URL copied.")
		}
		return nil

	case "ctrl+o":
		if err := sv.session.Clear(); err != nil {
			log.Debugf("clear session: %v", err)
		}
		sv.telemetry.TrackSignOut()
		return func() tea.Msg { return SignedOutMsg{} }
	}
	return nil
}

// nextSort cycles through the supported sort specs.
func nextSort(current string) string {
	for i, spec := range sortSpecs {
		if spec == current {
			return sortSpecs[(i+1)%len(sortSpecs)]
		}
	}
	return sortSpecs[0]
}

// nextPageSize cycles through the supported page sizes.
func nextPageSize(current int) int {
	for i, size := range pageSizes {
		if size == current {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}
	return pageSizes[0]
}

// View renders the skills screen.
func (sv *SkillsView) View() string {
	if sv.showAdd {
		return sv.addDialog.CenteredView(sv.width, sv.height)
	}
	if sv.showDelete {
		return sv.confirm.CenteredView(sv.width, sv.height)
	}

	parts := []string{
		sv.renderHeader(),
		sv.search.View(sv.focus == focusSearch),
		sv.renderList(),
		sv.renderStatus(),
		sv.detail.View(),
		sv.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (sv *SkillsView) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Current.Primary)
	metaStyle := lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Italic(true)

	q := sv.ctrl.Query()
	total := sv.ctrl.TotalPages()
	pageInfo := "—"
	if total > 0 {
		pageInfo = fmt.Sprintf("page %d/%d", q.Page+1, total)
	}

	sort := q.Sort
	if sort == "" {
		sort = "unsorted"
	}

	left := titleStyle.Render("Your skills")
	right := metaStyle.Render(fmt.Sprintf("%s • %d per page • %s", pageInfo, q.Size, sort))
	gap := sv.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

func (sv *SkillsView) renderList() string {
	items := sv.ctrl.Items()
	if sv.ctrl.Page() == nil {
		return lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Padding(1, 2).Render("Loading skills...")
	}
	if len(items) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Padding(1, 2).Render("No skills found.")
	}

	rowStyle := lipgloss.NewStyle().Foreground(theme.Current.Text).Padding(0, 1)
	selStyle := lipgloss.NewStyle().
		Foreground(theme.Current.TextHighlight).
		Background(theme.Current.Overlay).
		Bold(true).
		Padding(0, 1)
	pendingStyle := lipgloss.NewStyle().Foreground(theme.Current.Warning).Bold(true)

	rows := make([]string, 0, len(items))
	for i, item := range items {
		level := sv.ctrl.DisplayLevel(item)
		levelText := fmt.Sprintf("level %s", level)
		if _, pending := sv.ctrl.PendingLevel(item.ID); pending {
			levelText = pendingStyle.Render(levelText + " *")
		}

		line := fmt.Sprintf("%-30s %s", item.Name, levelText)
		if sv.focus == focusEdit && item.ID == sv.editID {
			line = fmt.Sprintf("%-30s level: %s", item.Name, sv.levelInput.View())
		}

		if i == sv.cursor {
			rows = append(rows, selStyle.Render(line))
		} else {
			rows = append(rows, rowStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (sv *SkillsView) renderStatus() string {
	if sv.ctrl.InFlight() && sv.status == "" {
		return lipgloss.NewStyle().Foreground(theme.Current.Info).Padding(0, 1).Render("Loading...")
	}
	if sv.status == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(theme.Current.Success).Padding(0, 1)
	if sv.statusErr {
		style = lipgloss.NewStyle().Foreground(theme.Current.Error).Bold(true).Padding(0, 1)
	}
	return style.Render(sv.status)
}

func (sv *SkillsView) renderFooter() string {
	help := "/ search • s sort • p size • ←→ pages • enter detail • e edit • a add • d delete • c copy • ctrl+o log out • q quit"
	if sv.focus == focusSearch {
		help = "enter: apply search • esc: cancel"
	}
	if sv.focus == focusEdit {
		help = "enter: save level • esc: cancel"
	}
	return lipgloss.NewStyle().Foreground(theme.Current.TextMuted).Padding(0, 1).Render(help)
}
