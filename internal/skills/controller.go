// Package skills owns the view state of the associations list: paging,
// search, sort, selection and staged level edits.
//
// The Controller is deliberately free of transport and UI concerns. A
// query-changing operation returns a *Fetch describing the single
// request the caller must issue; the response comes back through Apply.
// Responses are stamped with a sequence number and applied
// last-issued-wins: a response for a superseded fetch is dropped, so
// the visible page always corresponds to the newest committed query.
package skills

import (
	"errors"
	"strings"

	"github.com/lunar-gate/skilldeck/internal/models"
)

// ErrNoSession is returned when a fetch is requested without a stored
// session token. Callers redirect to the sign-in flow instead of
// issuing the request.
var ErrNoSession = errors.New("not signed in")

// DefaultPageSize is used when the configured size is invalid.
const DefaultPageSize = 3

// SessionReader is the read-only session contract the controller needs.
type SessionReader interface {
	Token() (string, bool)
	UserID() string
}

// Query is the committed (effective) list query. Draft text the user
// is still typing lives in the presentation layer, not here.
type Query struct {
	Page   int
	Size   int
	Search string
	Sort   string
}

// Fetch describes one list request the caller must issue.
type Fetch struct {
	Seq    uint64
	UserID string
	Query  Query
}

// Controller maintains the list query and keeps the page result,
// selection and pending edits consistent with user intent.
type Controller struct {
	session SessionReader

	query    Query
	page     *models.Page
	selected int
	pending  map[int]string

	seq      uint64 // newest issued fetch
	inFlight bool
}

// NewController creates a controller with the given initial page size.
func NewController(session SessionReader, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		session: session,
		query:   Query{Size: pageSize},
		pending: map[int]string{},
	}
}

// Query returns the current committed query.
func (c *Controller) Query() Query { return c.query }

// Page returns the last applied page result, or nil before any fetch.
func (c *Controller) Page() *models.Page { return c.page }

// Items returns the current page's associations.
func (c *Controller) Items() []models.Association {
	if c.page == nil {
		return nil
	}
	return c.page.Items
}

// TotalPages returns the server-reported page count (0 before any
// fetch or when the result set is empty).
func (c *Controller) TotalPages() int {
	if c.page == nil {
		return 0
	}
	return c.page.TotalPages
}

// InFlight reports whether a fetch is outstanding.
func (c *Controller) InFlight() bool { return c.inFlight }

// issue stamps a new fetch for the current query. It fails with
// ErrNoSession when no token is stored.
func (c *Controller) issue() (*Fetch, error) {
	if _, ok := c.session.Token(); !ok {
		return nil, ErrNoSession
	}
	c.seq++
	c.inFlight = true
	return &Fetch{Seq: c.seq, UserID: c.session.UserID(), Query: c.query}, nil
}

// CommitSearch sets the effective search term (trimmed) and resets to
// page 0. Committing an unchanged term is a no-op.
func (c *Controller) CommitSearch(text string) (*Fetch, error) {
	term := strings.TrimSpace(text)
	if term == c.query.Search {
		return nil, nil
	}
	c.query.Search = term
	c.query.Page = 0
	return c.issue()
}

// SetSort sets the sort spec ("<field>,<asc|desc>" or "" for unsorted)
// and resets to page 0. Setting the current spec is a no-op.
func (c *Controller) SetSort(spec string) (*Fetch, error) {
	spec = strings.TrimSpace(spec)
	if spec == c.query.Sort {
		return nil, nil
	}
	c.query.Sort = spec
	c.query.Page = 0
	return c.issue()
}

// SetPageSize sets the items-per-page and resets to page 0.
// Non-positive sizes are invalid and ignored.
func (c *Controller) SetPageSize(n int) (*Fetch, error) {
	if n <= 0 || n == c.query.Size {
		return nil, nil
	}
	c.query.Size = n
	c.query.Page = 0
	return c.issue()
}

// NextPage advances one page. It is a no-op at the last page, before
// the first result arrives, or while a fetch is in flight.
func (c *Controller) NextPage() (*Fetch, error) {
	if c.inFlight || c.query.Page >= c.TotalPages()-1 {
		return nil, nil
	}
	c.query.Page++
	return c.issue()
}

// PrevPage goes back one page. It is a no-op at page 0 or while a
// fetch is in flight.
func (c *Controller) PrevPage() (*Fetch, error) {
	if c.inFlight || c.query.Page <= 0 {
		return nil, nil
	}
	c.query.Page--
	return c.issue()
}

// Refresh re-issues the fetch for the current query. Used after a
// delete or a committed edit.
func (c *Controller) Refresh() (*Fetch, error) {
	return c.issue()
}

// Apply records the outcome of a fetch. Stale responses (superseded by
// a newer fetch) are dropped. On failure the prior page is kept. When
// the response shrinks totalPages below the current page, the page is
// clamped and a single follow-up fetch is returned.
func (c *Controller) Apply(seq uint64, page *models.Page, err error) (*Fetch, error) {
	if seq != c.seq {
		// A newer fetch is outstanding; this response no longer matters.
		return nil, nil
	}
	c.inFlight = false

	if err != nil {
		return nil, err
	}

	c.page = page

	// Clamp the page index into [0, totalPages-1] and refetch if the
	// current position fell off the end (e.g. last item of the last
	// page was deleted).
	switch {
	case page.TotalPages <= 0:
		c.query.Page = 0
	case c.query.Page > page.TotalPages-1:
		c.query.Page = page.TotalPages - 1
		return c.issue()
	}
	return nil, nil
}

// Select records the selected association id for the detail panel.
// It does not affect the list query. Zero clears the selection.
func (c *Controller) Select(id int) { c.selected = id }

// SelectedID returns the selected association id, 0 when none.
func (c *Controller) SelectedID() int { return c.selected }

// StageEdit stages a not-yet-submitted level value for one row. It
// never touches the authoritative item list.
func (c *Controller) StageEdit(id int, level string) {
	c.pending[id] = level
}

// PendingLevel returns the staged level for a row, if any.
func (c *Controller) PendingLevel(id int) (string, bool) {
	level, ok := c.pending[id]
	return level, ok
}

// ClearPending drops the staged edit for one row. Called after a
// submit completes, whether it succeeded or failed.
func (c *Controller) ClearPending(id int) {
	delete(c.pending, id)
}

// DisplayLevel merges the staged edit over the authoritative level at
// render time.
func (c *Controller) DisplayLevel(a models.Association) string {
	if level, ok := c.pending[a.ID]; ok {
		return level
	}
	return a.Level
}

// HasPending reports whether any row has a staged edit.
func (c *Controller) HasPending() bool { return len(c.pending) > 0 }
