package telemetry

import (
	"runtime"

	"github.com/lunar-gate/skilldeck/pkg/version"
)

// Event names - lifecycle
const (
	EventAppStarted         = "app_started"
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
)

// Event names - auth
const (
	EventSignIn  = "sign_in"
	EventSignUp  = "sign_up"
	EventSignOut = "sign_out"
)

// Event names - skills list
const (
	EventViewNavigated      = "view_navigated"
	EventSearchPerformed    = "search_performed"
	EventSortChanged        = "sort_changed"
	EventPageSizeChanged    = "page_size_changed"
	EventPaginationUsed     = "pagination_used"
	EventLevelUpdated       = "level_updated"
	EventAssociationCreated = "association_created"
	EventAssociationDeleted = "association_deleted"
	EventDetailViewed       = "detail_viewed"
	EventErrorDisplayed     = "error_displayed"
)

// baseProperties returns common properties for all events.
// Query text, credentials and item names are never tracked.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
		"version": version.Short(),
	}
}

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(mode string, signedIn bool) {
	props := baseProperties()
	props["mode"] = mode
	props["signed_in"] = signedIn
	c.Track(EventAppStarted, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	c.Track(EventAppExited, props)
}

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks CLI command failures by error class.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackSignIn tracks sign-in attempts.
func (c *posthogClient) TrackSignIn(success bool) {
	props := baseProperties()
	props["success"] = success
	c.Track(EventSignIn, props)
}

// TrackSignUp tracks sign-up attempts.
func (c *posthogClient) TrackSignUp(success bool) {
	props := baseProperties()
	props["success"] = success
	c.Track(EventSignUp, props)
}

// TrackSignOut tracks log-out.
func (c *posthogClient) TrackSignOut() {
	c.Track(EventSignOut, baseProperties())
}

// TrackViewNavigated tracks view changes in the TUI.
func (c *posthogClient) TrackViewNavigated(viewName, previousView string) {
	props := baseProperties()
	props["view_name"] = viewName
	props["previous_view"] = previousView
	c.Track(EventViewNavigated, props)
}

// TrackSearchPerformed tracks a committed search (never the query text).
func (c *posthogClient) TrackSearchPerformed(resultPages int) {
	props := baseProperties()
	props["result_pages"] = resultPages
	c.Track(EventSearchPerformed, props)
}

// TrackSortChanged tracks sort selection.
func (c *posthogClient) TrackSortChanged(sortSpec string) {
	props := baseProperties()
	props["sort_spec"] = sortSpec
	c.Track(EventSortChanged, props)
}

// TrackPageSizeChanged tracks items-per-page changes.
func (c *posthogClient) TrackPageSizeChanged(size int) {
	props := baseProperties()
	props["page_size"] = size
	c.Track(EventPageSizeChanged, props)
}

// TrackPaginationUsed tracks pager interactions.
func (c *posthogClient) TrackPaginationUsed(direction string, pageNumber int) {
	props := baseProperties()
	props["direction"] = direction
	props["page_number"] = pageNumber
	c.Track(EventPaginationUsed, props)
}

// TrackLevelUpdated tracks committed level edits.
func (c *posthogClient) TrackLevelUpdated(success bool) {
	props := baseProperties()
	props["success"] = success
	c.Track(EventLevelUpdated, props)
}

// TrackAssociationCreated tracks new associations.
func (c *posthogClient) TrackAssociationCreated(success bool) {
	props := baseProperties()
	props["success"] = success
	c.Track(EventAssociationCreated, props)
}

// TrackAssociationDeleted tracks deletions.
func (c *posthogClient) TrackAssociationDeleted(success bool) {
	props := baseProperties()
	props["success"] = success
	c.Track(EventAssociationDeleted, props)
}

// TrackDetailViewed tracks detail panel loads.
func (c *posthogClient) TrackDetailViewed() {
	c.Track(EventDetailViewed, baseProperties())
}

// TrackErrorDisplayed tracks surfaced errors by class.
func (c *posthogClient) TrackErrorDisplayed(errorType, contextView string) {
	props := baseProperties()
	props["error_type"] = errorType
	props["context_view"] = contextView
	c.Track(EventErrorDisplayed, props)
}
