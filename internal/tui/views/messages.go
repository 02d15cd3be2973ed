package views

import (
	"github.com/lunar-gate/skilldeck/internal/models"
)

// SignedInMsg is sent when sign-in completed and the session was
// persisted. app.go navigates to the skills view.
type SignedInMsg struct{}

// SignedOutMsg is sent when the session was cleared. app.go navigates
// back to the sign-in view.
type SignedOutMsg struct{}

// SessionExpiredMsg is sent when an authenticated call found no token
// or the service rejected it. app.go redirects to the sign-in flow.
type SessionExpiredMsg struct{}

// signInResultMsg carries the outcome of a sign-in request.
type signInResultMsg struct {
	Token  string
	UserID string
	Err    error
}

// signUpResultMsg carries the outcome of a sign-up request.
type signUpResultMsg struct {
	Err error
}

// pageLoadedMsg carries one list fetch response, stamped with the
// controller sequence that issued it.
type pageLoadedMsg struct {
	Seq  uint64
	Page *models.Page
	Err  error
}

// detailLoadedMsg carries a single association's detail fetch.
type detailLoadedMsg struct {
	ID    int
	Assoc *models.Association
	Err   error
}

// levelSavedMsg carries the outcome of a committed level edit.
type levelSavedMsg struct {
	ID  int
	Err error
}

// deleteDoneMsg carries the outcome of a delete.
type deleteDoneMsg struct {
	ID  int
	Err error
}

// catalogLoadedMsg carries the skill catalog for the add dialog.
type catalogLoadedMsg struct {
	Skills []models.Skill
	Err    error
}

// associationCreatedMsg carries the outcome of an add.
type associationCreatedMsg struct {
	Err error
}
