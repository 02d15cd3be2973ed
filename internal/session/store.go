// Package session provides persistent storage for the authentication
// session. It uses the pure-Go SQLite driver via GORM.
//
// Components never read ambient state: everything goes through the
// Store's explicit accessors, and the api package consumes the Store
// through its TokenSource interface.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// State is the single-row session table.
type State struct {
	ID            string `gorm:"primaryKey"`
	Token         string
	UserID        string
	SavedPassword string
	TrackingID    string
	UpdatedAt     time.Time
}

// TableName keeps the table name stable across GORM versions.
func (State) TableName() string { return "session_state" }

const stateID = "default"

// Store manages session persistence.
type Store struct {
	db *gorm.DB
}

// Open creates (or opens) the session database at path and runs
// migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&State{}); err != nil {
		return nil, fmt.Errorf("migrate session state: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// load returns the current state row, or an empty default.
func (s *Store) load() (*State, error) {
	var state State
	err := s.db.Where("id = ?", stateID).First(&state).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &State{ID: stateID}, nil
		}
		return nil, err
	}
	return &state, nil
}

// upsert writes the given columns of the state row.
func (s *Store) upsert(state *State, columns ...string) error {
	state.ID = stateID
	columns = append(columns, "updated_at")
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(state).Error
}

// Token returns the stored session token. The second return is false
// when no token is stored.
func (s *Store) Token() (string, bool) {
	state, err := s.load()
	if err != nil || state.Token == "" {
		return "", false
	}
	return state.Token, true
}

// UserID returns the stored user id, or "" when signed out.
func (s *Store) UserID() string {
	state, err := s.load()
	if err != nil {
		return ""
	}
	return state.UserID
}

// SetCredentials stores the token and user id after a sign-in.
func (s *Store) SetCredentials(token, userID string) error {
	return s.upsert(&State{Token: token, UserID: userID}, "token", "user_id")
}

// Clear removes the token and user id (log-out). The saved password
// and tracking ID survive.
func (s *Store) Clear() error {
	return s.upsert(&State{Token: "", UserID: ""}, "token", "user_id")
}

// SavedPassword returns the remembered password, or "" when none.
func (s *Store) SavedPassword() string {
	state, err := s.load()
	if err != nil {
		return ""
	}
	return state.SavedPassword
}

// SetSavedPassword remembers the password for the sign-in form.
func (s *Store) SetSavedPassword(password string) error {
	return s.upsert(&State{SavedPassword: password}, "saved_password")
}

// ClearSavedPassword forgets the remembered password.
func (s *Store) ClearSavedPassword() error {
	return s.upsert(&State{SavedPassword: ""}, "saved_password")
}

// GetOrCreateTrackingID returns the persistent anonymous tracking ID,
// creating one if it doesn't exist. On any error it falls back to a
// per-session ID.
func (s *Store) GetOrCreateTrackingID() string {
	state, err := s.load()
	if err != nil {
		return uuid.New().String()
	}
	if state.TrackingID != "" {
		return state.TrackingID
	}

	trackingID := uuid.New().String()
	state.TrackingID = trackingID
	if err := s.upsert(state, "tracking_id"); err != nil {
		return trackingID
	}
	return trackingID
}
