// Package models defines the data types exchanged with the skills service.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Skill is a catalog entry: a named skill independent of any user.
type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// Association links a user to a catalog skill at a given level.
// The service encodes the level as a string; LevelValue parses it.
type Association struct {
	ID          int    `json:"id"`
	Name        string `json:"nome"`
	Level       string `json:"level"`
	Description string `json:"descricao"`
	ImageURL    string `json:"imagem"`
}

// LevelValue returns the numeric level, or an error if the stored
// string is not an integer in [0, 100].
func (a Association) LevelValue() (int, error) {
	return ParseLevel(a.Level)
}

// ParseLevel validates a level string as an integer in [0, 100].
func ParseLevel(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("level must be a number: %q", s)
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("level must be between 0 and 100, got %d", n)
	}
	return n, nil
}

// Page is one page of associations as returned by the list endpoint.
// It is replaced wholesale on every fetch and never persisted.
type Page struct {
	Items      []Association `json:"content"`
	TotalPages int           `json:"totalPages"`
}

// Credentials are the sign-in inputs.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResult is the payload returned by a successful sign-in.
type SignInResult struct {
	AccessToken string `json:"accessToken"`
	ID          int    `json:"id"`
}
