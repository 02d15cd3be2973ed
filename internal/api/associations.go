package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lunar-gate/skilldeck/internal/models"
)

// ListRequest describes one page query against the associations list.
type ListRequest struct {
	UserID string
	Page   int
	Size   int
	Search string // matched against the skill name; blank means no filter
	Sort   string // "<field>,<asc|desc>" or blank for unsorted
}

// ListAssociations fetches one page of the user's skill associations.
func (c *Client) ListAssociations(ctx context.Context, req ListRequest) (*models.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("size", strconv.Itoa(req.Size))
	if s := strings.TrimSpace(req.Search); s != "" {
		query.Set("skillNome", s)
	}
	if s := strings.TrimSpace(req.Sort); s != "" {
		query.Set("sort", s)
	}

	var page models.Page
	path := fmt.Sprintf("associacoes/usuario/%s/skills", req.UserID)
	if err := c.get(ctx, path, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAssociation fetches a single association's full detail.
func (c *Client) GetAssociation(ctx context.Context, id int) (*models.Association, error) {
	var assoc models.Association
	if err := c.get(ctx, fmt.Sprintf("associacoes/%d", id), nil, &assoc); err != nil {
		return nil, err
	}
	return &assoc, nil
}

// associationBody is the payload for create and update calls.
type associationBody struct {
	UserID  string `json:"usuarioId"`
	SkillID int    `json:"skillId"`
	Level   string `json:"level"`
}

// UpdateAssociation commits a level change for one association.
func (c *Client) UpdateAssociation(ctx context.Context, id int, userID string, level string) (*models.Association, error) {
	body := associationBody{UserID: userID, SkillID: id, Level: level}
	var updated models.Association
	if err := c.put(ctx, fmt.Sprintf("associacoes/%d", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAssociation removes an association.
func (c *Client) DeleteAssociation(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("associacoes/%d", id))
}

// CreateAssociation links the user to a catalog skill at a level.
func (c *Client) CreateAssociation(ctx context.Context, userID string, skillID int, level string) (*models.Association, error) {
	body := associationBody{UserID: userID, SkillID: skillID, Level: level}
	var created models.Association
	if err := c.post(ctx, "associacoes/associar", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListSkills fetches the skill catalog.
func (c *Client) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := c.get(ctx, "skills", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}
