package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lunar-gate/skilldeck/internal/models"
)

// SignIn exchanges credentials for a session token and user id.
// It is unauthenticated; invalid credentials surface as ErrUnauthorized.
func (c *Client) SignIn(ctx context.Context, creds models.Credentials) (token, userID string, err error) {
	var result models.SignInResult
	if err := c.do(ctx, http.MethodPost, "login/signin", nil, creds, &result, false); err != nil {
		return "", "", err
	}
	return result.AccessToken, strconv.Itoa(result.ID), nil
}

// signUpBody matches the registration payload the service expects.
type signUpBody struct {
	Login    string `json:"login"`
	Password string `json:"senha"`
}

// SignUp registers a new account. The caller signs in afterwards.
func (c *Client) SignUp(ctx context.Context, username, password string) error {
	body := signUpBody{Login: username, Password: password}
	return c.do(ctx, http.MethodPost, "login/signup", nil, body, nil, false)
}
