package api

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Profile is the slice of the user record the client cares about.
type Profile struct {
	Name string `json:"name"`
}

// Login exchanges credentials for a bearer token. It does not store the
// token; the auth flow owns persistence ordering.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var res loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", false, loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", &Error{Kind: KindServer, Message: "login response carried no token"}
	}
	return res.AccessToken, nil
}

// Register creates an account. No token is issued; the user logs in
// afterwards.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/users/register", false, registerRequest{Name: name, Email: email, Password: password}, nil)
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodGet, "/api/users/profile", true, nil, &p)
	return p, err
}
