package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobtrack/internal/session"
)

// Client talks to the tracker backend. It reads the bearer token from
// the session store on every authenticated call and never redirects;
// callers decide what a missing or rejected token means.
type Client struct {
	base  string
	hc    *http.Client
	store session.Store
}

func New(baseURL string, store session.Store, timeout time.Duration) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		hc:    &http.Client{Timeout: timeout},
		store: store,
	}
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, auth bool, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		token, err := c.store.Token()
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "could not reach the server", cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return decodeFailure(res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return &Error{
				Kind:       KindServer,
				StatusCode: res.StatusCode,
				Message:    "unexpected response from the server",
				cause:      err,
			}
		}
	}
	return nil
}

// decodeFailure turns a non-success response into a classified *Error,
// preferring the server's own message when the body carries one.
func decodeFailure(res *http.Response) error {
	msg := ""
	var eb errorBody
	if err := json.NewDecoder(res.Body).Decode(&eb); err == nil {
		msg = eb.Message
	}

	kind := KindValidation
	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		kind = KindAuth
	case res.StatusCode >= 500:
		kind = KindServer
	}
	if msg == "" {
		switch kind {
		case KindAuth:
			msg = "not authorized"
		case KindServer:
			msg = "the server ran into a problem"
		default:
			msg = fmt.Sprintf("request rejected (status %d)", res.StatusCode)
		}
	}
	return &Error{Kind: kind, StatusCode: res.StatusCode, Message: msg}
}
