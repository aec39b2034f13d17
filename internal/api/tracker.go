package api

import (
	"context"
	"net/http"
	"net/url"

	"jobtrack/internal/domain"
)

// ListApplications fetches the user's full application list. The list
// view calls this after every mutation; it is the only sync mechanism.
func (c *Client) ListApplications(ctx context.Context) ([]domain.JobApplication, error) {
	var apps []domain.JobApplication
	if err := c.do(ctx, http.MethodGet, "/api/tracker", true, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// CreateApplication submits a new record; the server assigns the ID.
func (c *Client) CreateApplication(ctx context.Context, form domain.FormData) (domain.JobApplication, error) {
	var created domain.JobApplication
	err := c.do(ctx, http.MethodPost, "/api/tracker", true, form, &created)
	return created, err
}

// UpdateApplication sends the full record, including single-field status
// changes; the backend takes PUT bodies whole.
func (c *Client) UpdateApplication(ctx context.Context, app domain.JobApplication) (domain.JobApplication, error) {
	var updated domain.JobApplication
	err := c.do(ctx, http.MethodPut, "/api/tracker/"+url.PathEscape(app.ID), true, app, &updated)
	return updated, err
}

// DeleteApplication removes a record for good.
func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tracker/"+url.PathEscape(id), true, nil, nil)
}
