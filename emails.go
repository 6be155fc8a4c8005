package ekdsend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// EmailsService provides access to the email API.
type EmailsService struct {
	client *Client
}

// Send sends an email. From must be a verified sender address.
func (s *EmailsService) Send(ctx context.Context, params *SendEmailParams) (*Email, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, fmt.Errorf("send email params cannot be nil")
	}

	var resp struct {
		Data Email `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodPost, "/emails", nil, params, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}

// Get retrieves an email by ID.
func (s *EmailsService) Get(ctx context.Context, emailID string) (*Email, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	path := "/emails/" + url.PathEscape(emailID)
	var resp struct {
		Data Email `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}

// List returns emails with pagination and filtering.
func (s *EmailsService) List(ctx context.Context, opts *ListOptions) (*Page[Email], error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var page Page[Email]
	if err := s.client.api.Do(ctx, http.MethodGet, "/emails", opts.query(true), nil, &page); err != nil {
		return nil, wrapError(err)
	}
	return &page, nil
}

// Cancel cancels a scheduled email and returns its updated state.
func (s *EmailsService) Cancel(ctx context.Context, emailID string) (*Email, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	path := "/emails/" + url.PathEscape(emailID)
	var resp struct {
		Data Email `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}
