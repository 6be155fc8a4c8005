package ekdsend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SMSService provides access to the SMS API.
type SMSService struct {
	client *Client
}

// Send sends an SMS message.
func (s *SMSService) Send(ctx context.Context, params *SendSMSParams) (*SMS, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, fmt.Errorf("send SMS params cannot be nil")
	}

	var resp struct {
		Data SMS `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodPost, "/sms", nil, params, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}

// Get retrieves an SMS message by ID.
func (s *SMSService) Get(ctx context.Context, smsID string) (*SMS, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	path := "/sms/" + url.PathEscape(smsID)
	var resp struct {
		Data SMS `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}

// List returns SMS messages with pagination and filtering.
func (s *SMSService) List(ctx context.Context, opts *ListOptions) (*Page[SMS], error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var page Page[SMS]
	if err := s.client.api.Do(ctx, http.MethodGet, "/sms", opts.query(false), nil, &page); err != nil {
		return nil, wrapError(err)
	}
	return &page, nil
}

// Cancel cancels a scheduled SMS and returns its updated state.
func (s *SMSService) Cancel(ctx context.Context, smsID string) (*SMS, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	path := "/sms/" + url.PathEscape(smsID)
	var resp struct {
		Data SMS `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}
