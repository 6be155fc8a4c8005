package ekdsend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CallsService provides access to the voice API.
type CallsService struct {
	client *Client
}

// Create places a voice call. Either TTSMessage or AudioURL must be set;
// Voice and Language fall back to DefaultVoice and DefaultLanguage.
func (s *CallsService) Create(ctx context.Context, params *CreateCallParams) (*Call, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, fmt.Errorf("create call params cannot be nil")
	}
	if params.TTSMessage == "" && params.AudioURL == "" {
		return nil, fmt.Errorf("either TTSMessage or AudioURL is required")
	}

	body := *params
	if body.Voice == "" {
		body.Voice = DefaultVoice
	}
	if body.Language == "" {
		body.Language = DefaultLanguage
	}

	var resp struct {
		Data Call `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodPost, "/calls", nil, &body, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}

// Get retrieves a call by ID.
func (s *CallsService) Get(ctx context.Context, callID string) (*Call, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	path := "/calls/" + url.PathEscape(callID)
	var resp struct {
		Data Call `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}

// List returns calls with pagination and filtering.
func (s *CallsService) List(ctx context.Context, opts *ListOptions) (*Page[Call], error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	var page Page[Call]
	if err := s.client.api.Do(ctx, http.MethodGet, "/calls", opts.query(false), nil, &page); err != nil {
		return nil, wrapError(err)
	}
	return &page, nil
}

// Hangup hangs up an active call and returns its updated state.
func (s *CallsService) Hangup(ctx context.Context, callID string) (*Call, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	path := "/calls/" + url.PathEscape(callID)
	var resp struct {
		Data Call `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}

// GetRecording retrieves the recording for a call. The call must have
// been created with Record enabled.
func (s *CallsService) GetRecording(ctx context.Context, callID string) (*Recording, error) {
	if err := s.client.checkClosed(); err != nil {
		return nil, err
	}

	path := "/calls/" + url.PathEscape(callID) + "/recording"
	var resp struct {
		Data Recording `json:"data"`
	}
	if err := s.client.api.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, wrapError(err)
	}
	return &resp.Data, nil
}
