package ekdsend

import (
	"errors"
	"testing"

	"github.com/ekddigital/ekdsend-go/internal/api"
)

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		target     error
		want       bool
	}{
		{"400 matches ErrValidation", 400, ErrValidation, true},
		{"400 does not match ErrNotFound", 400, ErrNotFound, false},
		{"401 matches ErrUnauthorized", 401, ErrUnauthorized, true},
		{"404 matches ErrNotFound", 404, ErrNotFound, true},
		{"404 does not match ErrValidation", 404, ErrValidation, false},
		{"429 matches ErrRateLimited", 429, ErrRateLimited, true},
		{"500 matches nothing", 500, ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &APIError{StatusCode: tt.statusCode, Message: "x"}
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		StatusCode: 429,
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "slow down",
		RequestID:  "req_7",
	}
	want := "API error 429 [RATE_LIMIT_EXCEEDED]: slow down (request_id: req_7)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := &NetworkError{Err: inner, URL: "https://es.ekddigital.com/v1/emails"}

	if !errors.Is(err, inner) {
		t.Error("errors.Is() = false, want true")
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if got := wrapError(nil); got != nil {
			t.Errorf("wrapError(nil) = %v, want nil", got)
		}
	})

	t.Run("api error", func(t *testing.T) {
		internal := &api.APIError{
			StatusCode: 400,
			Code:       "VALIDATION_ERROR",
			Message:    "bad",
			Details:    map[string][]string{"to": {"required"}},
			RequestID:  "req_1",
		}
		err := wrapError(internal)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error type = %T, want *APIError", err)
		}
		if apiErr.Code != "VALIDATION_ERROR" || apiErr.RequestID != "req_1" {
			t.Errorf("wrapped = %+v", apiErr)
		}
		if got := apiErr.Details["to"]; len(got) != 1 || got[0] != "required" {
			t.Errorf("Details = %v", apiErr.Details)
		}
		if !errors.Is(err, ErrValidation) {
			t.Error("errors.Is(err, ErrValidation) = false, want true")
		}
	})

	t.Run("network error", func(t *testing.T) {
		inner := errors.New("timeout")
		err := wrapError(&api.NetworkError{Err: inner, URL: "u", Attempt: 2})

		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("error type = %T, want *NetworkError", err)
		}
		if netErr.Attempt != 2 {
			t.Errorf("Attempt = %d, want 2", netErr.Attempt)
		}
		if !errors.Is(err, inner) {
			t.Error("errors.Is(err, inner) = false, want true")
		}
	})

	t.Run("other error passes through", func(t *testing.T) {
		plain := errors.New("plain")
		if got := wrapError(plain); got != plain {
			t.Errorf("wrapError(plain) = %v, want identity", got)
		}
	})
}
