package api

import (
	"encoding/json"
	"fmt"
)

// Error codes assigned during classification. Codes for statuses outside
// this set come from the server's error body.
const (
	defaultErrorCode        = "UNKNOWN_ERROR"
	validationErrorCode     = "VALIDATION_ERROR"
	authenticationErrorCode = "AUTHENTICATION_ERROR"
	rateLimitErrorCode      = "RATE_LIMIT_EXCEEDED"
)

const (
	defaultErrorMessage = "API request failed"
	defaultRetryAfter   = 60
)

// APIError represents a classified HTTP error from the EKDSend API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Details holds field-level validation errors (400 responses).
	Details map[string][]string
	// RetryAfter is the server-stated delay in seconds (429 responses).
	RetryAfter int
	RequestID  string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error %d", e.StatusCode)
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += " (request_id: " + e.RequestID + ")"
	}
	return msg
}

// errorEnvelope is the wire shape of an error response body.
type errorEnvelope struct {
	Error struct {
		Message    string              `json:"message"`
		Code       string              `json:"code"`
		Details    map[string][]string `json:"details"`
		RetryAfter int                 `json:"retry_after"`
	} `json:"error"`
}

// parseErrorBody classifies a non-2xx response into an *APIError.
// Missing envelope fields get defaults; the code for 400/401/429 is fixed
// by the status, while 404 and generic errors carry the server's code.
func parseErrorBody(statusCode int, body []byte, requestID string) *APIError {
	var envelope errorEnvelope
	// Best effort: an unparseable or empty body still classifies.
	_ = json.Unmarshal(body, &envelope)

	apiErr := &APIError{
		StatusCode: statusCode,
		Code:       envelope.Error.Code,
		Message:    envelope.Error.Message,
		RequestID:  requestID,
	}
	if apiErr.Message == "" {
		apiErr.Message = defaultErrorMessage
	}
	if apiErr.Code == "" {
		apiErr.Code = defaultErrorCode
	}

	switch statusCode {
	case 400:
		apiErr.Code = validationErrorCode
		apiErr.Details = envelope.Error.Details
		if apiErr.Details == nil {
			apiErr.Details = map[string][]string{}
		}
	case 401:
		apiErr.Code = authenticationErrorCode
	case 429:
		apiErr.Code = rateLimitErrorCode
		apiErr.RetryAfter = envelope.Error.RetryAfter
		if apiErr.RetryAfter <= 0 {
			apiErr.RetryAfter = defaultRetryAfter
		}
	}

	return apiErr
}

// NetworkError represents a transport-level failure where no response
// was received.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
