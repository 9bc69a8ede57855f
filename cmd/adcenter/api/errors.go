package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Error code constants used by the remote API
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeBadRequest      = "BAD_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// FieldDetail is a per-field error detail. The server sends either a single
// message or a list of messages; both decode into the same type.
type FieldDetail []string

// UnmarshalJSON accepts a JSON string or array of strings.
func (d *FieldDetail) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = FieldDetail{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*d = FieldDetail(many)
	return nil
}

// First returns the first message, or "" when empty.
func (d FieldDetail) First() string {
	if len(d) == 0 {
		return ""
	}
	return d[0]
}

// ErrorResponse is the error envelope shared with the remote API.
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]FieldDetail `json:"details,omitempty"`
	Timestamp string                 `json:"timestamp"`
	Status    int                    `json:"status"`
}

// APIError is a failed API call carrying the server's error envelope.
type APIError struct {
	Response ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response.Code != "" {
		return e.Response.Code + ": " + e.Response.Message
	}
	return e.Response.Message
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool {
	return e.Response.Status == http.StatusNotFound
}

// FieldErrors flattens the per-field details into single messages.
// The first message wins when a field carries several.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Response.Details) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Response.Details))
	for field, detail := range e.Response.Details {
		if msg := detail.First(); msg != "" {
			out[field] = msg
		}
	}
	return out
}

// AsAPIError unwraps err into an *APIError, or nil when it is not one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// parseAPIError decodes an error body into the shared envelope, falling back
// to a synthesized INTERNAL_ERROR envelope when the body carries none of the
// envelope's fields.
func parseAPIError(statusCode int, body []byte) error {
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil &&
		(resp.Message != "" || resp.Code != "" || len(resp.Details) > 0) {
		if resp.Status == 0 {
			resp.Status = statusCode
		}
		if resp.Message == "" {
			resp.Message = http.StatusText(statusCode)
		}
		return &APIError{Response: resp}
	}
	return &APIError{Response: ErrorResponse{
		Code:      CodeInternalError,
		Message:   http.StatusText(statusCode),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    statusCode,
	}}
}

// newTransportError wraps a failed round trip in the same envelope shape.
func newTransportError(err error) error {
	return &APIError{Response: ErrorResponse{
		Code:      CodeInternalError,
		Message:   err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    0,
	}}
}
