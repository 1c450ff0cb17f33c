package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/sakialabs/RiseUp/internal/errors"
)

// NetworkMessage is shown whenever no response was received at all.
const NetworkMessage = "Cannot connect to server. Please check your connection and try again."

// GenericMessage is the last-resort fallback.
const GenericMessage = "Something went wrong. Please try again."

// NetworkError wraps a transport-level failure (no response received).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FieldDetail is one entry of an array-shaped error detail.
type FieldDetail struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
}

// APIError is a non-2xx backend response. Detail holds the string form of
// the payload's detail when present; Fields holds the array form.
type APIError struct {
	StatusCode int
	Detail     string
	Fields     []FieldDetail
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// decodeAPIError maps an error response body to an APIError. The body may
// carry {"detail": "..."} with a string, {"detail": [{"msg": ...}, ...]}
// with field errors, or nothing parseable at all.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		apiErr.Detail = detail
		return apiErr
	}

	var fields []FieldDetail
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil {
		apiErr.Fields = fields
	}
	return apiErr
}

// Message maps any error from this package (or a client-side validation
// error) to the single human-readable string shown to the user. Precedence:
// string detail verbatim, joined field messages, status-specific fallback,
// generic fallback. Transport failures always map to NetworkMessage.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return NetworkMessage
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if len(apiErr.Fields) > 0 {
			msgs := make([]string, 0, len(apiErr.Fields))
			for _, f := range apiErr.Fields {
				if f.Msg != "" {
					msgs = append(msgs, f.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, ", ")
			}
		}
		switch apiErr.StatusCode {
		case http.StatusConflict:
			return "This email is already registered. Try logging in instead."
		case http.StatusBadRequest:
			return "Invalid request data. Please check your information."
		case http.StatusInternalServerError:
			return "Server error. Please try again later."
		}
		return GenericMessage
	}

	return GenericMessage
}

// RegisterMessage is the register-flow variant of Message: a string detail
// mentioning email is softened to the fixed sign-in hint, and the bare
// 409/400 fallbacks get registration wording.
func RegisterMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" && strings.Contains(strings.ToLower(apiErr.Detail), "email") {
			return "This email is already registered. Try logging in instead."
		}
		if apiErr.Detail == "" && len(apiErr.Fields) == 0 {
			switch apiErr.StatusCode {
			case http.StatusConflict:
				return "This email is already registered. Try logging in instead."
			case http.StatusBadRequest:
				return "Invalid registration data. Please check your information."
			}
		}
	}
	return Message(err)
}

// LoginMessage is the login-flow variant of Message with its own bare-status
// fallbacks.
func LoginMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail == "" && len(apiErr.Fields) == 0 {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return "Invalid email or password. Please try again."
		case http.StatusNotFound:
			return "Account not found. Please check your email or sign up."
		}
	}
	return Message(err)
}
