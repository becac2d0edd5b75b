package apierror

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind identifies which of the backend's error shapes a response matched.
// The backend is not consistent about how it reports failures; every shape
// observed in the wild gets exactly one variant here and one place that
// turns it into a display string.
type Kind int

const (
	// KindUnreachable means no response was received at all.
	KindUnreachable Kind = iota
	// KindString is a bare JSON (or plain-text) string body.
	KindString
	// KindMessage is a {"message": "..."} body.
	KindMessage
	// KindDetail is a {"detail": "..."} body.
	KindDetail
	// KindProblem is a problem-details body: {"title": "...", "errors": {...}}.
	KindProblem
	// KindStatus means no recognized shape; the message is a generic
	// fallback derived from the status class.
	KindStatus
)

// APIError is a normalized backend failure. Message is always safe to show
// to the user verbatim.
type APIError struct {
	Kind       Kind
	StatusCode int // 0 when the server was unreachable
	Message    string
	Err        error // underlying transport error, if any
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend unreachable: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the backend rejected the session token.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Unreachable wraps a transport-level failure (connection refused, timeout,
// DNS error) where no HTTP response exists.
func Unreachable(err error) *APIError {
	return &APIError{
		Kind:    KindUnreachable,
		Message: "The server is not responding. Please try again later.",
		Err:     err,
	}
}

// problemBody covers every structured error shape the backend emits. Field
// precedence on decode: errors, message, detail, title.
type problemBody struct {
	Message string              `json:"message"`
	Detail  string              `json:"detail"`
	Title   string              `json:"title"`
	Errors  map[string][]string `json:"errors"`
}

// Normalize converts a non-2xx response body into an APIError with a single
// display message. Unrecognized bodies fall back to a generic message per
// status class.
func Normalize(statusCode int, body []byte) *APIError {
	trimmed := strings.TrimSpace(string(body))

	// Bare JSON string body.
	var s string
	if json.Unmarshal(body, &s) == nil && s != "" {
		return &APIError{Kind: KindString, StatusCode: statusCode, Message: s}
	}

	var pb problemBody
	if err := json.Unmarshal(body, &pb); err == nil {
		if len(pb.Errors) > 0 {
			return &APIError{
				Kind:       KindProblem,
				StatusCode: statusCode,
				Message:    joinFieldErrors(pb.Errors),
			}
		}
		if pb.Message != "" {
			return &APIError{Kind: KindMessage, StatusCode: statusCode, Message: pb.Message}
		}
		if pb.Detail != "" {
			return &APIError{Kind: KindDetail, StatusCode: statusCode, Message: pb.Detail}
		}
		if pb.Title != "" {
			return &APIError{Kind: KindProblem, StatusCode: statusCode, Message: pb.Title}
		}
	}

	// Plain-text body that is not JSON at all.
	if trimmed != "" && !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return &APIError{Kind: KindString, StatusCode: statusCode, Message: trimmed}
	}

	return &APIError{
		Kind:       KindStatus,
		StatusCode: statusCode,
		Message:    fallbackMessage(statusCode),
	}
}

func joinFieldErrors(fieldErrs map[string][]string) string {
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var msgs []string
	for _, f := range fields {
		msgs = append(msgs, fieldErrs[f]...)
	}
	return strings.Join(msgs, " ")
}

func fallbackMessage(statusCode int) string {
	switch {
	case statusCode == http.StatusUnauthorized:
		return "Your session has expired. Please log in again."
	case statusCode == http.StatusForbidden:
		return "You are not allowed to perform this action."
	case statusCode >= 500:
		return fmt.Sprintf("The server encountered an error (HTTP %d).", statusCode)
	default:
		return fmt.Sprintf("The request was rejected (HTTP %d).", statusCode)
	}
}
