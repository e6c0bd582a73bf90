package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/pixelmart/internal/common"
)

// Error is the single error shape returned for every failed gateway call.
// Message is the backend's "message" field when the error body parses as
// JSON, otherwise a generic "HTTP error: <status>". StatusCode is 0 for
// transport-level failures.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match gateway auth failures against the shared
// common.ErrorUnauthorized sentinel.
func (e *Error) Is(target error) bool {
	if target == common.ErrorUnauthorized {
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// StatusOf returns the HTTP status attached to err, or 0 when err is not a
// gateway error.
func StatusOf(err error) int {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401/403 gateway error or the
// shared unauthorized sentinel.
func IsUnauthorized(err error) bool {
	if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrNoToken) {
		return true
	}
	s := StatusOf(err)
	return s == http.StatusUnauthorized || s == http.StatusForbidden
}

// IsNotFound reports whether err is a 404 gateway error.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

func transportError(err error) *Error {
	return &Error{Message: fmt.Sprintf("request failed: %v", err)}
}
