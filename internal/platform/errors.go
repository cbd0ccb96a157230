package platform

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Error is a non-2xx response (or a 2xx with success=false) from the platform
type Error struct {
	StatusCode int
	Message    string
	Hint       string
	// RetryAfter is parsed from the Retry-After header when present
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("moltbook error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("moltbook error %d: %s", e.StatusCode, e.Message)
}

// IsThrottled reports whether the platform asked us to back off
func (e *Error) IsThrottled() bool {
	return e.StatusCode == http.StatusTooManyRequests || strings.Contains(strings.ToLower(e.Message), "rate limit")
}

// IsDuplicate reports whether the action had already been performed
// (already voted, subscribed or following)
func (e *Error) IsDuplicate() bool {
	msg := strings.ToLower(e.Message)
	if duplicateMessage(msg) {
		return true
	}
	return e.StatusCode == http.StatusConflict && strings.Contains(msg, "already")
}

func duplicateMessage(msg string) bool {
	return strings.Contains(msg, "already voted") ||
		strings.Contains(msg, "already subscribed") ||
		strings.Contains(msg, "already following")
}

// IsThrottled reports whether err is, or wraps, a rate-limit response
func IsThrottled(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.IsThrottled()
	}
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}

// IsDuplicate reports whether err is, or wraps, a benign duplicate response
func IsDuplicate(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.IsDuplicate()
	}
	if err == nil {
		return false
	}
	return duplicateMessage(strings.ToLower(err.Error()))
}
