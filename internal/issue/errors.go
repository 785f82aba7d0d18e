package issue

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/ctreminiom/go-atlassian/v2/pkg/infra/models"
)

// ConfigurationError reports required configuration fields that are missing
// or blank. It is raised before any client is usable and is never retried.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// ValidationError reports shape problems with a single issue request. All
// problems are collected, not just the first.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid issue request: %s", strings.Join(e.Problems, "; "))
}

// ConnectionError is returned when a transport-level operation (identity or
// project lookup) spent its whole retry budget or failed non-retryably.
type ConnectionError struct {
	Op       string
	Attempts int
	Cause    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// IssueCreationError is returned when a create-issue call failed on its last
// permitted attempt.
type IssueCreationError struct {
	Attempts int
	Cause    error
}

func (e *IssueCreationError) Error() string {
	return fmt.Sprintf("create issue failed after %d attempt(s): %v", e.Attempts, e.Cause)
}

func (e *IssueCreationError) Unwrap() error { return e.Cause }

// retryable reports whether a failed attempt is presumed transient. Requests
// that never produced an HTTP status (network errors, timeouts) and
// server-side statuses (429, 5xx) are retried; every other 4xx is a permanent
// failure for the current inputs.
func retryable(resp *models.ResponseScheme, err error) bool {
	if resp != nil && resp.Code > 0 {
		switch {
		case resp.Code == http.StatusTooManyRequests:
			return true
		case resp.Code >= http.StatusInternalServerError:
			return true
		case resp.Code >= http.StatusBadRequest:
			return false
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return resp == nil || resp.Code == 0
}

func notFound(resp *models.ResponseScheme) bool {
	return resp != nil && resp.Code == http.StatusNotFound
}
