package sharepoint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPathTooLong marks a fetch rejected because the request URL exceeds the
// server's configured limit. This is a permanent platform limitation, not a
// transient fault; callers treat it as a skip rather than a failure.
var ErrPathTooLong = errors.New("request URL exceeds the server's maxUrlLength limit")

// maxURLLengthSignature is the message fragment the server returns when a
// request URL is over the limit. The substring match lives only at this
// boundary; everything above it sees the tagged error.
const maxURLLengthSignature = "length of the URL for this request exceeds the configured maxUrlLength value"

// RequestError is a failed request against the site API
type RequestError struct {
	Op         string
	Path       string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Op, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Message)
}

// classifyError turns a raw response failure into a tagged error where the
// cause is recognizable
func classifyError(op, path string, statusCode int, body string) error {
	if strings.Contains(body, maxURLLengthSignature) {
		return fmt.Errorf("%s %s: %w", op, path, ErrPathTooLong)
	}
	message := strings.TrimSpace(body)
	if message == "" {
		message = "request failed"
	}
	return &RequestError{
		Op:         op,
		Path:       path,
		StatusCode: statusCode,
		Message:    message,
	}
}
