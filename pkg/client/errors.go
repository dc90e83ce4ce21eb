package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any *HTTPError with status 404.
var ErrNotFound = errors.New("not found")

// HTTPError is returned for responses outside the 2xx range.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
