package clockodo

import "fmt"

// APIError is returned for any non-2xx response from the Clockodo API.
// It carries the upstream status and the raw response body so callers
// can surface the Gateway's own error detail. The client never retries
// and never swallows these; propagation is the caller's concern.
type APIError struct {
	StatusCode int
	Status     string
	Method     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("clockodo: %s %s returned %s: %s", e.Method, e.Endpoint, e.Status, e.Body)
	}
	return fmt.Sprintf("clockodo: %s %s returned %s", e.Method, e.Endpoint, e.Status)
}
