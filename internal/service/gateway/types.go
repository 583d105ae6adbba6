package gateway

import (
	"fmt"
	"io"
	"net/http"
)

// StatusError reports a non-2xx gateway response.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("gateway %s: unexpected status %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("gateway %s: unexpected status %d", e.Op, e.Status)
}

func newStatusError(op string, resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Op:     op,
		Status: resp.StatusCode,
		Body:   string(body),
	}
}
