package nse

import (
	"errors"
	"fmt"
	"net/http"
)

// UpstreamError is returned when NSE answers with a non-200 status.
// It carries the status so the HTTP layer can map upstream failures
// (404 for unknown symbols, 5xx for outages) without string matching.
type UpstreamError struct {
	Path   string
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("nse: %s returned status %d", e.Path, e.Status)
}

// IsNotFound reports whether err is an upstream 404, which NSE uses for
// unknown symbols and instruments.
func IsNotFound(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Status == http.StatusNotFound
}

// IsUpstream reports whether err originated as a non-200 NSE response.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
