package domain

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned by the session store when no token is persisted
// for the visitor. It is the normal anonymous case, not a fault.
var ErrNoSession = errors.New("no session token")

// GenericAuthFailure is shown when an upstream rejection carries no message.
const GenericAuthFailure = "Something went wrong"

// UpstreamError is a non-2xx reply from one of the external services.
// Message holds the server-supplied {"error": "..."} text when the body
// carried one, otherwise the HTTP status text.
type UpstreamError struct {
	Service string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Service, e.Message, e.Status)
}

// UserMessage extracts a message suitable for inline display from err.
// Server-supplied upstream messages pass through verbatim; anything else
// (timeouts, connection failures) collapses to the generic fallback so
// transport details never leak into the page.
func UserMessage(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return GenericAuthFailure
}
