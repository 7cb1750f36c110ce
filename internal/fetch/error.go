package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a fetch failure.
type ErrorKind int

const (
	// Timeout means the fetch exceeded its deadline.
	Timeout ErrorKind = iota
	// ConnectionFailure means the target could not be reached at all.
	ConnectionFailure
	// HTTPError means the target responded with an error status.
	HTTPError
	// Other covers everything else; the underlying message is preserved.
	Other
)

// Error is a structured fetch failure. Its Error string is the user-facing
// message reported in scan results.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case Timeout:
		return "Request timed out — site took too long to respond."
	case ConnectionFailure:
		return "Connection error — could not reach the website."
	case HTTPError:
		return fmt.Sprintf("HTTP error: %d", e.StatusCode)
	default:
		return fmt.Sprintf("Error: %s", e.Message)
	}
}

// Classify maps an arbitrary transport error onto the fetch error taxonomy.
// Already-classified errors pass through unchanged.
func Classify(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: Timeout}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &Error{Kind: Timeout}
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return &Error{Kind: ConnectionFailure, Message: err.Error()}
	}
	var de *net.DNSError
	if errors.As(err, &de) {
		return &Error{Kind: ConnectionFailure, Message: err.Error()}
	}
	return &Error{Kind: Other, Message: err.Error()}
}
