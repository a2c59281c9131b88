package client

import (
	"errors"
	"fmt"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypeTextPlain = "text/plain"
	ContentTypeOctet     = "application/octet-stream"
)

var (
	// ErrNoURLs is returned by [BaseURLFor] when called without URLs.
	ErrNoURLs = errors.New("no urls provided")
	// ErrUnresolved is wrapped by the [NetworkError] reported when a call
	// completes without its result ever being delivered. It signals a
	// transport that broke its listener contract.
	ErrUnresolved = errors.New("request was not resolved")
	// ErrAlreadyResolved is reported when a transport delivers a second
	// result for the same request. The second result is discarded.
	ErrAlreadyResolved = errors.New("request already resolved")
)

// InvalidURLError is returned by [BaseURLFor] for a URL without
// a scheme and authority.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: expected scheme://authority", e.URL)
}

// UnsupportedSchemeError is returned when the base URL scheme is neither
// http nor https.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported scheme %q", e.Scheme)
}

// NetworkError carries a failure reported by the transport, or a failure
// to decode what it delivered. Message is the transport's description.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// unresolved is the placeholder held by a pending call until it resolves.
var unresolved = &NetworkError{Message: ErrUnresolved.Error(), Err: ErrUnresolved}
