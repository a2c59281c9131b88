package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// maxErrBodySize caps the amount of response body kept on an
// UnexpectedStatusError.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrClosed is delivered to listeners of requests sent on a closed connection.
	ErrClosed = errors.New("connection closed")
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [UnexpectedStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// ChannelID identifies a connection created by a [Transport].
type ChannelID uuid.UUID

func (id ChannelID) String() string { return uuid.UUID(id).String() }

// Transport creates connections with one of three reuse strategies.
type Transport interface {
	// Closable returns a connection that opens a fresh network connection
	// per request and closes it once the request completes.
	Closable(addr Address) (Conn, error)
	// Sequential returns a connection that reuses one network connection
	// and does not dispatch a request until the previous request's
	// listener has returned.
	Sequential(addr Address) (Conn, error)
	// Pipelining returns a connection that dispatches requests in call
	// order, at least interval apart, without waiting for earlier ones
	// to complete.
	Pipelining(addr Address, interval time.Duration) (Conn, error)
}

// Conn dispatches requests and reports their outcome to a [Listener].
type Conn interface {
	ID() ChannelID
	// Send dispatches req asynchronously. Exactly one of l's methods is
	// called exactly once, from a goroutine owned by the transport.
	Send(ctx context.Context, req *Request, l Listener)
	Close() error
}

// Listener receives the outcome of one request.
type Listener interface {
	Succeeded(resp *Response)
	Failed(err error)
}

// Address is the remote endpoint of a connection. A nil TLS config means
// plaintext.
type Address struct {
	Host string
	Port int
	TLS  *tls.Config
}

// HostPort returns the dialable host:port of the address.
func (a Address) HostPort() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Origin returns scheme://host:port for the address.
func (a Address) Origin() string {
	scheme := "http"
	if a.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + a.HostPort()
}

// Request is one outgoing request. Header keys are sent exactly as given.
//
// At most one of Body, Params and Fields is used, in that order of
// precedence: Fields, then Params, then Body.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Header      http.Header
	ContentType string
	Charset     string
	Body        []byte
	Params      url.Values
	Fields      []Field
}

// Field is one wire-ready part of a multipart body. An empty FileName
// means the part is not a file.
type Field struct {
	Name        string
	FileName    string
	ContentType string
	Charset     string
	Content     []byte
}

// Response is a completed response with its whole body read.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Charset    string
	Body       []byte
}

// UnexpectedStatusError is delivered to a listener when the server responds
// with a status of 400 or above.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Err
}
