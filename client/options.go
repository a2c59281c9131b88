package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"log/slog"
	"maps"
	"net/url"
	"time"

	"github.com/braginxv/netgym/transport"
	"go.opentelemetry.io/otel/trace"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "netgym/1.0"

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error
type options struct {
	lifetime     Lifetime
	userAgent    string
	headers      map[string]string
	interval     time.Duration
	certificates []tls.Certificate
	rootCAs      *x509.CertPool
	transport    transport.Transport
	maxWorkers   int
	logger       *slog.Logger
	tracer       trace.Tracer
}

// WithLifetime sets the connection reuse strategy. The default is [Closable].
func WithLifetime(l Lifetime) Option {
	return func(o *options) error {
		o.lifetime = l
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		if header == "" {
			return errors.New("user agent must not be empty")
		}
		o.userAgent = header
		return nil
	}
}

// WithHeaders sets headers sent with every request. Header names are
// matched and sent exactly as given.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) error {
		o.headers = maps.Clone(headers)
		return nil
	}
}

// WithPipeliningInterval sets the minimum time between two dispatches of a
// [Pipelining] client. It has no effect with other lifetimes.
func WithPipeliningInterval(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("pipelining interval must not be negative")
		}
		o.interval = d
		return nil
	}
}

// WithCertificates sets the client certificates presented over https.
func WithCertificates(certs ...tls.Certificate) Option {
	return func(o *options) error {
		o.certificates = certs
		return nil
	}
}

// WithRootCAs sets the pool used to verify server certificates over https.
// The system pool is used when unset.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(o *options) error {
		if pool == nil {
			return errors.New("root CA pool must not be nil")
		}
		o.rootCAs = pool
		return nil
	}
}

// WithTransport replaces the default [transport.HTTP].
func WithTransport(tr transport.Transport) Option {
	return func(o *options) error {
		if tr == nil {
			return errors.New("transport must not be nil")
		}
		o.transport = tr
		return nil
	}
}

// WithMaxWorkers bounds the number of requests the default transport runs
// at once. It has no effect together with [WithTransport].
func WithMaxWorkers(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return errors.New("max workers must not be negative")
		}
		o.maxWorkers = n
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used to start one span per request.
// A no-op tracer is used when unset.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// CallOption is a functional option for a single request.
type CallOption func(*callOpts) error

type callOpts struct {
	headers map[string]string
	query   url.Values
	charset string
}

// WithCallHeaders adds headers to one request. They override client
// headers of the same name.
func WithCallHeaders(headers map[string]string) CallOption {
	return func(o *callOpts) error {
		o.headers = headers
		return nil
	}
}

// WithQuery appends query parameters to the request URL.
func WithQuery(query url.Values) CallOption {
	return func(o *callOpts) error {
		o.query = query
		return nil
	}
}

// WithCharset sets the charset of the request body and the charset used
// to decode the response, overriding the one the response advertises.
func WithCharset(charset string) CallOption {
	return func(o *callOpts) error {
		if charset == "" {
			return errors.New("cannot use empty charset")
		}
		o.charset = charset
		return nil
	}
}
