package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/braginxv/netgym/transport"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Client issues requests against one base URL over a single connection
// whose reuse strategy is fixed at [Build] time.
// The connection is created on the first request.
type Client struct {
	cfg    *config
	tr     transport.Transport
	owned  *transport.HTTP
	conn   func() (transport.Conn, error)
	opened atomic.Bool
	logger *slog.Logger
	tracer trace.Tracer
}

// Build creates a Client for baseURL. Unless overridden via options,
// it uses the [Closable] lifetime, [DefaultUserAgent], a [transport.HTTP]
// transport, the default slog logger and a no-op tracer.
func Build(baseURL string, optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	cfg, err := newConfig(baseURL, opts)
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:    cfg,
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer("no-op tracer"),
	}

	if opts.logger != nil {
		c.logger = opts.logger
	}

	if opts.tracer != nil {
		c.tracer = opts.tracer
	}

	if opts.transport != nil {
		c.tr = opts.transport
	} else {
		h := transport.NewHTTP(opts.maxWorkers, func() *slog.Logger { return c.logger })
		c.tr, c.owned = h, h
	}

	c.conn = sync.OnceValues(c.open)

	return c, nil
}

// Lifetime returns the connection reuse strategy of the client.
func (c *Client) Lifetime() Lifetime {
	return c.cfg.Lifetime
}

// Close closes the connection, if one was opened, and shuts down the
// default transport. Requests still in flight complete first.
func (c *Client) Close() error {
	var err error
	if c.opened.Load() {
		conn, _ := c.conn()
		if cerr := conn.Close(); cerr != nil {
			err = fmt.Errorf("closing connection: %w", cerr)
		}
	}

	if c.owned != nil {
		c.owned.Shutdown()
	}

	return err
}

// open creates the client's connection. It runs at most once.
func (c *Client) open() (transport.Conn, error) {
	conn, err := connect(c.tr, c.cfg)
	if err != nil {
		return nil, err
	}
	c.opened.Store(true)

	c.logger.Info("connection opened", "channel", conn.ID().String(), "lifetime", c.cfg.Lifetime.String(), "base_url", c.cfg.BaseURL)

	return conn, nil
}

// payload is the body of a request, at most one field set.
type payload struct {
	contentType string
	body        []byte
	params      url.Values
	fields      []transport.Field
}

// do sends one request and blocks until the transport resolves it or ctx
// ends. target is sent as is.
func (c *Client) do(ctx context.Context, method, target string, pl payload, optFns []CallOption) (*transport.Response, callOpts, error) {
	var settings callOpts
	for _, opt := range optFns {
		if err := opt(&settings); err != nil {
			return nil, settings, err
		}
	}

	conn, err := c.conn()
	if err != nil {
		return nil, settings, fmt.Errorf("opening connection: %w", err)
	}

	req := &transport.Request{
		Method:      method,
		Path:        target,
		Query:       settings.query,
		Header:      mergeHeaders(c.cfg.Headers, c.cfg.UserAgent, settings.headers).header(),
		ContentType: pl.contentType,
		Charset:     settings.charset,
		Body:        pl.body,
		Params:      pl.params,
		Fields:      pl.fields,
	}

	ctx, span := c.tracer.Start(ctx, "netgym.request", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", target),
		attribute.String("netgym.lifetime", c.cfg.Lifetime.String()),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	requestID := span.SpanContext().TraceID().String()
	if !span.SpanContext().TraceID().IsValid() {
		requestID = uuid.New().String()
	}

	p := newPending()
	conn.Send(ctx, req, listener{p: p, id: requestID, logger: c.logger})

	resp, err := p.wait(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("request failed", "request_id", requestID, "method", method, "path", target, "error", err)
		return nil, settings, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return resp, settings, nil
}

// text sends a request and decodes the response body.
func (c *Client) text(ctx context.Context, method, target string, pl payload, optFns []CallOption) (string, error) {
	resp, settings, err := c.do(ctx, method, target, pl, optFns)
	if err != nil {
		return "", err
	}

	charset := settings.charset
	if charset == "" {
		charset = resp.Charset
	}

	s, err := decode(resp.Body, charset)
	if err != nil {
		return "", &NetworkError{Message: err.Error(), Err: err}
	}

	return s, nil
}

// raw sends a request and returns the undecoded response body.
func (c *Client) raw(ctx context.Context, method, target string, pl payload, optFns []CallOption) ([]byte, error) {
	resp, _, err := c.do(ctx, method, target, pl, optFns)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// target joins the base path with a resource path. No slashes are added
// or removed.
func (c *Client) target(path string) string {
	return c.cfg.basePath + path
}
