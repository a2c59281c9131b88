package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/braginxv/netgym/transport/throttle"
	"github.com/google/uuid"
)

// HTTP is a [Transport] backed by [net/http]. Request I/O runs on a pool
// of goroutines owned by the HTTP value.
type HTTP struct {
	pool  *pool
	logFn func() *slog.Logger
}

// NewHTTP returns an HTTP transport whose pool runs at most maxWorkers
// requests at once. If maxWorkers <= 0, concurrency is unlimited. logFn
// lazily resolves the logger; a nil logFn or a nil-returning logFn
// disables logging.
func NewHTTP(maxWorkers int, logFn func() *slog.Logger) *HTTP {
	if logFn == nil {
		logFn = func() *slog.Logger { return nil }
	}

	return &HTTP{
		pool:  newPool(maxWorkers),
		logFn: logFn,
	}
}

// Shutdown stops accepting work on any connection of this transport and
// waits for in-flight requests to complete.
func (t *HTTP) Shutdown() {
	t.pool.Shutdown()
}

func (t *HTTP) Closable(addr Address) (Conn, error) {
	rt := newBaseTransport(addr)
	rt.DisableKeepAlives = true

	return t.newConn(addr, rt, closable, nil), nil
}

func (t *HTTP) Sequential(addr Address) (Conn, error) {
	rt := newBaseTransport(addr)
	rt.MaxConnsPerHost = 1
	rt.MaxIdleConnsPerHost = 1

	return t.newConn(addr, rt, sequential, nil), nil
}

// Pipelining dispatches requests in call order. net/http does not pipeline
// HTTP/1.1, so concurrent requests share one connection only when it
// negotiates HTTP/2; otherwise idle reuse is capped to one connection.
func (t *HTTP) Pipelining(addr Address, interval time.Duration) (Conn, error) {
	pacer, err := throttle.NewPacer(interval, t.logFn)
	if err != nil {
		return nil, fmt.Errorf("configuring pacer: %w", err)
	}

	rt := newBaseTransport(addr)
	rt.MaxIdleConnsPerHost = 1

	return t.newConn(addr, rt, pipelining, pacer), nil
}

type mode int

const (
	closable mode = iota
	sequential
	pipelining
)

func (m mode) String() string {
	switch m {
	case closable:
		return "closable"
	case sequential:
		return "sequential"
	case pipelining:
		return "pipelining"
	default:
		return "unknown"
	}
}

// job is one request waiting to be dispatched.
type job struct {
	ctx context.Context
	req *Request
	l   Listener
}

type conn struct {
	id    ChannelID
	addr  Address
	mode  mode
	rt    *http.Transport
	hc    *http.Client
	pacer *throttle.Pacer
	pool  *pool
	logFn func() *slog.Logger

	mu       sync.Mutex
	queue    []job
	draining bool
	closed   bool
}

func (t *HTTP) newConn(addr Address, rt *http.Transport, m mode, pacer *throttle.Pacer) *conn {
	c := &conn{
		id:    ChannelID(uuid.New()),
		addr:  addr,
		mode:  m,
		rt:    rt,
		hc:    &http.Client{Transport: rt},
		pacer: pacer,
		pool:  t.pool,
		logFn: t.logFn,
	}

	if logger := c.logFn(); logger != nil {
		logger.Debug("connection created", "channel", c.id.String(), "address", addr.Origin(), "mode", m.String())
	}

	return c
}

func (c *conn) ID() ChannelID { return c.id }

func (c *conn) Send(ctx context.Context, req *Request, l Listener) {
	j := job{ctx: ctx, req: req, l: l}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		l.Failed(ErrClosed)
		return
	}

	if c.mode == closable {
		c.mu.Unlock()
		c.launch(j)
		return
	}

	c.queue = append(c.queue, j)
	if c.draining {
		c.mu.Unlock()
		return
	}
	c.draining = true
	c.mu.Unlock()

	if !c.pool.Go(c.drain) {
		c.failQueued(ErrClosed)
	}
}

// Close fails queued requests and releases idle network connections.
// Requests already dispatched still complete.
func (c *conn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.failQueued(ErrClosed)
	c.rt.CloseIdleConnections()

	return nil
}

// drain dispatches queued jobs one at a time, in order. For sequential
// connections a job completes, listener included, before the next one is
// dispatched. For pipelining connections a job is only paced and launched.
func (c *conn) drain() {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 || c.closed {
			c.draining = false
			c.mu.Unlock()
			return
		}
		j := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()

		switch c.mode {
		case sequential:
			c.run(j)
		case pipelining:
			if err := c.pacer.Wait(j.ctx); err != nil {
				j.l.Failed(fmt.Errorf("pacing dispatch: %w", err))
				continue
			}
			c.launch(j)
		}
	}
}

func (c *conn) launch(j job) {
	if !c.pool.Go(func() { c.run(j) }) {
		j.l.Failed(ErrClosed)
	}
}

func (c *conn) failQueued(err error) {
	c.mu.Lock()
	queued := c.queue
	c.queue = nil
	c.draining = false
	c.mu.Unlock()

	for _, j := range queued {
		j.l.Failed(err)
	}
}

// run executes the job and notifies its listener exactly once.
func (c *conn) run(j job) {
	resp, err := c.exec(j.ctx, j.req)
	if err != nil {
		j.l.Failed(err)
		return
	}

	j.l.Succeeded(resp)
}

func (c *conn) exec(ctx context.Context, r *Request) (*Response, error) {
	req, err := r.build(ctx, c.addr)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exec http do: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			if logger := c.logFn(); logger != nil {
				logger.Error("failed to close response body", "error", err)
			}
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		return nil, &UnexpectedStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
			Err:        ErrUnexpectedStatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Charset:    charsetOf(resp.Header.Get("Content-Type")),
		Body:       body,
	}, nil
}

// newBaseTransport clones the default transport for one connection.
func newBaseTransport(addr Address) *http.Transport {
	rt := http.DefaultTransport.(*http.Transport).Clone()
	if addr.TLS != nil {
		rt.TLSClientConfig = addr.TLS.Clone()
	}
	return rt
}

func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	return params["charset"]
}
