package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/braginxv/netgym/transport"
)

// pending is the single result of one in-flight call. It is resolved
// exactly once; later resolutions are rejected.
type pending struct {
	once sync.Once
	done chan struct{}
	resp *transport.Response
	err  error
}

func newPending() *pending {
	return &pending{
		done: make(chan struct{}),
		err:  unresolved,
	}
}

// resolve stores the outcome and wakes the waiter. It returns
// ErrAlreadyResolved if the call was already resolved.
func (p *pending) resolve(resp *transport.Response, err error) error {
	resolved := false
	p.once.Do(func() {
		p.resp, p.err = resp, err
		resolved = true
		close(p.done)
	})

	if !resolved {
		return ErrAlreadyResolved
	}
	return nil
}

// wait blocks until the call resolves or ctx ends. The call has no
// timeout of its own.
func (p *pending) wait(ctx context.Context) (*transport.Response, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return nil, fmt.Errorf("awaiting response: %w", ctx.Err())
	}

	if p.err != nil {
		return nil, p.err
	}
	if p.resp == nil {
		return nil, unresolved
	}

	return p.resp, nil
}

// listener adapts a pending call to the transport's callback contract.
type listener struct {
	p      *pending
	id     string
	logger *slog.Logger
}

func (l listener) Succeeded(resp *transport.Response) {
	if err := l.p.resolve(resp, nil); err != nil {
		l.logger.Error("transport delivered a second result", "request_id", l.id, "outcome", "success", "error", err)
	}
}

func (l listener) Failed(err error) {
	if err == nil {
		err = ErrUnresolved
	}

	nerr := &NetworkError{Message: err.Error(), Err: err}
	if rerr := l.p.resolve(nil, nerr); rerr != nil {
		l.logger.Error("transport delivered a second result", "request_id", l.id, "outcome", "failure", "error", rerr, "failure", err)
	}
}
