package throttle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrNegativeInterval = errors.New("interval must not be negative")
	ErrWaitingFailed    = errors.New("limiter waiting failed")
	ErrContextEnded     = errors.New("throttle context ended")
)

// Pacer spaces out dispatches so that consecutive calls to Wait return at
// least interval apart. It uses the time/rate token bucket with a burst of
// one, so the first dispatch is never delayed.
type Pacer struct {
	limiter  *rate.Limiter
	interval time.Duration
	logFn    func() *slog.Logger
}

// NewPacer returns a Pacer for the given minimum interval. A zero interval
// disables pacing. logFn lazily resolves the logger at wait time; a
// nil-returning logFn disables logging.
func NewPacer(interval time.Duration, logFn func() *slog.Logger) (*Pacer, error) {
	if interval < 0 {
		return nil, fmt.Errorf("interval[%s]: %w", interval, ErrNegativeInterval)
	}

	p := &Pacer{
		interval: interval,
		logFn:    logFn,
	}
	if interval > 0 {
		p.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	return p, nil
}

// Interval returns the configured minimum interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the next dispatch is allowed or ctx ends.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	if p.limiter == nil {
		return nil
	}

	var waited time.Duration
	var logger *slog.Logger
	if p.logFn != nil {
		logger = p.logFn()
	}
	if logger != nil && p.limiter.Tokens() < 1 {
		defer func() {
			logger.Debug("pacer wait complete", "waited", waited.String(), "interval", p.interval.String())
		}()
	}

	start := time.Now()

	err := p.limiter.Wait(ctx)
	waited = time.Since(start)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return nil
}
