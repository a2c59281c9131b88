// Package throttle paces outbound dispatches using a token-bucket
// limiter from [golang.org/x/time/rate].
//
// # Usage
//
// Create a [Pacer] with the minimum interval between dispatches and
// call [Pacer.Wait] before each one:
//
//	p, err := throttle.NewPacer(
//		50*time.Millisecond,
//		func() *slog.Logger { return slog.Default() },
//	)
//	if err := p.Wait(ctx); err != nil { ... }
//	// dispatch
//
// When the interval has not elapsed, Wait blocks until it has or the
// context is cancelled.
package throttle
