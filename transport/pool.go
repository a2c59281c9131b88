package transport

import (
	"sync"
)

// pool runs transport work on goroutines, bounded by an optional
// concurrency limit.
type pool struct {
	wg     sync.WaitGroup
	mu     sync.Mutex
	sem    chan struct{}
	closed bool
}

// newPool creates a pool with the given concurrency limit.
// If maxWorkers <= 0, concurrency is unlimited.
func newPool(maxWorkers int) *pool {
	p := &pool{}
	if maxWorkers > 0 {
		p.sem = make(chan struct{}, maxWorkers)
	}
	return p
}

// Go launches fn on a pool goroutine. It reports false without running fn
// once the pool is shut down.
func (p *pool) Go(fn func()) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()

		if p.sem != nil {
			p.sem <- struct{}{}
			defer func() {
				<-p.sem
			}()
		}

		fn()
	}()

	return true
}

// Shutdown prevents new work from starting and blocks until running
// work completes.
func (p *pool) Shutdown() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
}
