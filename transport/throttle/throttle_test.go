package throttle

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestNewPacer_Validation(t *testing.T) {
	testCases := []struct {
		name     string
		interval time.Duration
		expErr   error
	}{
		{
			name:     "Invalid interval (negative)",
			interval: -time.Millisecond,
			expErr:   ErrNegativeInterval,
		},
		{
			name:     "Zero interval disables pacing",
			interval: 0,
		},
		{
			name:     "Valid input",
			interval: 10 * time.Millisecond,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPacer(tc.interval, func() *slog.Logger { return nil })

			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Errorf("exp err %v; got: %v", tc.expErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("exp nil err, got: %v", err)
			}
			if p == nil {
				t.Fatal("exp non-nil Pacer")
			}
			if p.Interval() != tc.interval {
				t.Errorf("exp interval %v, got %v", tc.interval, p.Interval())
			}
		})
	}
}

func TestPacer_Behavior(t *testing.T) {
	checkContextEnded := func(t *testing.T, err error, caseName string) {
		if err == nil {
			t.Errorf("%s should have returned an error", caseName)
		}
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("%s should have returned context.Canceled or context.DeadlineExceeded, got %v", caseName, err)
		}
	}

	checkWaitingFailed := func(t *testing.T, err error, caseName string) {
		if !errors.Is(err, ErrWaitingFailed) {
			t.Errorf("%s should have returned ErrWaitingFailed, got: %v", caseName, err)
		}
	}

	testCases := []struct {
		name        string
		interval    time.Duration
		numWaits    int
		timeout     time.Duration
		preCancel   bool
		expErrs     int
		errorCheck  func(t *testing.T, err error, caseName string)
		minDuration time.Duration
		maxDuration time.Duration
	}{
		{
			name:        "No Interval - Fast",
			interval:    0,
			numWaits:    50,
			timeout:     time.Second,
			maxDuration: 50 * time.Millisecond,
		},
		{
			name:        "Interval Spaces Waits",
			interval:    20 * time.Millisecond,
			numWaits:    4, // first is free, 3 more wait one interval each
			timeout:     time.Second,
			minDuration: 3 * 20 * time.Millisecond * 9 / 10,
		},
		{
			name:       "Deadline Shorter Than Interval",
			interval:   200 * time.Millisecond,
			numWaits:   2,
			timeout:    20 * time.Millisecond,
			expErrs:    1,
			errorCheck: checkWaitingFailed,
		},
		{
			name:        "Pre-Cancelled Context Fails Early",
			interval:    time.Second,
			numWaits:    1,
			timeout:     time.Second,
			preCancel:   true,
			expErrs:     1,
			errorCheck:  checkContextEnded,
			maxDuration: 50 * time.Millisecond,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPacer(tc.interval, func() *slog.Logger { return slog.Default() })
			if err != nil {
				t.Fatal(err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), tc.timeout)
			defer cancel()
			if tc.preCancel {
				cancel()
			}

			start := time.Now()

			var failed int
			for i := 0; i < tc.numWaits; i++ {
				if err := p.Wait(ctx); err != nil {
					failed++
					t.Logf("Wait %d failed with: %v", i, err)
					if tc.errorCheck != nil {
						tc.errorCheck(t, err, tc.name)
					}
				}
			}
			duration := time.Since(start)

			if failed != tc.expErrs {
				t.Errorf("expected %d failed waits; got %d", tc.expErrs, failed)
			}
			if tc.minDuration > 0 && duration < tc.minDuration {
				t.Errorf("[%s] should be slowed down (>= %v), but took %v", tc.name, tc.minDuration, duration)
			}
			if tc.maxDuration > 0 && duration > tc.maxDuration {
				t.Errorf("[%s] should be fast (< %v); but took %v", tc.name, tc.maxDuration, duration)
			}
		})
	}
}

func TestPacer_PreCancelledWrapsContextEnded(t *testing.T) {
	p, err := NewPacer(time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = p.Wait(ctx)
	if !errors.Is(err, ErrContextEnded) {
		t.Errorf("exp ErrContextEnded, got: %v", err)
	}
}
