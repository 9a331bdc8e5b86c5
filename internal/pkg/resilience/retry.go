package resilience

import (
	"context"
	"log/slog"
	"time"

	"hotelbooking/internal/pkg/errs"
)

var ErrRetriesExhausted = errs.New("retries exhausted")

// Sleeper abstracts the backoff wait so tests can run with a fake.
type Sleeper func(ctx context.Context, d time.Duration) error

func CtxSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Retryer re-invokes an operation on retryable failures with
// exponential backoff. The caller decides retryability per error, so
// conflicts and client errors pass through untouched while transient
// upstream failures are retried.
type Retryer struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	Multiplier     float64
	Sleep          Sleeper
}

func NewRetryer(maxAttempts int, initialBackoff time.Duration, multiplier float64) *Retryer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if multiplier < 1 {
		multiplier = 1
	}
	return &Retryer{
		MaxAttempts:    maxAttempts,
		InitialBackoff: initialBackoff,
		Multiplier:     multiplier,
		Sleep:          CtxSleep,
	}
}

// Do runs fn up to MaxAttempts times. A nil error returns immediately.
// Errors for which retryable returns false are returned as-is; after
// the last attempt the final error is marked with ErrRetriesExhausted.
func (r *Retryer) Do(ctx context.Context, fn func(ctx context.Context) error, retryable func(error) bool) error {
	backoff := r.InitialBackoff

	var err error
	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if attempt == r.MaxAttempts {
			break
		}

		slog.Warn("retrying after transient failure",
			"attempt", attempt,
			"wait_ms", backoff.Milliseconds(),
			"error", err.Error())

		if sleepErr := r.Sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
		backoff = time.Duration(float64(backoff) * r.Multiplier)
	}

	return errs.Mark(err, ErrRetriesExhausted)
}
