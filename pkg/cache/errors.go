package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks backend failures that may succeed on a later attempt,
// such as timeouts and refused connections.
var ErrUnavailable = errors.New("cache backend unavailable")

// RetryableError marks an error as transient for Retry.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err or any error it wraps is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryPolicy bounds Retry. The delay doubles after every failed attempt.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryPolicy tries three times, waiting one and then two seconds.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Delay: time.Second}

// Retry calls fn until it succeeds, returns an error that is not retryable,
// or p.Attempts calls have failed. It returns the last error of fn, or the
// context error if ctx ends while waiting.
func Retry(ctx context.Context, p RetryPolicy, fn func() error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	delay := p.Delay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == p.Attempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}

// RetryWithBackoff is Retry with DefaultRetryPolicy.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, DefaultRetryPolicy, fn)
}
