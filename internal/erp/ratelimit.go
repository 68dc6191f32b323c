package erp

import (
	"context"

	"golang.org/x/time/rate"
)

// Package-level rate limiter shared by all record store calls. The store
// throttles aggressively, so requests queue here instead of failing there.
var (
	defaultRate  = rate.Limit(10) // requests per second
	defaultBurst = 20
	limiter      = rate.NewLimiter(defaultRate, defaultBurst)
)

// Acquire blocks until a token is available or the context is done.
func Acquire(ctx context.Context) error {
	return limiter.Wait(ctx)
}

// Configure replaces the limiter with the given rate and burst.
func Configure(rateLimit float64, burst int) {
	if rateLimit <= 0 {
		return
	}
	limiter = rate.NewLimiter(rate.Limit(rateLimit), burst)
}

// SetLimiter allows tests to replace the limiter.
func SetLimiter(l *rate.Limiter) {
	if l != nil {
		limiter = l
	}
}
