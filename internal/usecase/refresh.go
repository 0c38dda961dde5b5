package usecase

import (
	"context"
	"time"

	"NewsPulse/internal/ports"
)

// DigestRefresher wires the cron-like driver with the digest channel so the
// daily aggregate stays fresh in the background.
type DigestRefresher struct {
	driver  ports.Scheduler
	fetcher *Fetcher
}

// NewDigestRefresher returns a helper to start/stop the recurring refresh.
func NewDigestRefresher(driver ports.Scheduler, fetcher *Fetcher) *DigestRefresher {
	return &DigestRefresher{driver: driver, fetcher: fetcher}
}

// Start registers the digest refresh with the provided scheduler.
func (r *DigestRefresher) Start(ctx context.Context) error {
	if r.driver == nil || r.fetcher == nil {
		return nil
	}

	job := func(time.Time) {
		r.fetcher.RefreshDigest(ctx)
	}

	return r.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (r *DigestRefresher) Stop(ctx context.Context) error {
	if r.driver == nil {
		return nil
	}

	return r.driver.Stop(ctx)
}
