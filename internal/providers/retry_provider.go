package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultInitialDelay  = 2 * time.Second
	defaultMaxDelay      = 10 * time.Second
)

// RetryPolicy describes how provider calls are retried. A zero value gets
// sane defaults.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultRetryAttempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = defaultInitialDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = defaultMaxDelay
	}
	return p
}

func (p RetryPolicy) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialDelay
	b.MaxInterval = p.MaxDelay
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// doWithRetry runs call under the retry policy. Exponential backoff comes from
// the policy; a rate limited response stretches the next delay to at least the
// upstream Retry-After. Every attempt is recorded against the provider name.
func doWithRetry[T any](
	ctx context.Context,
	policy RetryPolicy,
	logger *slog.Logger,
	rec *metrics.Recorder,
	provider string,
	call func(context.Context) (T, error),
) (T, error) {
	var zero T
	policy = policy.normalized()
	delays := policy.newBackOff()

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		start := time.Now()
		value, err := call(ctx)
		rec.RecordProviderAttempt(provider, time.Since(start), err)
		if err == nil {
			return value, nil
		}
		lastErr = err

		delay := delays.NextBackOff()
		if rlErr, ok := AsRateLimitError(err); ok {
			rec.RecordRateLimit(provider, rlErr.RetryAfter)
			if rlErr.RetryAfter > delay {
				delay = rlErr.RetryAfter
			}
		}

		if attempt == policy.MaxAttempts {
			break
		}

		logWithProvider(ctx, logger, slog.LevelWarn, provider, "provider fetch retry",
			"attempt", attempt, "max_attempts", policy.MaxAttempts, "delay", delay, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, logger, slog.LevelWarn, provider, "provider fetch failed",
		"attempts", policy.MaxAttempts, "err", lastErr)
	return zero, lastErr
}

type retryingScheduleProvider struct {
	inner  ScheduleProvider
	name   string
	policy RetryPolicy
	logger *slog.Logger
	rec    *metrics.Recorder
}

// NewRetryingScheduleProvider wraps a ScheduleProvider with the retry policy.
func NewRetryingScheduleProvider(inner ScheduleProvider, name string, policy RetryPolicy, logger *slog.Logger, rec *metrics.Recorder) ScheduleProvider {
	return &retryingScheduleProvider{inner: inner, name: name, policy: policy, logger: logger, rec: rec}
}

func (r *retryingScheduleProvider) FetchSlate(ctx context.Context, date string) (domain.DaySlate, error) {
	if r.inner == nil {
		return domain.DaySlate{}, ErrProviderUnavailable
	}
	return doWithRetry(ctx, r.policy, r.logger, r.rec, r.name, func(ctx context.Context) (domain.DaySlate, error) {
		return r.inner.FetchSlate(ctx, date)
	})
}

type retryingStandingsProvider struct {
	inner  StandingsProvider
	name   string
	policy RetryPolicy
	logger *slog.Logger
	rec    *metrics.Recorder
}

// NewRetryingStandingsProvider wraps a StandingsProvider with the retry policy.
func NewRetryingStandingsProvider(inner StandingsProvider, name string, policy RetryPolicy, logger *slog.Logger, rec *metrics.Recorder) StandingsProvider {
	return &retryingStandingsProvider{inner: inner, name: name, policy: policy, logger: logger, rec: rec}
}

func (r *retryingStandingsProvider) FetchWinPercentages(ctx context.Context) (domain.SOSMap, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return doWithRetry(ctx, r.policy, r.logger, r.rec, r.name, func(ctx context.Context) (domain.SOSMap, error) {
		return r.inner.FetchWinPercentages(ctx)
	})
}

type retryingLeagueProvider struct {
	inner  LeagueProvider
	name   string
	policy RetryPolicy
	logger *slog.Logger
	rec    *metrics.Recorder
}

// NewRetryingLeagueProvider wraps a LeagueProvider with the retry policy.
func NewRetryingLeagueProvider(inner LeagueProvider, name string, policy RetryPolicy, logger *slog.Logger, rec *metrics.Recorder) LeagueProvider {
	return &retryingLeagueProvider{inner: inner, name: name, policy: policy, logger: logger, rec: rec}
}

func (r *retryingLeagueProvider) FetchMatchups(ctx context.Context, ref LeagueRef) ([]domain.Matchup, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return doWithRetry(ctx, r.policy, r.logger, r.rec, r.name, func(ctx context.Context) ([]domain.Matchup, error) {
		return r.inner.FetchMatchups(ctx, ref)
	})
}

func (r *retryingLeagueProvider) FetchFreeAgents(ctx context.Context, ref LeagueRef, limit int) ([]domain.FreeAgent, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return doWithRetry(ctx, r.policy, r.logger, r.rec, r.name, func(ctx context.Context) ([]domain.FreeAgent, error) {
		return r.inner.FetchFreeAgents(ctx, ref, limit)
	})
}
