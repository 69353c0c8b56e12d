package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fantasy-gm-service/internal/domain"
)

// rateLimitedLeagueProvider enforces a minimum interval between upstream
// fantasy calls. The fantasy API tolerates far less traffic than the public
// scoreboard, so calls block until the interval elapses.
type rateLimitedLeagueProvider struct {
	next     LeagueProvider
	interval time.Duration
	logger   *slog.Logger

	mu          sync.Mutex
	nextAllowed time.Time
}

// NewRateLimitedLeagueProvider returns a LeagueProvider that spaces calls by
// at least the given interval.
func NewRateLimitedLeagueProvider(next LeagueProvider, interval time.Duration, logger *slog.Logger) LeagueProvider {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &rateLimitedLeagueProvider{
		next:     next,
		interval: interval,
		logger:   logger,
	}
}

// reserve claims the next call slot and returns how long the caller must wait
// before using it.
func (p *rateLimitedLeagueProvider) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	wait := p.nextAllowed.Sub(now)
	if wait < 0 {
		wait = 0
	}
	p.nextAllowed = now.Add(wait + p.interval)
	return wait
}

func (p *rateLimitedLeagueProvider) wait(ctx context.Context) error {
	delay := p.reserve()
	if delay == 0 {
		return nil
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "spacing fantasy call", "delay", delay)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (p *rateLimitedLeagueProvider) FetchMatchups(ctx context.Context, ref LeagueRef) ([]domain.Matchup, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchMatchups(ctx, ref)
}

func (p *rateLimitedLeagueProvider) FetchFreeAgents(ctx context.Context, ref LeagueRef, limit int) ([]domain.FreeAgent, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchFreeAgents(ctx, ref, limit)
}
