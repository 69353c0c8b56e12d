package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/metrics"
)

type flakySlateProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakySlateProvider) FetchSlate(ctx context.Context, date string) (domain.DaySlate, error) {
	f.calls++
	if f.calls <= f.failures {
		return domain.DaySlate{}, f.err
	}
	return domain.DaySlate{Date: date, Teams: domain.NewTeamSet("BOS", "LAL")}, nil
}

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestRetryingScheduleProviderRecoversAfterFailures(t *testing.T) {
	inner := &flakySlateProvider{failures: 2, err: errors.New("upstream down")}
	rec := metrics.NewRecorder()
	p := NewRetryingScheduleProvider(inner, "espn-scoreboard", fastPolicy(3), nil, rec)

	slate, err := p.FetchSlate(context.Background(), "2026-01-05")
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if !slate.Teams.Contains("BOS") {
		t.Fatalf("unexpected slate %+v", slate)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
	if got := rec.ProviderErrors("espn-scoreboard"); got != 2 {
		t.Fatalf("expected 2 recorded errors, got %d", got)
	}
}

func TestRetryingScheduleProviderGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakySlateProvider{failures: 10, err: errors.New("upstream down")}
	p := NewRetryingScheduleProvider(inner, "espn-scoreboard", fastPolicy(3), nil, nil)

	_, err := p.FetchSlate(context.Background(), "2026-01-05")
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryingScheduleProviderStopsOnCanceledContext(t *testing.T) {
	inner := &flakySlateProvider{failures: 10, err: errors.New("upstream down")}
	p := NewRetryingScheduleProvider(inner, "espn-scoreboard", RetryPolicy{MaxAttempts: 3, InitialDelay: time.Hour, MaxDelay: time.Hour}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.FetchSlate(ctx, "2026-01-05")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", inner.calls)
	}
}

type rateLimitedStandings struct {
	calls int
}

func (r *rateLimitedStandings) FetchWinPercentages(ctx context.Context) (domain.SOSMap, error) {
	r.calls++
	if r.calls == 1 {
		return nil, &RateLimitError{Provider: "espn-standings", StatusCode: 429, RetryAfter: 5 * time.Millisecond}
	}
	return domain.SOSMap{"BOS": 0.7}, nil
}

func TestRetryingStandingsProviderHonorsRetryAfter(t *testing.T) {
	inner := &rateLimitedStandings{}
	rec := metrics.NewRecorder()
	p := NewRetryingStandingsProvider(inner, "espn-standings", fastPolicy(3), nil, rec)

	start := time.Now()
	sos, err := p.FetchWinPercentages(context.Background())
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if sos["BOS"] != 0.7 {
		t.Fatalf("unexpected sos %+v", sos)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Fatalf("expected retry-after spacing, elapsed %s", elapsed)
	}
	if got := rec.RateLimitHits("espn-standings"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
}

func TestRetryingLeagueProviderRejectsNilInner(t *testing.T) {
	p := NewRetryingLeagueProvider(nil, "espn-fantasy", fastPolicy(3), nil, nil)

	if _, err := p.FetchMatchups(context.Background(), LeagueRef{}); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := p.FetchFreeAgents(context.Background(), LeagueRef{}, 10); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
