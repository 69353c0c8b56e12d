package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("espn-scoreboard", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("espn-scoreboard", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("espn-scoreboard"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("espn-scoreboard"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("espn-scoreboard"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("espn-scoreboard")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("espn-fantasy", 5*time.Second)
	rec.RecordRateLimit("espn-fantasy", 0)

	if got := rec.RateLimitHits("espn-fantasy"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("espn-fantasy"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksCacheLookups(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheLookup("schedule", true)
	rec.RecordCacheLookup("schedule", true)
	rec.RecordCacheLookup("schedule", false)

	if got := rec.CacheHits("schedule"); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}
	if got := rec.CacheMisses("schedule"); got != 1 {
		t.Fatalf("expected 1 miss, got %d", got)
	}
	if got := rec.CacheHits("sos"); got != 0 {
		t.Fatalf("expected 0 hits for untouched bucket, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("espn-scoreboard", time.Millisecond, nil)
	rec.RecordRateLimit("espn-scoreboard", time.Second)
	rec.RecordCacheLookup("schedule", true)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if got := rec.ProviderCalls("espn-scoreboard"); got != 0 {
		t.Fatalf("expected 0 calls on nil recorder, got %d", got)
	}
}

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown should be a no-op: %v", err)
	}
}
