package espn

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"fantasy-gm-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://espn.test",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchSlateMapsScoreboard(t *testing.T) {
	var capturedQuery string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/scoreboard" {
			t.Fatalf("expected /scoreboard path, got %s", req.URL.Path)
		}
		capturedQuery = req.URL.RawQuery

		body := `{
			"events": [
				{
					"id": "401",
					"competitions": [
						{
							"competitors": [
								{ "homeAway": "home", "team": { "abbreviation": "BOS" } },
								{ "homeAway": "away", "team": { "abbreviation": "GS" } }
							]
						}
					]
				},
				{
					"id": "402",
					"competitions": [
						{
							"competitors": [
								{ "homeAway": "home", "team": { "abbreviation": "PHL" } },
								{ "homeAway": "away", "team": { "abbreviation": "NY" } }
							]
						}
					]
				}
			]
		}`
		return jsonResponse(http.StatusOK, body), nil
	})

	slate, err := newTestClient(rt).FetchSlate(context.Background(), "2026-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedQuery != "dates=20260105" {
		t.Fatalf("expected compact date query, got %q", capturedQuery)
	}
	if slate.Date != "2026-01-05" {
		t.Fatalf("unexpected slate date %q", slate.Date)
	}

	// Alternate spellings collapse to canonical codes.
	for _, code := range []string{"BOS", "GSW", "PHI", "NYK"} {
		if !slate.Teams.Contains(code) {
			t.Fatalf("expected %s in playing set, got %v", code, slate.Teams.Codes())
		}
	}
	if got := slate.Opponent("GSW"); got != "BOS" {
		t.Fatalf("expected GSW opponent BOS, got %s", got)
	}
	if got := slate.Opponent("NY"); got != "PHI" {
		t.Fatalf("expected NY opponent PHI, got %s", got)
	}
}

func TestFetchSlateDefaultsToToday(t *testing.T) {
	var capturedQuery string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedQuery = req.URL.RawQuery
		return jsonResponse(http.StatusOK, `{"events": []}`), nil
	})

	client := newTestClient(rt)
	client.now = func() time.Time {
		return time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	}
	client.loc = time.UTC

	slate, err := client.FetchSlate(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedQuery != "dates=20260105" {
		t.Fatalf("expected today's compact date, got %q", capturedQuery)
	}
	if slate.Date != "2026-01-05" {
		t.Fatalf("unexpected slate date %q", slate.Date)
	}
	if len(slate.Teams) != 0 {
		t.Fatalf("expected empty slate, got %v", slate.Teams.Codes())
	}
}

func TestFetchSlateRateLimited(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, `{}`)
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})

	_, err := newTestClient(rt).FetchSlate(context.Background(), "2026-01-05")
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 7*time.Second {
		t.Fatalf("expected retry-after 7s, got %s", rlErr.RetryAfter)
	}
	if rlErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", rlErr.StatusCode)
	}
}

func TestFetchSlateUnexpectedStatus(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `upstream broke`), nil
	})

	_, err := newTestClient(rt).FetchSlate(context.Background(), "2026-01-05")
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected status error, got %v", err)
	}
}
