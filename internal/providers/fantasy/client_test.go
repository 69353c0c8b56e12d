package fantasy

import (
	"context"
	"encoding/json"
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
		BaseURL:    "http://fantasy.test",
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

func testRef() providers.LeagueRef {
	return providers.LeagueRef{
		Name:   "Liga Principal",
		ID:     12345,
		Year:   2026,
		SWID:   "{abc-def}",
		EspnS2: "secret",
	}
}

const leagueBody = `{
	"status": { "currentMatchupPeriod": 12 },
	"teams": [
		{
			"id": 1,
			"name": "Max Attack",
			"roster": {
				"entries": [
					{
						"playerId": 1001,
						"lineupSlotId": 0,
						"playerPoolEntry": {
							"player": {
								"id": 1001,
								"fullName": "Star Guard",
								"defaultPositionId": 1,
								"proTeamId": 9,
								"injuryStatus": "ACTIVE",
								"stats": [
									{
										"statSourceId": 0,
										"statSplitTypeId": 0,
										"averageStats": { "0": 25.5, "3": 8.1, "6": 4.2, "40": 34.0 }
									}
								]
							}
						}
					},
					{
						"playerId": 1002,
						"lineupSlotId": 13,
						"playerPoolEntry": {
							"player": {
								"id": 1002,
								"fullName": "Hurt Center",
								"defaultPositionId": 5,
								"proTeamId": 26,
								"injuryStatus": "OUT"
							}
						}
					}
				]
			}
		},
		{
			"id": 2,
			"location": "Rival",
			"nickname": "Squad",
			"roster": { "entries": [] }
		}
	],
	"schedule": [
		{
			"matchupPeriodId": 11,
			"home": { "teamId": 1 },
			"away": { "teamId": 2 }
		},
		{
			"matchupPeriodId": 12,
			"home": {
				"teamId": 1,
				"cumulativeScore": { "scoreByStat": { "0": { "score": 310.0 }, "6": { "score": 120.0 } } }
			},
			"away": {
				"teamId": 2,
				"cumulativeScore": { "scoreByStat": { "0": { "score": 295.0 }, "6": { "score": 131.0 } } }
			}
		}
	]
}`

func TestFetchMatchupsJoinsTeamsAndSchedule(t *testing.T) {
	var capturedCookies []*http.Cookie
	var capturedViews []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if !strings.HasSuffix(req.URL.Path, "/seasons/2026/segments/0/leagues/12345") {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		capturedCookies = req.Cookies()
		capturedViews = req.URL.Query()["view"]
		return jsonResponse(http.StatusOK, leagueBody), nil
	})

	matchups, err := newTestClient(rt).FetchMatchups(context.Background(), testRef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantViews := map[string]bool{viewTeam: false, viewRoster: false, viewMatchupScore: false}
	for _, v := range capturedViews {
		wantViews[v] = true
	}
	for view, seen := range wantViews {
		if !seen {
			t.Fatalf("expected view %s in query, got %v", view, capturedViews)
		}
	}

	cookies := map[string]string{}
	for _, c := range capturedCookies {
		cookies[c.Name] = c.Value
	}
	if cookies[cookieSWID] != "{abc-def}" || cookies[cookieEspnS2] != "secret" {
		t.Fatalf("expected credential cookies, got %v", cookies)
	}

	// Only the current matchup period survives.
	if len(matchups) != 1 {
		t.Fatalf("expected 1 matchup, got %d", len(matchups))
	}
	m := matchups[0]
	if m.Week != 12 {
		t.Fatalf("expected week 12, got %d", m.Week)
	}
	if m.Home.Team.Name != "Max Attack" {
		t.Fatalf("unexpected home team %q", m.Home.Team.Name)
	}
	if m.Away.Team.Name != "Rival Squad" {
		t.Fatalf("expected location/nickname join, got %q", m.Away.Team.Name)
	}
	if m.Home.Totals.Points != 310.0 || m.Away.Totals.Rebounds != 131.0 {
		t.Fatalf("unexpected totals %+v / %+v", m.Home.Totals, m.Away.Totals)
	}

	roster := m.Home.Team.Roster
	if len(roster) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(roster))
	}
	star := roster[0]
	if star.Name != "Star Guard" || star.Position != "PG" || star.ProTeam != "GS" || star.LineupSlot != "PG" {
		t.Fatalf("unexpected entry %+v", star)
	}
	if star.Averages.Points != 25.5 || star.Averages.Minutes != 34.0 {
		t.Fatalf("unexpected averages %+v", star.Averages)
	}
	hurt := roster[1]
	if hurt.LineupSlot != "IR" || hurt.InjuryStatus != "OUT" || hurt.ProTeam != "UTAH" {
		t.Fatalf("unexpected entry %+v", hurt)
	}
}

func TestFetchFreeAgentsSendsFilterHeader(t *testing.T) {
	var capturedFilter string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedFilter = req.Header.Get(filterHeader)
		body := `{
			"players": [
				{
					"status": "WAIVERS",
					"player": {
						"id": 2001,
						"fullName": "Streaming Wing",
						"defaultPositionId": 3,
						"proTeamId": 20,
						"injuryStatus": "ACTIVE",
						"ownership": { "percentOwned": 45.2, "percentChange": 2.3 },
						"stats": [
							{ "statSourceId": 0, "statSplitTypeId": 0, "averageStats": { "0": 14.0, "40": 26.0 } }
						]
					}
				},
				{
					"status": "FREEAGENT",
					"player": { "id": 2002, "fullName": "Deep Bench", "defaultPositionId": 5, "proTeamId": 24 }
				}
			]
		}`
		return jsonResponse(http.StatusOK, body), nil
	})

	agents, err := newTestClient(rt).FetchFreeAgents(context.Background(), testRef(), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var filter struct {
		Players struct {
			Limit        int `json:"limit"`
			FilterStatus struct {
				Value []string `json:"value"`
			} `json:"filterStatus"`
		} `json:"players"`
	}
	if err := json.Unmarshal([]byte(capturedFilter), &filter); err != nil {
		t.Fatalf("filter header is not JSON: %v", err)
	}
	if filter.Players.Limit != 25 {
		t.Fatalf("expected limit 25, got %d", filter.Players.Limit)
	}
	if len(filter.Players.FilterStatus.Value) != 2 {
		t.Fatalf("expected FREEAGENT+WAIVERS filter, got %v", filter.Players.FilterStatus.Value)
	}

	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(agents))
	}
	wing := agents[0]
	if !wing.OnWaivers || wing.PercentChange != 2.3 || wing.ProTeam != "PHL" {
		t.Fatalf("unexpected agent %+v", wing)
	}
	if agents[1].OnWaivers {
		t.Fatal("free agent should not be flagged as on waivers")
	}
	if agents[1].ProTeam != "SA" {
		t.Fatalf("unexpected pro team %q", agents[1].ProTeam)
	}
}

func TestFetchMatchupsRejectedCredentials(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{}`), nil
	})

	_, err := newTestClient(rt).FetchMatchups(context.Background(), testRef())
	if err == nil || !strings.Contains(err.Error(), "SWID") {
		t.Fatalf("expected credential error, got %v", err)
	}
}

func TestFetchMatchupsRateLimited(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, `{}`)
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})

	_, err := newTestClient(rt).FetchMatchups(context.Background(), testRef())
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected retry-after 30s, got %s", rlErr.RetryAfter)
	}
}
