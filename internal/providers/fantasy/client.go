package fantasy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/providers"
)

// Config controls how the client reaches the fantasy v3 API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client reads private fantasy league data from the ESPN v3 API. Every call
// authenticates with the league's SWID/espn_s2 cookie pair, so one client
// serves any number of leagues.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a fantasy API client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// FetchMatchups retrieves the league's current-week matchups with full rosters
// and running category totals.
func (c *Client) FetchMatchups(ctx context.Context, ref providers.LeagueRef) ([]domain.Matchup, error) {
	req, err := c.leagueRequest(ctx, ref, []string{viewTeam, viewRoster, viewMatchupScore})
	if err != nil {
		return nil, err
	}

	var payload leagueResponse
	if err := c.do(req, ref, &payload); err != nil {
		return nil, err
	}

	return mapMatchups(payload), nil
}

// FetchFreeAgents retrieves up to limit unrostered players, sorted by percent
// owned. The filter rides in the x-fantasy-filter header the API expects.
func (c *Client) FetchFreeAgents(ctx context.Context, ref providers.LeagueRef, limit int) ([]domain.FreeAgent, error) {
	if limit <= 0 {
		limit = defaultFreeAgentLimit
	}

	req, err := c.leagueRequest(ctx, ref, []string{viewPlayerInfo})
	if err != nil {
		return nil, err
	}
	req.Header.Set(filterHeader, freeAgentFilter(limit))

	var payload playersResponse
	if err := c.do(req, ref, &payload); err != nil {
		return nil, err
	}

	agents := make([]domain.FreeAgent, 0, len(payload.Players))
	for _, entry := range payload.Players {
		agents = append(agents, mapFreeAgent(entry))
	}
	return agents, nil
}

func (c *Client) leagueRequest(ctx context.Context, ref providers.LeagueRef, views []string) (*http.Request, error) {
	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, ref.Year, ref.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for _, view := range views {
		q.Add("view", view)
	}
	req.URL.RawQuery = q.Encode()

	req.AddCookie(&http.Cookie{Name: cookieSWID, Value: ref.SWID})
	req.AddCookie(&http.Cookie{Name: cookieEspnS2, Value: ref.EspnS2})
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) do(req *http.Request, ref providers.LeagueRef, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("espn fantasy: league %q rejected credentials (status %d), check SWID/espn_s2", ref.Name, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("espn fantasy: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// freeAgentFilter builds the JSON filter for the free agent pool: unrostered
// players only, highest ownership first.
func freeAgentFilter(limit int) string {
	filter := map[string]any{
		"players": map[string]any{
			"filterStatus":  map[string]any{"value": []string{"FREEAGENT", "WAIVERS"}},
			"limit":         limit,
			"sortPercOwned": map[string]any{"sortAsc": false, "sortPriority": 1},
		},
	}
	raw, err := json.Marshal(filter)
	if err != nil {
		// Static structure, marshal cannot fail.
		return `{"players":{"limit":` + strconv.Itoa(limit) + `}}`
	}
	return string(raw)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
