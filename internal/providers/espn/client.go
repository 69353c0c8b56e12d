package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/providers"
	"fantasy-gm-service/internal/timeutil"
)

// Config controls how the client reaches the public ESPN site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches the daily scoreboard and standings from the public ESPN site
// API and maps them to domain models. It needs no credentials.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs an ESPN site API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchSlate retrieves the game slate for the given YYYY-MM-DD date. An empty
// date means today in the client's timezone.
func (c *Client) FetchSlate(ctx context.Context, date string) (domain.DaySlate, error) {
	date = c.resolveDate(date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+scoreboardPath, nil)
	if err != nil {
		return domain.DaySlate{}, err
	}
	q := req.URL.Query()
	q.Set("dates", compactDate(date))
	req.URL.RawQuery = q.Encode()

	var payload scoreboardResponse
	if err := c.getJSON(req, &payload); err != nil {
		return domain.DaySlate{}, err
	}

	return mapSlate(date, payload), nil
}

func (c *Client) getJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := timeutil.ParseDate(date); err == nil {
			return date
		}
	}
	return timeutil.FormatDate(c.now().In(c.loc))
}

func compactDate(date string) string {
	t, err := timeutil.ParseDate(date)
	if err != nil {
		return strings.ReplaceAll(date, "-", "")
	}
	return timeutil.CompactDate(t)
}
