package espn

import (
	"context"
	"net/http"

	"fantasy-gm-service/internal/domain"
)

// FetchWinPercentages retrieves current standings and returns each team's win
// percentage, keyed by canonical team code.
func (c *Client) FetchWinPercentages(ctx context.Context) (domain.SOSMap, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+standingsPath, nil)
	if err != nil {
		return nil, err
	}

	var payload standingsResponse
	if err := c.getJSON(req, &payload); err != nil {
		return nil, err
	}

	return mapStandings(payload), nil
}
