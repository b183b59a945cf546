package apifootball

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/stats"
)

const defaultBaseURL = "https://v3.football.api-sports.io"

// ErrDecode marks a response the provider returned but we could not make
// sense of. Connection and status failures are reported as plain errors.
var ErrDecode = errors.New("malformed provider response")

// Client is a typed client for the API-Football v3 REST API.
// The API key is fixed at construction; the client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchTeams queries the team-search endpoint with a free-text term.
func (c *Client) SearchTeams(ctx context.Context, search string) ([]TeamEntry, error) {
	params := url.Values{"search": {search}}
	var out teamsResponse
	if err := c.getJSON(ctx, "/teams", params, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

// FixturesByTeam fetches a team's full fixture list for a season.
func (c *Client) FixturesByTeam(ctx context.Context, teamID, season int) ([]Fixture, error) {
	params := url.Values{
		"team":   {strconv.Itoa(teamID)},
		"season": {strconv.Itoa(season)},
	}
	var out fixturesResponse
	if err := c.getJSON(ctx, "/fixtures", params, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

// OddsByFixture fetches odds for one fixture scoped to one bookmaker.
func (c *Client) OddsByFixture(ctx context.Context, fixtureID, bookmakerID int) ([]OddsEntry, error) {
	params := url.Values{
		"fixture":   {strconv.Itoa(fixtureID)},
		"bookmaker": {strconv.Itoa(bookmakerID)},
	}
	var out oddsResponse
	if err := c.getJSON(ctx, "/odds", params, &out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-apisports-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	stats.GetTracker().RecordProviderCall(time.Since(start), err == nil)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrDecode, path, err)
	}
	return nil
}
