package itmo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/isu2cal/isu2cal/internal/i18n"
)

const (
	scheduleURL = "https://api.schedule.itmo.su/api/v3/schedule/personal"
	userAgent   = "isu2cal/1.0"
)

// Client fetches the personal schedule with a bearer token attached. The
// transformation pipeline treats it as a black box returning a JSON
// document or failing.
type Client struct {
	httpClient *http.Client
	tokens     oauth2.TokenSource
	baseURL    string
}

// NewClient builds a schedule API client on top of a token source.
func NewClient(tokens oauth2.TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		tokens:     tokens,
		baseURL:    scheduleURL,
	}
}

// PersonalSchedule performs the authenticated GET for the given date range
// and returns the raw JSON body.
func (c *Client) PersonalSchedule(ctx context.Context, start, end time.Time, lang i18n.Language) ([]byte, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("date_start", start.Format(time.DateOnly))
	params.Add("date_end", end.Format(time.DateOnly))

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	slog.InfoContext(ctx, "Fetching personal schedule",
		"date_start", start.Format(time.DateOnly),
		"date_end", end.Format(time.DateOnly),
		"lang", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	tok.SetAuthHeader(req)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", string(lang))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("schedule API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
