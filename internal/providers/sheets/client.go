// Package sheets fetches live match rows from the Google Sheets
// visualization endpoint. Each row's first cell holds one JSON-encoded
// match object, appended by hand during match evenings.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tt-league-service/internal/domain"
	"tt-league-service/internal/providers"
)

const defaultTimeout = 15 * time.Second

// Config controls how the sheets client reaches the upstream spreadsheet.
type Config struct {
	BaseURL       string
	SpreadsheetID string
	SheetName     string
	Query         string
	HTTPClient    *http.Client
	Logger        *slog.Logger
}

// Client fetches match rows from a published spreadsheet.
type Client struct {
	baseURL       string
	spreadsheetID string
	sheetName     string
	query         string
	httpClient    *http.Client
	logger        *slog.Logger
}

// NewClient constructs a sheets client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		query:         cfg.Query,
		httpClient:    httpClient,
		logger:        cfg.Logger,
	}
}

// FetchMatches retrieves and decodes the live match rows in sheet order.
// Cells that do not parse as a match are skipped; they are usually
// half-typed rows, not a broken feed.
func (c *Client) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	if c.spreadsheetID == "" {
		return nil, providers.ErrProviderUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   "sheets",
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sheets: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	payload, err := parseGvizResponse(string(body))
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Match, 0, len(payload.Table.Rows))
	skipped := 0
	for _, row := range payload.Table.Rows {
		text := cellText(row)
		if text == "" {
			continue
		}
		var raw domain.RawMatch
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			skipped++
			continue
		}
		matches = append(matches, raw.Normalize())
	}
	if skipped > 0 && c.logger != nil {
		c.logger.Warn("sheets rows skipped", slog.Int("count", skipped))
	}

	return matches, nil
}

func (c *Client) queryURL() string {
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?sheet=%s&tq=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.QueryEscape(c.sheetName),
		url.QueryEscape(c.query),
	)
}

func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
