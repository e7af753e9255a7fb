package govuk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
)

// DefaultFeedURL is the public GOV.UK bank-holiday dataset covering
// all three UK divisions.
const DefaultFeedURL = "https://www.gov.uk/bank-holidays.json"

// Client pulls the GOV.UK bank-holiday feed.
type Client struct {
	httpClient *http.Client
	feedURL    string
}

func NewClient(feedURL string) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		feedURL:    feedURL,
	}
}

// feed shape: {"england-and-wales": {"division": "...", "events": [...]}, ...}
type feedDivision struct {
	Division string      `json:"division"`
	Events   []feedEvent `json:"events"`
}

type feedEvent struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Notes   string `json:"notes"`
	Bunting bool   `json:"bunting"`
}

// FetchBankHolidays downloads and parses the feed into holiday rows
// grouped by region. Divisions that are not valid regions are skipped.
func (c *Client) FetchBankHolidays(ctx context.Context) (map[holiday.Region][]holiday.BankHoliday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", holiday.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", holiday.ErrFeedUnavailable, resp.StatusCode)
	}

	var divisions map[string]feedDivision
	if err := json.NewDecoder(resp.Body).Decode(&divisions); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	result := make(map[holiday.Region][]holiday.BankHoliday, len(divisions))
	for key, division := range divisions {
		region := holiday.Region(key)
		if !region.Valid() {
			continue
		}
		for _, ev := range division.Events {
			date, err := time.Parse("2006-01-02", ev.Date)
			if err != nil {
				return nil, fmt.Errorf("parse feed date %q: %w", ev.Date, err)
			}
			result[region] = append(result[region], holiday.BankHoliday{
				Date:   date,
				Region: region,
				Title:  ev.Title,
				Source: "gov.uk",
			})
		}
	}

	return result, nil
}
