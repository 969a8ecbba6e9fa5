// Package gcal provides a stateless, read-only client for the Google
// Calendar v3 REST API using a caller-supplied bearer token.
package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"harucal/pkg/day"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Client fetches events from the primary calendar of the token's account.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New builds a Client whose transport attaches the bearer token.
func New(ctx context.Context, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: oauth2.NewClient(ctx, src),
	}
}

// listResponse mirrors the slice of the events.list payload we consume.
type listResponse struct {
	Items []struct {
		ID          string `json:"id"`
		Summary     string `json:"summary"`
		Description string `json:"description"`
		Start       struct {
			Date     string `json:"date"`
			DateTime string `json:"dateTime"`
		} `json:"start"`
	} `json:"items"`
}

// Events lists the primary calendar's events in [start, end), normalized to
// day events. Any transport, status, or decode failure is logged and yields
// an empty slice, never an error.
func (c *Client) Events(ctx context.Context, start, end time.Time) []day.Event {
	params := url.Values{}
	params.Set("timeMin", start.UTC().Format(time.RFC3339))
	params.Set("timeMax", end.UTC().Format(time.RFC3339))
	params.Set("singleEvents", "true")
	params.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/primary/events?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gcal: build request: %v\n", err)
		return []day.Event{}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gcal: fetch events: %v\n", err)
		return []day.Event{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "gcal: fetch events: unexpected status %s\n", resp.Status)
		return []day.Event{}
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fmt.Fprintf(os.Stderr, "gcal: decode events: %v\n", err)
		return []day.Event{}
	}

	events := make([]day.Event, 0, len(payload.Items))
	for _, item := range payload.Items {
		e := day.Event{
			ID:          item.ID,
			Title:       item.Summary,
			Description: item.Description,
		}
		if e.Title == "" {
			e.Title = "(제목 없음)"
		}
		// A date-only start means all-day; a dateTime start is timed.
		switch {
		case item.Start.Date != "":
			e.Date = item.Start.Date
			e.AllDay = true
		case item.Start.DateTime != "":
			e.Date, e.Time = splitDateTime(item.Start.DateTime)
		default:
			continue
		}
		events = append(events, e)
	}
	return events
}

// splitDateTime slices an RFC3339 timestamp into its date key and HH:MM.
func splitDateTime(s string) (date, hhmm string) {
	if i := strings.IndexByte(s, 'T'); i > 0 && len(s) >= i+6 {
		return s[:i], s[i+1 : i+6]
	}
	return s, ""
}
