// Package feed fetches and decodes the remote NASA syndication feeds.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/cjbdev/iss-sightings/internal/domain"
	"github.com/cjbdev/iss-sightings/internal/observability"
)

// Feed labels used in metrics.
const (
	feedSightings = "sightings"
	feedCrew      = "crew"
)

// Client implements domain.FeedFetcher against the NASA spot-the-station
// sighting feeds and the crew feed.
type Client struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	baseURL    string // sighting feed base; "/<feedID>.xml" is appended
	crewURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client with a bounded request timeout.
func NewClient(baseURL, crewURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		parser:     gofeed.NewParser(),
		baseURL:    strings.TrimRight(baseURL, "/"),
		crewURL:    crewURL,
		metrics:    metrics,
		logger:     logger,
	}
}

// Sightings fetches and parses the sighting feed for one location feed ID.
func (c *Client) Sightings(ctx context.Context, feedID string) ([]domain.FeedEntry, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/%s.xml", c.baseURL, feedID), feedSightings)
}

// Crew fetches and parses the current-crew feed.
func (c *Client) Crew(ctx context.Context) ([]domain.FeedEntry, error) {
	return c.fetch(ctx, c.crewURL, feedCrew)
}

func (c *Client) fetch(ctx context.Context, fullURL, feedLabel string) ([]domain.FeedEntry, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.FeedFetchErrors.WithLabelValues(feedLabel).Inc()
		return nil, fmt.Errorf("%s feed request: %w", feedLabel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.FeedFetchErrors.WithLabelValues(feedLabel).Inc()
		return nil, fmt.Errorf("%s feed: status %d", feedLabel, resp.StatusCode)
	}

	parsed, err := c.parser.Parse(resp.Body)
	if err != nil {
		c.metrics.FeedFetchErrors.WithLabelValues(feedLabel).Inc()
		return nil, fmt.Errorf("parse %s feed: %w", feedLabel, err)
	}

	c.metrics.FeedFetchDuration.WithLabelValues(feedLabel).Observe(time.Since(start).Seconds())

	entries := make([]domain.FeedEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, domain.FeedEntry{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
		})
	}
	return entries, nil
}
