// Package fetch retrieves the pre-generated JSON datasets the site renders.
// Each dataset is fetched independently: the primary datasets surface their
// errors so pages can show a fallback message, the featured dataset fails
// silently, and the topology payload merely degrades the regional maps.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/ebochsler/personal-site/internal/config"
	"github.com/ebochsler/personal-site/internal/model"
)

// Client fetches datasets with a shared token-bucket limiter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	sources config.SourcesConfig
}

// New returns a client for the configured sources.
func New(sources config.SourcesConfig) *Client {
	rps := sources.RateLimit
	if rps <= 0 {
		rps = 4.0
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		sources: sources,
	}
}

// Running fetches the running dataset and assigns stable record IDs.
func (c *Client) Running(ctx context.Context) (*model.RunningData, error) {
	var data model.RunningData
	if err := c.getJSON(ctx, c.sources.Running, &data); err != nil {
		return nil, fmt.Errorf("running dataset: %w", err)
	}
	model.AssignRunningIDs(&data)
	return &data, nil
}

// Venues fetches the brewery tracker dataset and assigns stable record IDs.
func (c *Client) Venues(ctx context.Context) (*model.VenueData, error) {
	var data model.VenueData
	if err := c.getJSON(ctx, c.sources.Venues, &data); err != nil {
		return nil, fmt.Errorf("venue dataset: %w", err)
	}
	model.AssignVenueIDs(&data)
	return &data, nil
}

// Featured fetches the featured-routes dataset. Callers swallow the error:
// a missing featured dataset is never user visible.
func (c *Client) Featured(ctx context.Context) ([]model.FeaturedRoute, error) {
	var routes []model.FeaturedRoute
	if err := c.getJSON(ctx, c.sources.Featured, &routes); err != nil {
		return nil, fmt.Errorf("featured dataset: %w", err)
	}
	model.AssignFeaturedIDs(routes)
	return routes, nil
}

// Topology fetches the raw world landmass payload.
func (c *Client) Topology(ctx context.Context) ([]byte, error) {
	body, err := c.get(ctx, c.sources.Topology)
	if err != nil {
		return nil, fmt.Errorf("topology payload: %w", err)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
