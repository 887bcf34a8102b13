package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://msearch.gsi.go.jp"

// Client resolves free-text addresses to coordinates through the GSI
// (国土地理院) address-search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Geocode resolves an address to a (longitude, latitude) pair. An address
// with zero matches is an error; the first match wins otherwise.
func (c *Client) Geocode(ctx context.Context, address string) (float64, float64, error) {
	endpoint := c.baseURL + "/address-search/AddressSearch?q=" + url.QueryEscape(address)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("address search API returned non-OK status: %s", resp.Status)
	}

	var results []addressSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}

	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no coordinates found for address %q", address)
	}
	coords := results[0].Geometry.Coordinates
	if len(coords) < 2 {
		return 0, 0, fmt.Errorf("malformed coordinates for address %q", address)
	}
	return coords[0], coords[1], nil
}
