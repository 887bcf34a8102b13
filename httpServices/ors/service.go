package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openrouteservice.org"

// Client calls the OpenRouteService v2 directions API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Directions requests a route between two coordinate pairs (longitude,
// latitude) for the given routing profile and returns duration in seconds
// and distance in meters.
func (c *Client) Directions(ctx context.Context, profile string, origin, destination [2]float64) (float64, float64, error) {
	body, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{
			{origin[0], origin[1]},
			{destination[0], destination[1]},
		},
		Instructions: false,
	})
	if err != nil {
		return 0, 0, err
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", c.baseURL, profile)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return 0, 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, err
	}

	// Error bodies are not guaranteed to be JSON (gateways return HTML),
	// so the status is checked before any decode is attempted.
	if resp.StatusCode != http.StatusOK {
		var apiResp directionsResponse
		if err := json.Unmarshal(data, &apiResp); err == nil && apiResp.Error != nil && apiResp.Error.Message != "" {
			return 0, 0, fmt.Errorf("directions API error: %s", apiResp.Error.Message)
		}
		return 0, 0, fmt.Errorf("directions API returned non-OK status: %s", resp.Status)
	}

	var apiResp directionsResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return 0, 0, err
	}
	if len(apiResp.Routes) == 0 {
		return 0, 0, fmt.Errorf("no route found between the given coordinates")
	}

	summary := apiResp.Routes[0].Summary
	return summary.Duration, summary.Distance, nil
}
