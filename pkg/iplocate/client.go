// Package iplocate looks up the machine's approximate location from its
// public IP using the ip-api.com JSON endpoint.
package iplocate

import (
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rotisserie/eris"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultEndpoint is the free ip-api.com JSON endpoint.
const DefaultEndpoint = "http://ip-api.com/json"

// Location is the subset of the ip-api.com response gsq cares about.
type Location struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
	Query      string  `json:"query"`
}

// Client calls the geolocation endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient builds a client for the given endpoint; empty means the default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
}

// Locate fetches the current public-IP location.
func (c *Client) Locate(ctx context.Context) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, eris.Wrap(err, "iplocate: build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "iplocate: request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("iplocate: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "iplocate: read response")
	}

	var loc Location
	if err := json.Unmarshal(body, &loc); err != nil {
		return nil, eris.Wrap(err, "iplocate: decode response")
	}
	if loc.Status != "success" {
		return nil, eris.Errorf("iplocate: lookup failed: %s", loc.Message)
	}

	return &loc, nil
}
