// Package ipinfo looks the caller's rough location up by IP address. The
// main pipeline always resolves an explicit address instead; this is a
// standalone helper.
package ipinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"decide-restaurant/decider/geo"
)

const defaultBaseURL = "https://ipinfo.io/json"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{BaseURL: defaultBaseURL, HTTPClient: httpClient}
}

// Current returns the coordinates ipinfo.io reports for the caller's IP.
func (c *Client) Current(ctx context.Context) (geo.Location, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL, nil)
	if err != nil {
		return geo.Location{}, fmt.Errorf("error creating request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return geo.Location{}, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Loc string `json:"loc"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return geo.Location{}, fmt.Errorf("error decoding response: %w", err)
	}
	return parseLoc(body.Loc)
}

func parseLoc(loc string) (geo.Location, error) {
	latStr, lngStr, ok := strings.Cut(loc, ",")
	if !ok {
		return geo.Location{}, fmt.Errorf("malformed loc field %q", loc)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("malformed latitude in %q: %w", loc, err)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("malformed longitude in %q: %w", loc, err)
	}
	return geo.Location{Lat: lat, Lng: lng}, nil
}
