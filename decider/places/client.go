// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package places walks the paginated Nearby Search endpoint and filters the
// results down to restaurant candidates.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/phuslu/log"

	"decide-restaurant/decider/config"
	"decide-restaurant/decider/geo"
	"decide-restaurant/decider/util"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// pageTokenDelay is how long the provider needs before a freshly issued
// next-page token becomes valid.
const pageTokenDelay = 2 * time.Second

// ErrNoRestaurants reports a search that completed normally but left no
// candidates after filtering. It is an informational outcome, not a failure.
var ErrNoRestaurants = errors.New("no restaurants found")

// SearchError wraps any transport, HTTP, decode or provider-status failure
// during the paginated search. Results accumulated before the failure are
// discarded, since the set is not known to be complete.
type SearchError struct {
	Op  string
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// Query describes one search run. The radius is always the caller's value;
// the restaurant category and the open-now constraint are fixed.
type Query struct {
	Location     geo.Location
	RadiusMeters float64
	Constraints  Constraints
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Sleep      func(time.Duration) // inter-page delay
	Logger     log.Logger
}

func NewClient(cfg *config.Config, logger log.Logger) *Client {
	return &Client{
		APIKey:     cfg.GoogleMapsKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Sleep:      time.Sleep,
		Logger:     logger,
	}
}

// Search fetches every page of open restaurants within the radius, screening
// each place as it arrives. It either returns the complete candidate set,
// ErrNoRestaurants when nothing survived, or a SearchError.
func (c *Client) Search(ctx context.Context, q Query) ([]Candidate, error) {
	c.Logger.Info().Float64("miles", util.MetersToMiles(q.RadiusMeters)).Msg("search radius")

	var candidates []Candidate
	pageToken := ""
	for page := 1; ; page++ {
		resp, err := c.fetchPage(ctx, q, pageToken)
		if err != nil {
			return nil, err
		}
		for _, place := range resp.Results {
			if cand, ok := Screen(place, q.Constraints); ok {
				candidates = append(candidates, cand)
			}
		}
		c.Logger.Debug().Int("page", page).Int("places", len(resp.Results)).Msg("fetched result page")

		if resp.NextPageToken == "" {
			break
		}
		// The token is only attached to the next request, after the delay.
		c.Sleep(pageTokenDelay)
		pageToken = resp.NextPageToken
	}

	if len(candidates) == 0 {
		return nil, ErrNoRestaurants
	}
	c.Logger.Info().Int("count", len(candidates)).Msg("restaurants found")
	return candidates, nil
}

func (c *Client) fetchPage(ctx context.Context, q Query, token string) (*searchResponse, error) {
	params := url.Values{}
	params.Set("location", q.Location.String())
	params.Set("radius", strconv.FormatFloat(q.RadiusMeters, 'f', -1, 64))
	params.Set("type", "restaurant")
	params.Set("opennow", "true")
	params.Set("key", c.APIKey)
	if token != "" {
		params.Set("pagetoken", token)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &SearchError{Op: "building search request", Err: err}
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &SearchError{Op: "querying nearby search", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &SearchError{Op: "querying nearby search", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var page searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, &SearchError{Op: "decoding search response", Err: err}
	}
	if page.Status != "OK" && page.Status != "ZERO_RESULTS" {
		return nil, &SearchError{Op: "querying nearby search", Err: fmt.Errorf("provider status %s: %s", page.Status, page.ErrorMessage)}
	}
	return &page, nil
}
