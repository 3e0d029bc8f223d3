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

// Package geo resolves free-text addresses to coordinates using the Google
// Geocoding API.
package geo

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

// Location is a resolved coordinate pair. Immutable once returned.
type Location struct {
	Lat float64
	Lng float64
}

// String renders the "lat,lng" form the Places API takes as a location
// parameter.
func (l Location) String() string {
	return fmt.Sprintf("%f,%f", l.Lat, l.Lng)
}

// ResolutionError wraps any failure to turn an address into coordinates:
// transport errors, zero geocoding results, or a result with no usable
// area component.
type ResolutionError struct {
	Address string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("error resolving address %q: %v", e.Address, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

type Resolver struct {
	client *maps.Client
}

// NewResolver builds a resolver around the official Maps client. Extra
// options (base URL, HTTP client) are passed through, mainly for tests and
// timeouts.
func NewResolver(apiKey string, opts ...maps.ClientOption) (*Resolver, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	c, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating maps client: %w", err)
	}
	return &Resolver{client: c}, nil
}

// Resolve geocodes the address once and returns its coordinates together
// with an area label (postal code, or locality when the result has no
// postal code).
func (r *Resolver) Resolve(ctx context.Context, address string) (Location, string, error) {
	results, err := r.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return Location{}, "", &ResolutionError{Address: address, Err: err}
	}
	if len(results) == 0 {
		return Location{}, "", &ResolutionError{Address: address, Err: errors.New("no geocoding results")}
	}
	best := results[0]
	loc := Location{
		Lat: best.Geometry.Location.Lat,
		Lng: best.Geometry.Location.Lng,
	}
	area, err := areaComponent(best.AddressComponents)
	if err != nil {
		return Location{}, "", &ResolutionError{Address: address, Err: err}
	}
	return loc, area, nil
}

// areaComponent looks components up by type rather than position: the
// component list varies in length between addresses, so indexing into it is
// never safe.
func areaComponent(components []maps.AddressComponent) (string, error) {
	for _, want := range []string{"postal_code", "locality"} {
		for _, c := range components {
			for _, t := range c.Types {
				if t == want {
					return c.LongName, nil
				}
			}
		}
	}
	return "", errors.New("geocoding result has no postal_code or locality component")
}
