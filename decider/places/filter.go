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

package places

import (
	"slices"
	"strconv"
)

// Constraints are the optional user filters. Nil means "don't care".
type Constraints struct {
	PriceLevel *int     // exact tier, 1-4
	MinRating  *float64 // inclusive lower bound, 1-5
}

// excludedTypes disqualify a place no matter what else it matches. Nearby
// search tags mall food courts, fuel stations and hotels as restaurants too.
var excludedTypes = []string{"shopping_mall", "gas_station", "lodging"}

// Screen decides whether a raw place becomes a Candidate. A place with an
// excluded category never passes; when a price or rating constraint is set,
// places the provider has no price or rating for are rejected rather than
// waved through.
func Screen(place RawPlace, c Constraints) (Candidate, bool) {
	for _, t := range place.Types {
		if slices.Contains(excludedTypes, t) {
			return Candidate{}, false
		}
	}
	if c.PriceLevel != nil && (place.PriceLevel == nil || *place.PriceLevel != *c.PriceLevel) {
		return Candidate{}, false
	}
	if c.MinRating != nil && (place.Rating == nil || *place.Rating < *c.MinRating) {
		return Candidate{}, false
	}

	cand := Candidate{
		Name:     place.Name,
		Address:  place.Vicinity,
		Rating:   NotAvailable,
		Price:    NotAvailable,
		Location: place.Geometry.Location,
	}
	if place.Rating != nil {
		cand.Rating = strconv.FormatFloat(*place.Rating, 'f', -1, 64) + "/5"
	}
	if place.PriceLevel != nil {
		cand.Price = strconv.Itoa(*place.PriceLevel) + "/4"
	}
	return cand, true
}
