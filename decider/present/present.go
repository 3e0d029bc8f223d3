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

package present

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/umahmood/haversine"

	"decide-restaurant/decider/geo"
	"decide-restaurant/decider/places"
)

type Presenter struct {
	Out io.Writer
}

// Pick prints the chosen restaurant.
func (p *Presenter) Pick(c places.Candidate) {
	fmt.Fprintf(p.Out, "\nYou should go to: %s\n", c.Name)
	fmt.Fprintf(p.Out, "Address: %s\n", c.Address)
	fmt.Fprintf(p.Out, "Rating: %s\n", c.Rating)
	fmt.Fprintf(p.Out, "Price Level: %s\n", c.Price)
}

// Listing prints the full candidate set, in whatever order it arrives, with
// each place's distance from the search origin.
func (p *Presenter) Listing(origin geo.Location, candidates []places.Candidate) {
	fmt.Fprintf(p.Out, "\nList of restaurants found:\n\n")
	w := tabwriter.NewWriter(p.Out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tAddress\tRating\tPrice Level\tDistance")
	for _, c := range candidates {
		miles, _ := haversine.Distance(
			haversine.Coord{Lat: origin.Lat, Lon: origin.Lng},
			haversine.Coord{Lat: c.Location.Lat, Lon: c.Location.Lng},
		)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f mi\n", c.Name, c.Address, c.Rating, c.Price, miles)
	}
	w.Flush()
}
