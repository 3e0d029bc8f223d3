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

// Package pick holds the randomized selection step.
package pick

import (
	"errors"
	"math/rand"

	"decide-restaurant/decider/places"
)

// ErrEmptySet is returned when a pick is attempted on an empty candidate
// set. Callers are expected to have handled the no-results case already.
var ErrEmptySet = errors.New("cannot pick from an empty set")

// Shuffle permutes the candidates in place, for the listing output.
func Shuffle(rng *rand.Rand, candidates []places.Candidate) {
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
}

// One returns a uniformly random candidate. The draw is independent of any
// prior Shuffle: the pick is not simply the first element of the shuffled
// order.
func One(rng *rand.Rand, candidates []places.Candidate) (places.Candidate, error) {
	if len(candidates) == 0 {
		return places.Candidate{}, ErrEmptySet
	}
	return candidates[rng.Intn(len(candidates))], nil
}
