package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func restaurant(name string) RawPlace {
	return RawPlace{
		Name:     name,
		Vicinity: "1 Test Street",
		Types:    []string{"restaurant", "food", "point_of_interest"},
	}
}

func TestScreenRejectsExcludedCategories(t *testing.T) {
	for _, excluded := range []string{"shopping_mall", "gas_station", "lodging"} {
		place := restaurant("Roadside Diner")
		place.Types = append(place.Types, excluded)
		_, ok := Screen(place, Constraints{})
		assert.False(t, ok, "category %s must be rejected", excluded)
	}
}

func TestScreenExclusionBeatsOtherFilters(t *testing.T) {
	// A great, cheap hotel restaurant still never qualifies.
	place := restaurant("Hotel Bistro")
	place.Types = []string{"restaurant", "lodging"}
	place.PriceLevel = intPtr(2)
	place.Rating = floatPtr(4.8)
	_, ok := Screen(place, Constraints{PriceLevel: intPtr(2), MinRating: floatPtr(4.0)})
	assert.False(t, ok)
}

func TestScreenPriceLevelExactMatch(t *testing.T) {
	constraints := Constraints{PriceLevel: intPtr(2)}

	match := restaurant("Mid Range")
	match.PriceLevel = intPtr(2)
	cand, ok := Screen(match, constraints)
	assert.True(t, ok)
	assert.Equal(t, "2/4", cand.Price)

	for _, tier := range []int{1, 3, 4} {
		place := restaurant("Wrong Tier")
		place.PriceLevel = intPtr(tier)
		_, ok := Screen(place, constraints)
		assert.False(t, ok, "tier %d", tier)
	}

	// Unknown tier rejects rather than passing through.
	_, ok = Screen(restaurant("No Price Data"), constraints)
	assert.False(t, ok)
}

func TestScreenMinRating(t *testing.T) {
	constraints := Constraints{MinRating: floatPtr(4.0)}

	good := restaurant("Well Rated")
	good.Rating = floatPtr(4.0)
	_, ok := Screen(good, constraints)
	assert.True(t, ok)

	bad := restaurant("Nearly There")
	bad.Rating = floatPtr(3.9)
	_, ok = Screen(bad, constraints)
	assert.False(t, ok)

	_, ok = Screen(restaurant("Unrated"), constraints)
	assert.False(t, ok)
}

func TestScreenMapsUnknownsToNotAvailable(t *testing.T) {
	cand, ok := Screen(restaurant("Mystery Spot"), Constraints{})
	assert.True(t, ok)
	assert.Equal(t, NotAvailable, cand.Rating)
	assert.Equal(t, NotAvailable, cand.Price)
}

func TestScreenCandidateFields(t *testing.T) {
	place := restaurant("Giovanni's")
	place.Rating = floatPtr(4.5)
	place.PriceLevel = intPtr(3)
	place.Geometry.Location = LatLng{Lat: 39.8, Lng: -89.6}
	cand, ok := Screen(place, Constraints{})
	assert.True(t, ok)
	assert.Equal(t, "Giovanni's", cand.Name)
	assert.Equal(t, "1 Test Street", cand.Address)
	assert.Equal(t, "4.5/5", cand.Rating)
	assert.Equal(t, "3/4", cand.Price)
	assert.Equal(t, LatLng{Lat: 39.8, Lng: -89.6}, cand.Location)
}
