package present

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"decide-restaurant/decider/geo"
	"decide-restaurant/decider/places"
)

func TestPick(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}
	p.Pick(places.Candidate{
		Name:    "Giovanni's",
		Address: "1 Test Street",
		Rating:  "4.5/5",
		Price:   places.NotAvailable,
	})
	out := buf.String()
	assert.Contains(t, out, "You should go to: Giovanni's")
	assert.Contains(t, out, "Address: 1 Test Street")
	assert.Contains(t, out, "Rating: 4.5/5")
	assert.Contains(t, out, "Price Level: N/A")
}

func TestListing(t *testing.T) {
	var buf bytes.Buffer
	p := &Presenter{Out: &buf}
	origin := geo.Location{Lat: 39.799372, Lng: -89.643516}
	p.Listing(origin, []places.Candidate{
		{
			Name: "Giovanni's", Address: "1 Test Street", Rating: "4.5/5", Price: "3/4",
			Location: places.LatLng{Lat: 39.799372, Lng: -89.643516},
		},
		{
			Name: "Mystery Spot", Address: "2 Test Street", Rating: places.NotAvailable, Price: places.NotAvailable,
			Location: places.LatLng{Lat: 39.82, Lng: -89.65},
		},
	})
	out := buf.String()
	assert.Contains(t, out, "List of restaurants found:")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Distance")
	assert.Contains(t, out, "Giovanni's")
	assert.Contains(t, out, "Mystery Spot")
	// The restaurant at the origin is zero miles away.
	assert.Contains(t, out, "0.0 mi")
}
