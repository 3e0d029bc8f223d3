package places

// searchResponse is one page of the Nearby Search endpoint.
type searchResponse struct {
	Results       []RawPlace `json:"results"`
	NextPageToken string     `json:"next_page_token"`
	Status        string     `json:"status"`
	ErrorMessage  string     `json:"error_message,omitempty"`
}

// RawPlace is the provider's view of a place. Rating and PriceLevel are
// pointers because the provider omits them for places it has no data for,
// and "absent" must stay distinguishable from 0.
type RawPlace struct {
	Name       string   `json:"name"`
	Vicinity   string   `json:"vicinity"`
	Types      []string `json:"types"`
	PriceLevel *int     `json:"price_level,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Geometry   Geometry `json:"geometry"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NotAvailable marks a rating or price tier the provider did not report.
const NotAvailable = "N/A"

// Candidate is a place that survived filtering, reduced to what the
// presenter needs.
type Candidate struct {
	Name     string
	Address  string
	Rating   string // "4.2/5", or NotAvailable
	Price    string // "2/4", or NotAvailable
	Location LatLng
}
