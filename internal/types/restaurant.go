package types

// Restaurant is the unit of every search result and favorite. Records are
// rebuilt on each search; only the ID is stable and joins a restaurant to
// its persisted favorite/review state.
type Restaurant struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Cuisine       string   `json:"cuisine"`
	Distance      string   `json:"distance"` // display string, e.g. "1.2 km", or "N/A"
	ImageURL      string   `json:"image_url"`
	IsOpen        bool     `json:"is_open"`
	Address       string   `json:"address,omitempty"`
	Description   string   `json:"description"`
	Reviews       []Review `json:"reviews,omitempty"`
	MapsURI       string   `json:"maps_uri,omitempty"`
	OpeningHours  string   `json:"opening_hours,omitempty"`
	ContactNumber string   `json:"contact_number,omitempty"`
	WebsiteURL    string   `json:"website_url,omitempty"`
}

// Clone returns a deep copy. Favorites are stored as copies so later
// remote refreshes never mutate what the user saved.
func (r Restaurant) Clone() Restaurant {
	out := r
	if r.Reviews != nil {
		out.Reviews = make([]Review, len(r.Reviews))
		copy(out.Reviews, r.Reviews)
	}
	return out
}

// Review is a single rating with optional text. Date is a display string
// ("Danas", "prije 2 sedmice"), not a parseable timestamp.
type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Coordinates is a WGS-84 position in signed degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FilterState is accepted as future query-shaping input. Current search
// behavior does not consume it; the shape is kept for forward
// compatibility with the filter UI.
type FilterState struct {
	Cuisines   []string `json:"cuisines"`
	PriceRange int      `json:"price_range"` // 1-3
}
