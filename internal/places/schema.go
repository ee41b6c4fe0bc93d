package places

// Wire shapes for the Places API (New) searchText call. Every response
// field is optional; defaulting happens in one place (mapPlace), not
// scattered through the mapping.

type searchTextRequest struct {
	TextQuery    string       `json:"textQuery"`
	LocationBias locationBias `json:"locationBias"`
}

type locationBias struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchTextResponse struct {
	Places []place `json:"places"`
}

type place struct {
	ID                       string          `json:"id"`
	DisplayName              *localizedText  `json:"displayName,omitempty"`
	FormattedAddress         string          `json:"formattedAddress,omitempty"`
	Types                    []string        `json:"types,omitempty"`
	Rating                   float64         `json:"rating,omitempty"`
	UserRatingCount          int             `json:"userRatingCount,omitempty"`
	WebsiteURI               string          `json:"websiteUri,omitempty"`
	InternationalPhoneNumber string          `json:"internationalPhoneNumber,omitempty"`
	RegularOpeningHours      *openingHours   `json:"regularOpeningHours,omitempty"`
	Photos                   []photo         `json:"photos,omitempty"`
	EditorialSummary         *localizedText  `json:"editorialSummary,omitempty"`
	Reviews                  []placeReview   `json:"reviews,omitempty"`
	Location                 *latLng         `json:"location,omitempty"`
}

type localizedText struct {
	Text string `json:"text,omitempty"`
}

type openingHours struct {
	OpenNow             bool     `json:"openNow,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

type photo struct {
	Name string `json:"name,omitempty"`
}

type placeReview struct {
	Name                           string             `json:"name,omitempty"`
	Rating                         int                `json:"rating,omitempty"`
	Text                           *localizedText     `json:"text,omitempty"`
	OriginalText                   *localizedText     `json:"originalText,omitempty"`
	RelativePublishTimeDescription string             `json:"relativePublishTimeDescription,omitempty"`
	AuthorAttribution              *authorAttribution `json:"authorAttribution,omitempty"`
}

type authorAttribution struct {
	DisplayName string `json:"displayName,omitempty"`
}
