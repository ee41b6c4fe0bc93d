package places

import (
	"fmt"

	"github.com/locato-app/locato-api/internal/domain/media"
	"github.com/locato-app/locato-api/internal/geo"
	"github.com/locato-app/locato-api/internal/types"
)

// NoDescription marks a restaurant whose response carried no editorial
// summary; the orchestrator may enrich such records.
const NoDescription = "Nema dostupnog opisa."

// Placeholder values used when the response omits a field.
const (
	unknownName       = "Nepoznato"
	checkHoursOnMap   = "Provjerite na mapi"
	anonymousReviewer = "Google User"
	defaultCuisine    = "Restoran"
)

// cuisineRules map place category tags to the short label shown on a
// card. Only the first matching rule applies; later matches are ignored.
var cuisineRules = []struct {
	tag   string
	label string
}{
	{"cafe", "Kafić"},
	{"bar", "Bar"},
	{"pizza_restaurant", "Pizzeria"},
	{"hamburger_restaurant", "Burger"},
	{"italian_restaurant", "Italijanska"},
	{"steak_house", "Steakhouse"},
	{"mexican_restaurant", "Meksička"},
	{"asian_restaurant", "Azijska"},
	{"bakery", "Pekara"},
}

// ClassifyCuisine picks one cuisine label from an unordered set of place
// category tags, by first match over the ordered rule list.
func ClassifyCuisine(tags []string) string {
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}
	for _, rule := range cuisineRules {
		if tagSet[rule.tag] {
			return rule.label
		}
	}
	return defaultCuisine
}

// mapPlace normalizes one place into a Restaurant, applying every
// defaulting rule in a single step.
func (c *Client) mapPlace(p place, userLocation *types.Coordinates) types.Restaurant {
	name := unknownName
	if p.DisplayName != nil && p.DisplayName.Text != "" {
		name = p.DisplayName.Text
	}

	cuisine := ClassifyCuisine(p.Types)

	imageURL := ""
	if len(p.Photos) > 0 && p.Photos[0].Name != "" {
		imageURL = fmt.Sprintf("https://places.googleapis.com/v1/%s/media?maxHeightPx=800&maxWidthPx=1000&key=%s",
			p.Photos[0].Name, c.apiKey)
	} else {
		// No photo asset supplied; the heuristic works off the display
		// name alone, matching what the card would otherwise show.
		imageURL = media.ResolveImage(name, "")
	}

	distance := geo.NoDistance
	if userLocation != nil && p.Location != nil {
		km := geo.DistanceKm(*userLocation, types.Coordinates{
			Latitude:  p.Location.Latitude,
			Longitude: p.Location.Longitude,
		})
		distance = geo.DistanceLabel(km)
	}

	description := NoDescription
	if p.EditorialSummary != nil && p.EditorialSummary.Text != "" {
		description = p.EditorialSummary.Text
	} else if p.DisplayName != nil && p.DisplayName.Text != "" {
		description = p.DisplayName.Text
	}

	openingHours := checkHoursOnMap
	isOpen := false
	if p.RegularOpeningHours != nil {
		isOpen = p.RegularOpeningHours.OpenNow
		if len(p.RegularOpeningHours.WeekdayDescriptions) > 0 {
			openingHours = p.RegularOpeningHours.WeekdayDescriptions[0]
		}
	}

	reviews := make([]types.Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, mapReview(r))
	}

	return types.Restaurant{
		ID:            p.ID,
		Name:          name,
		Rating:        p.Rating,
		ReviewCount:   p.UserRatingCount,
		Cuisine:       cuisine,
		Distance:      distance,
		ImageURL:      imageURL,
		IsOpen:        isOpen,
		Address:       p.FormattedAddress,
		Description:   description,
		Reviews:       reviews,
		MapsURI:       fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", p.ID),
		OpeningHours:  openingHours,
		ContactNumber: p.InternationalPhoneNumber,
		WebsiteURL:    p.WebsiteURI,
	}
}

func mapReview(r placeReview) types.Review {
	user := anonymousReviewer
	if r.AuthorAttribution != nil && r.AuthorAttribution.DisplayName != "" {
		user = r.AuthorAttribution.DisplayName
	}

	comment := ""
	if r.Text != nil && r.Text.Text != "" {
		comment = r.Text.Text
	} else if r.OriginalText != nil {
		comment = r.OriginalText.Text
	}

	return types.Review{
		ID:      r.Name, // review resource name, unique per place
		User:    user,
		Rating:  r.Rating,
		Comment: comment,
		Date:    r.RelativePublishTimeDescription,
	}
}
