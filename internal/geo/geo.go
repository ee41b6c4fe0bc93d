// Package geo holds the great-circle math shared by the places adapter
// and anything else that needs a user-facing distance.
package geo

import (
	"fmt"
	"math"

	"github.com/locato-app/locato-api/internal/types"
)

// earthRadiusKm is the spherical Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// DistanceKm calculates the distance between two coordinates using the
// Haversine formula. Returns distance in kilometers. NaN input propagates
// as NaN; callers only invoke this when both coordinates are present.
func DistanceKm(from, to types.Coordinates) float64 {
	lat1Rad := from.Latitude * math.Pi / 180
	lon1Rad := from.Longitude * math.Pi / 180
	lat2Rad := to.Latitude * math.Pi / 180
	lon2Rad := to.Longitude * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// NoDistance is the display value used when either coordinate is missing.
const NoDistance = "N/A"

// DistanceLabel formats a distance for display, e.g. "1.2 km".
func DistanceLabel(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}
