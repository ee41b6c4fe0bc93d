// Package catalog is the bundled offline dataset used whenever the place
// search service cannot be consulted. The dataset is injected at
// construction and never mutated.
package catalog

import (
	"strings"

	"github.com/locato-app/locato-api/internal/types"
)

// Catalog holds a fixed, read-only sequence of restaurant records.
type Catalog struct {
	records []types.Restaurant
}

// New builds a catalog over its own copy of records.
func New(records []types.Restaurant) *Catalog {
	own := make([]types.Restaurant, len(records))
	for i, r := range records {
		own[i] = r.Clone()
	}
	return &Catalog{records: own}
}

// All returns every record in catalog order.
func (c *Catalog) All() []types.Restaurant {
	out := make([]types.Restaurant, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// showAllTokens are queries that mean "everything", matching how the
// home screen asks for an unfiltered first paint.
var showAllTokens = map[string]bool{
	"":            true,
	"sve":         true,
	"restaurants": true,
}

// Filter keyword-matches query against the catalog. A record matches when
// the lowercased query appears in its name or description, or when any
// query word longer than two characters appears in its cuisine label.
// No scoring; matches keep catalog order.
func (c *Catalog) Filter(query string) []types.Restaurant {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	if showAllTokens[lowerQuery] {
		return c.All()
	}

	queryWords := strings.Fields(lowerQuery)

	var out []types.Restaurant
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(r.Description), lowerQuery) ||
			cuisineMatches(r.Cuisine, queryWords) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func cuisineMatches(cuisine string, queryWords []string) bool {
	lowerCuisine := strings.ToLower(cuisine)
	for _, word := range queryWords {
		if len(word) > 2 && strings.Contains(lowerCuisine, word) {
			return true
		}
	}
	return false
}
