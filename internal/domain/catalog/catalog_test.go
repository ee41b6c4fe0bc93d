package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locato-app/locato-api/internal/types"
)

func TestFilter_ShowAllTokens(t *testing.T) {
	c := New(SampleRestaurants())
	all := c.All()

	for _, query := range []string{"", "sve", "restaurants", "  SVE  "} {
		t.Run("query="+query, func(t *testing.T) {
			got := c.Filter(query)

			require.Len(t, got, len(all))
			for i := range all {
				assert.Equal(t, all[i].ID, got[i].ID)
			}
		})
	}
}

func TestFilter_MatchesNameDescriptionOrCuisine(t *testing.T) {
	c := New(SampleRestaurants())

	got := c.Filter("Pizza")

	require.NotEmpty(t, got)
	for _, r := range got {
		matched := strings.Contains(strings.ToLower(r.Name), "pizza") ||
			strings.Contains(strings.ToLower(r.Description), "pizza") ||
			strings.Contains(strings.ToLower(r.Cuisine), "pizza")
		assert.True(t, matched, "record %s should not have matched", r.Name)
	}
}

func TestFilter_CuisineMatchesPerWord(t *testing.T) {
	c := New(SampleRestaurants())

	got := c.Filter("najbolja bosanska")

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	// "bosanska" matches the cuisine of Željo and Dveri; the full query
	// matches no name or description.
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestFilter_ShortCuisineWordsIgnored(t *testing.T) {
	c := New([]types.Restaurant{
		{ID: "x", Name: "Mlin", Cuisine: "Fast food", Description: "Pekara"},
	})

	// Both words are too short to match against the cuisine label.
	assert.Empty(t, c.Filter("fa fo"))
}

func TestFilter_PreservesCatalogOrder(t *testing.T) {
	c := New(SampleRestaurants())

	got := c.Filter("italijanska")

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"6", "12", "13"}, ids)
}

func TestNew_CopiesInput(t *testing.T) {
	records := SampleRestaurants()
	c := New(records)

	records[0].Name = "mutated"

	assert.Equal(t, "Ćevabdžinica Željo", c.All()[0].Name)
}

func TestSampleRestaurants_ImagesResolved(t *testing.T) {
	for _, r := range SampleRestaurants() {
		assert.NotEmpty(t, r.ImageURL, "restaurant %s has no image", r.Name)
	}
}
