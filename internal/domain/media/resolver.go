// Package media picks an illustrative image for a restaurant when the
// place search response carries no photo asset. The lookup is a
// deterministic, table-driven heuristic: known landmark establishments
// first, cuisine/keyword categories second, a fixed default last.
// Substring collisions on short keys are an accepted limitation.
package media

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"
)

type imageRule struct {
	key string
	url string
}

// Specific high-res images for known popular places, scanned in table
// order against the normalized restaurant name.
var specificImages = []imageRule{
	{"zeljo", "https://images.unsplash.com/photo-1599021408783-6c61f2f0c765?auto=format&fit=crop&w=1600&q=95"},
	{"ferhatovic", "https://images.unsplash.com/photo-1630402773489-3286dc9b9e54?auto=format&fit=crop&w=1600&q=95"},
	{"petica", "https://images.unsplash.com/photo-1630402773489-3286dc9b9e54?auto=format&fit=crop&w=1600&q=95"},
	{"safije", "https://images.unsplash.com/photo-1559339352-11d035aa65de?auto=format&fit=crop&w=1600&q=95"},
	{"park princeva", "https://images.unsplash.com/photo-1514362545857-3bc16549766b?auto=format&fit=crop&w=1600&q=95"},
	{"kibe", "https://images.unsplash.com/photo-1514362545857-3bc16549766b?auto=format&fit=crop&w=1600&q=95"},
	{"inat", "https://images.unsplash.com/photo-1587574293340-e0011c4e8ecf?auto=format&fit=crop&w=1600&q=95"},
	{"pivnica", "https://images.unsplash.com/photo-1572802419224-296b0aeee0d9?auto=format&fit=crop&w=1600&q=95"},
	{"metropolis", "https://images.unsplash.com/photo-1554118811-1e0d58224f24?auto=format&fit=crop&w=1600&q=95"},
	{"vatra", "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?auto=format&fit=crop&w=1600&q=95"},
	{"manolo", "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=1600&q=95"},
	{"revolucija", "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=1600&q=95"},
	{"klopa", "https://images.unsplash.com/photo-1467003909585-2f8a7270028d?auto=format&fit=crop&w=1600&q=95"},
	{"dveri", "https://images.unsplash.com/photo-1550966871-3ed3c6227b3f?auto=format&fit=crop&w=1600&q=95"},
	{"avlija", "https://images.unsplash.com/photo-1587574293340-e0011c4e8ecf?auto=format&fit=crop&w=1600&q=95"},
	{"chipas", "https://images.unsplash.com/photo-1546549032-9571cd6b27df?auto=format&fit=crop&w=1600&q=95"},
	{"paper moon", "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&w=1600&q=95"},
	{"napoli", "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?auto=format&fit=crop&w=1600&q=95"},
	{"sushi", "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?auto=format&fit=crop&w=1600&q=95"},
	{"kimono", "https://images.unsplash.com/photo-1553621042-f6e147245754?auto=format&fit=crop&w=1600&q=95"},
	{"burger", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=1600&q=95"},
	{"blind tiger", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=1600&q=95"},
	{"bascarsija", "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&w=1600&q=95"},
	{"buregdzinica", "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&w=1600&q=95"},
	{"sac", "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&w=1600&q=95"},
	{"bosna", "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&w=1600&q=95"},
}

// Category fallbacks, matched as substrings of the cuisine label and of
// each name token of at least three characters.
var categoryImages = []imageRule{
	{"cevapi", "https://images.unsplash.com/photo-1599021408783-6c61f2f0c765?auto=format&fit=crop&w=1600&q=95"},
	{"rostilj", "https://images.unsplash.com/photo-1599021408783-6c61f2f0c765?auto=format&fit=crop&w=1600&q=95"},
	{"bosanska", "https://images.unsplash.com/photo-1550966871-3ed3c6227b3f?auto=format&fit=crop&w=1600&q=95"},
	{"traditional", "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=1600&q=95"},
	{"pita", "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&w=1600&q=95"},
	{"burek", "https://images.unsplash.com/photo-1623961990059-28356e22bc8e?auto=format&fit=crop&w=1600&q=95"},
	{"pizza", "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?auto=format&fit=crop&w=1600&q=95"},
	{"italijanska", "https://images.unsplash.com/photo-1546549032-9571cd6b27df?auto=format&fit=crop&w=1600&q=95"},
	{"pasta", "https://images.unsplash.com/photo-1546549032-9571cd6b27df?auto=format&fit=crop&w=1600&q=95"},
	{"burger", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=1600&q=95"},
	{"fast", "https://images.unsplash.com/photo-1561758033-d8f19662cb23?auto=format&fit=crop&w=1600&q=95"},
	{"sushi", "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?auto=format&fit=crop&w=1600&q=95"},
	{"azijska", "https://images.unsplash.com/photo-1552566626-52f8b828add9?auto=format&fit=crop&w=1600&q=95"},
	{"mexican", "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?auto=format&fit=crop&w=1600&q=95"},
	{"tacos", "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?auto=format&fit=crop&w=1600&q=95"},
	{"coffee", "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?auto=format&fit=crop&w=1600&q=95"},
	{"cafe", "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=1600&q=95"},
	{"kolaci", "https://images.unsplash.com/photo-1579306194872-64d3b7bac4c2?auto=format&fit=crop&w=1600&q=95"},
	{"slatkisi", "https://images.unsplash.com/photo-1579306194872-64d3b7bac4c2?auto=format&fit=crop&w=1600&q=95"},
	{"luxury", "https://images.unsplash.com/photo-1514362545857-3bc16549766b?auto=format&fit=crop&w=1600&q=95"},
	{"fina", "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=1600&q=95"},
	{"garden", "https://images.unsplash.com/photo-1587574293340-e0011c4e8ecf?auto=format&fit=crop&w=1600&q=95"},
	{"steak", "https://images.unsplash.com/photo-1546964124-0cce460f38ef?auto=format&fit=crop&w=1600&q=95"},
	{"fish", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?auto=format&fit=crop&w=1600&q=95"},
}

// DefaultImageURL is returned when no table matches.
const DefaultImageURL = "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?auto=format&fit=crop&w=1600&q=95"

// Aho-Corasick matchers over the table keys. Pattern index equals table
// position, so the lowest matched pattern is the first table entry.
var (
	specificMatcher = buildMatcher(specificImages)
	categoryMatcher = buildMatcher(categoryImages)
)

func buildMatcher(rules []imageRule) a.AhoCorasick {
	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchKind:            a.StandardMatch,
	})
	keys := make([]string, len(rules))
	for i, r := range rules {
		keys[i] = r.key
	}
	return builder.Build(keys)
}

// Local names carry diacritics the ASCII table keys do not ("Željo" vs
// "zeljo"), so normalization folds them before matching.
var diacriticFolder = strings.NewReplacer(
	"č", "c", "ć", "c", "đ", "d", "š", "s", "ž", "z",
	"Č", "c", "Ć", "c", "Đ", "d", "Š", "s", "Ž", "z",
)

func normalize(s string) string {
	return diacriticFolder.Replace(strings.ToLower(s))
}

// firstTableMatch returns the lowest table index among all keys found in
// haystack, which is equivalent to scanning the table in order.
func firstTableMatch(m a.AhoCorasick, haystack string) (int, bool) {
	best := -1
	iter := m.IterOverlapping(haystack)
	for match := iter.Next(); match != nil; match = iter.Next() {
		if best == -1 || match.Pattern() < best {
			best = match.Pattern()
		}
	}
	return best, best != -1
}

// ResolveImage picks an illustrative image URL from the restaurant name
// and cuisine label. Callers that already hold a photo reference resolve
// it to a media URL themselves and never reach this heuristic.
func ResolveImage(name, cuisine string) string {
	normalizedName := normalize(name)

	if idx, ok := firstTableMatch(specificMatcher, normalizedName); ok {
		return specificImages[idx].url
	}

	searchTerms := []string{normalize(cuisine)}
	searchTerms = append(searchTerms, strings.Fields(normalizedName)...)
	for _, term := range searchTerms {
		if len(term) < 3 {
			continue
		}
		if idx, ok := firstTableMatch(categoryMatcher, term); ok {
			return categoryImages[idx].url
		}
	}

	return DefaultImageURL
}
