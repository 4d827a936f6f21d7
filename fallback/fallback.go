// Package fallback supplies a curated static candidate set used when every
// live source fails, so the pipeline always has something to rank.
package fallback

import (
	"strings"

	"restaurant-scout/models"
)

// SourceID tags entries that came from the static set rather than a live source
const SourceID = "fallback"

type record struct {
	name    string
	cuisine []string
	price   string
	address string
	rating  float64
}

var knownRestaurants = map[string][]record{
	"san francisco": {
		{"Shizen Vegan Sushi Bar", []string{"Vegan", "Sushi", "Japanese"}, "$$", "Mission", 4.5},
		{"Greens Restaurant", []string{"Vegetarian", "American"}, "$$$", "Fort Mason", 4.3},
		{"Loving Hut", []string{"Vegan", "Asian"}, "$", "Chinatown", 4.2},
		{"The Plant Cafe Organic", []string{"Organic", "Vegetarian-Friendly"}, "$$", "Marina", 4.0},
		{"Herbivore", []string{"Vegan", "American"}, "$$", "Valencia", 4.1},
		{"Burma Superstar", []string{"Burmese", "Asian"}, "$$", "Clement", 4.4},
		{"Thanh Long", []string{"Vietnamese", "Seafood"}, "$$$", "Sunset", 4.3},
		{"Gracias Madre", []string{"Mexican", "Vegan"}, "$$", "Mission", 4.2},
	},
}

// Candidates returns up to n known restaurants for a city (case-insensitive).
// Unknown cities yield nil.
func Candidates(city string, n int) []*models.CandidateListing {
	records := knownRestaurants[normalizeCity(city)]
	if n > len(records) {
		n = len(records)
	}

	out := make([]*models.CandidateListing, 0, n)
	for _, r := range records[:n] {
		rating := r.rating
		out = append(out, &models.CandidateListing{
			Name:        r.name,
			CuisineTags: append([]string(nil), r.cuisine...),
			PriceTier:   r.price,
			Address:     r.address,
			Rating:      &rating,
		})
	}
	return out
}

func normalizeCity(city string) string {
	return strings.ReplaceAll(strings.ToLower(city), "_", " ")
}
