package extract

import (
	"regexp"
	"strings"

	"restaurant-scout/models"
)

var listNumbering = regexp.MustCompile(`^\d+\.\s*`)

// noiseNames are phrases that mark a "name" field as template or log text
// rather than a real restaurant.
var noiseNames = []string{
	"format", "restaurant name", "looking", "example", "extract",
}

// parseDelimitedLines handles pipe-separated listing lines of the form
// "Name | Cuisine | Price | Address[ | Rating]". Lines with fewer than three
// fields or a noise name are discarded.
func parseDelimitedLines(text string) []*models.CandidateListing {
	var candidates []*models.CandidateListing

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") {
			continue
		}
		if isLogLine(line) {
			continue
		}

		line = listNumbering.ReplaceAllString(line, "")
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		name := parts[0]
		if !looksLikeRestaurantName(name) {
			continue
		}

		c := &models.CandidateListing{Name: name}
		if parts[1] != "" {
			c.CuisineTags = splitList(parts[1])
		}
		if len(parts) > 2 {
			c.PriceTier = priceRun.FindString(parts[2])
		}
		if len(parts) > 3 {
			c.Address = parts[3]
		}
		if len(parts) > 4 {
			c.Rating = parseRating(parts[4])
		}

		candidates = append(candidates, c)
	}
	return candidates
}

func looksLikeRestaurantName(name string) bool {
	if name == "" || len(name) <= 3 || strings.HasPrefix(name, "[") {
		return false
	}
	lower := strings.ToLower(name)
	for _, noise := range noiseNames {
		if strings.Contains(lower, noise) {
			return false
		}
	}
	return true
}

func isLogLine(line string) bool {
	return strings.Contains(line, "INFO") ||
		strings.Contains(line, "DEBUG") ||
		strings.Contains(line, "WARNING") ||
		strings.Contains(line, "[cost]")
}
