package extract

import (
	"regexp"
	"strings"
	"unicode"

	"restaurant-scout/models"
)

var decimalRating = regexp.MustCompile(`(\d\.\d{1,2})`)

// nameDenylist marks lines that look like agent instructions, UI chrome or
// log output rather than restaurant names.
var nameDenylist = []string{
	"extract", "scroll", "sign", "sponsored", "search", "filter", "map",
	"restaurant name", "available times", "example output", "user wants",
	"agent has", "just list", "look for", "cost", "gemini",
	"info", "debug", "error", "warning",
}

// parseFreeform is the last-resort strategy: scan lines for plausible
// restaurant names and attach ratings, prices and neighborhoods found on
// following lines to the most recently opened candidate.
func parseFreeform(text string) []*models.CandidateListing {
	var candidates []*models.CandidateListing
	var current *models.CandidateListing

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "http") || strings.HasPrefix(line, "(") {
			continue
		}

		stripped := listNumbering.ReplaceAllString(line, "")

		if isFreeformName(stripped) {
			current = &models.CandidateListing{Name: stripped}
			candidates = append(candidates, current)
			continue
		}
		if current == nil {
			continue
		}

		if m := decimalRating.FindString(line); m != "" && current.Rating == nil {
			current.Rating = parseRating(m)
			continue
		}
		if strings.Contains(line, "$") && len(line) <= 10 {
			if m := priceRun.FindString(line); m != "" && current.PriceTier == "" {
				current.PriceTier = m
				continue
			}
		}
		if current.Address == "" {
			lower := strings.ToLower(line)
			for _, hood := range neighborhoodDistances {
				if strings.Contains(lower, hood.name) {
					current.Address = line
					break
				}
			}
		}
	}

	return candidates
}

// isFreeformName applies the heuristic name filter: 1-6 words, leading
// uppercase letter, not ALL-CAPS, no pipes, and nothing from the denylist.
func isFreeformName(line string) bool {
	if line == "" || len(line) <= 3 || len(line) > maxNameLength {
		return false
	}
	if strings.Contains(line, "|") || strings.HasPrefix(line, "[") {
		return false
	}

	words := strings.Fields(line)
	if len(words) < 1 || len(words) > 6 {
		return false
	}

	first := []rune(line)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	if line == strings.ToUpper(line) {
		return false
	}

	lower := strings.ToLower(line)
	for _, deny := range nameDenylist {
		if strings.Contains(lower, deny) {
			return false
		}
	}
	return true
}
