package query

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"restaurant-scout/models"
	"restaurant-scout/profile"
)

var partySizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`for (\d+) people`),
	regexp.MustCompile(`for (\d+) person`),
	regexp.MustCompile(`party of (\d+)`),
	regexp.MustCompile(`table for (\d+)`),
	regexp.MustCompile(`(\d+) people`),
	regexp.MustCompile(`(\d+) person`),
	regexp.MustCompile(`for (\d+)\b`),
}

// spelledNumbers is ordered so "six or seven people" resolves the same way
// every time.
var spelledNumbers = []struct {
	word string
	n    int
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4},
	{"five", 5}, {"six", 6}, {"seven", 7}, {"eight", 8},
}

// weekdays is ordered so a query naming several days resolves the same way
// every time.
var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

var timePattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

// categoryKeywords maps each relevance category to its fixed keyword set.
// Relevance is the fraction of a set matched by the query's tokens.
var categoryKeywords = map[string][]string{
	models.CategoryDietary: {
		"vegetarian", "vegan", "allergy", "allergic", "spicy", "mild",
		"meat", "dairy", "gluten", "diet", "dietary",
	},
	models.CategoryCuisine: {
		"asian", "mexican", "thai", "chinese", "indian", "italian",
		"japanese", "vietnamese", "cuisine", "food", "restaurant",
	},
	models.CategoryBudget: {
		"cheap", "expensive", "budget", "price", "cost", "affordable",
		"$", "$$", "$$$", "money", "spend",
	},
	models.CategoryLocation: {
		"near", "close", "distance", "neighborhood", "area", "transit",
		"walk", "drive", "uber", "bart", "muni",
	},
	models.CategoryTiming: {
		"time", "when", "available", "reservation", "book", "table",
		"tonight", "tomorrow", "weekend", "lunch", "dinner", "breakfast",
	},
}

// relevanceThreshold gates category context inclusion in the intent
const relevanceThreshold = 0.1

// Interpret parses a free-text dining request into a structured intent using
// the profile for defaults. Pure and deterministic: the clock is injected so
// relative dates resolve against now.
func Interpret(text string, p *profile.Profile, now time.Time) *models.StructuredIntent {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	intent := &models.StructuredIntent{
		Query:     text,
		PartySize: parsePartySize(lower, tokens, p),
		Date:      parseDate(lower, now),
		Time:      parseTime(lower),
		MealType:  parseMealType(lower),
		Kind:      parseKind(lower),
		Relevance: make(map[string]float64, len(categoryKeywords)),
	}

	for category, keywords := range categoryKeywords {
		matches := 0
		for _, kw := range keywords {
			if tokens[kw] {
				matches++
			}
		}
		intent.Relevance[category] = float64(matches) / float64(len(keywords))
	}

	if intent.Relevance[models.CategoryDietary] > relevanceThreshold {
		intent.DietaryContext = &p.Dietary
	}
	// Cuisine context is attached unconditionally: cuisine preferences are
	// default-relevant to every restaurant search.
	intent.CuisineContext = &p.Cuisine
	if intent.Relevance[models.CategoryBudget] > relevanceThreshold {
		intent.BudgetContext = &p.Budget
	}
	if intent.Relevance[models.CategoryLocation] > relevanceThreshold {
		intent.LocationContext = &p.Location
	}
	if intent.Relevance[models.CategoryTiming] > relevanceThreshold {
		intent.TimingContext = &p.Timing
	}

	return intent
}

// tokenize splits a lowercased query into a token set, keeping "$" runs intact
func tokenize(lower string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.Fields(lower) {
		trimmed := strings.Trim(field, ".,!?;:'\"()")
		if trimmed != "" {
			tokens[trimmed] = true
		}
	}
	return tokens
}

func parsePartySize(lower string, tokens map[string]bool, p *profile.Profile) int {
	for _, pattern := range partySizePatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
				return n
			}
		}
	}

	for _, sn := range spelledNumbers {
		if tokens[sn.word] {
			return sn.n
		}
	}

	if p.TypicalPartySize >= 1 {
		return p.TypicalPartySize
	}
	return 2
}

// parseDate resolves relative date words against now. Returns nil when the
// query names no date; the caller may default to today.
func parseDate(lower string, now time.Time) *time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	date := func(d time.Time) *time.Time { return &d }

	switch {
	case strings.Contains(lower, "tonight"), strings.Contains(lower, "today"):
		return date(today)
	case strings.Contains(lower, "day after tomorrow"):
		return date(today.AddDate(0, 0, 2))
	case strings.Contains(lower, "tomorrow"):
		return date(today.AddDate(0, 0, 1))
	case strings.Contains(lower, "this weekend"):
		// Next Saturday; an actual Saturday rolls to next week's.
		days := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return date(today.AddDate(0, 0, days))
	case strings.Contains(lower, "next week"):
		return date(today.AddDate(0, 0, 7))
	}

	for _, wd := range weekdays {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		// Next future occurrence; today's weekday name means next week, never today.
		days := (int(wd.day) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return date(today.AddDate(0, 0, days))
	}

	return nil
}

func parseTime(lower string) string {
	if m := timePattern.FindString(lower); m != "" {
		return m
	}
	return ""
}

func parseMealType(lower string) string {
	switch {
	case strings.Contains(lower, "breakfast"), strings.Contains(lower, "brunch"):
		return models.MealBreakfast
	case strings.Contains(lower, "lunch"):
		return models.MealLunch
	case strings.Contains(lower, "dinner"), strings.Contains(lower, "tonight"):
		return models.MealDinner
	}
	return models.MealDinner
}

func parseKind(lower string) string {
	for _, word := range []string{"find", "search", "recommend"} {
		if strings.Contains(lower, word) {
			return models.KindFind
		}
	}
	for _, word := range []string{"book", "reserve", "table"} {
		if strings.Contains(lower, word) {
			return models.KindReserve
		}
	}
	return models.KindFind
}
