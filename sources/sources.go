// Package sources knows how to point the extraction agent at each supported
// restaurant platform: one search URL plus one task description per platform,
// both derived from the structured intent.
package sources

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"restaurant-scout/models"
)

// Supported platform ids
const (
	OpenTable = "opentable"
	Resy      = "resy"
	Yelp      = "yelp"
	Google    = "google"
)

// Default returns the platforms queried when the config does not narrow them
func Default() []string {
	return []string{OpenTable, Resy, Yelp, Google}
}

// resyCuisineFacets maps preference cuisines to Resy facet values
var resyCuisineFacets = map[string]string{
	"asian":    "Asian",
	"mexican":  "Mexican",
	"italian":  "Italian",
	"thai":     "Thai",
	"japanese": "Japanese",
	"chinese":  "Chinese",
	"indian":   "Indian",
	"fusion":   "Fusion",
	"american": "American",
}

// defaultMealTimes gives the 24h search time per meal when the query named none
var defaultMealTimes = map[string]string{
	models.MealBreakfast: "09:00",
	models.MealLunch:     "12:30",
	models.MealDinner:    "19:00",
}

// BuildURL constructs the search URL for a platform from the intent
func BuildURL(platform string, intent *models.StructuredIntent) (string, error) {
	switch platform {
	case OpenTable:
		return buildOpenTableURL(intent), nil
	case Resy:
		return buildResyURL(intent), nil
	case Yelp:
		return buildYelpURL(intent), nil
	case Google:
		return buildGoogleURL(intent), nil
	}
	return "", fmt.Errorf("unsupported platform %q", platform)
}

func buildOpenTableURL(intent *models.StructuredIntent) string {
	params := url.Values{}
	params.Set("covers", strconv.Itoa(intent.PartySize))
	params.Set("dateTime", searchDate(intent).Format("2006-01-02")+"T"+searchTime(intent)+":00")
	if term := searchCuisine(intent); term != "" {
		params.Set("term", term)
	}
	params.Set("metroId", "4")
	params.Set("latitude", "37.7829745")
	params.Set("longitude", "-122.4182459")
	params.Set("sortBy", "web_conversion")
	return "https://www.opentable.com/s?" + params.Encode()
}

func buildResyURL(intent *models.StructuredIntent) string {
	params := url.Values{}
	params.Set("date", searchDate(intent).Format("2006-01-02"))
	params.Set("seats", strconv.Itoa(intent.PartySize))
	params.Set("time", strings.ReplaceAll(searchTime(intent), ":", ""))
	if c := searchCuisine(intent); c != "" {
		if facet, ok := resyCuisineFacets[c]; ok {
			params.Set("facet", "cuisine:"+facet)
		}
	}
	return "https://resy.com/cities/san-francisco-ca/search?" + params.Encode()
}

func buildYelpURL(intent *models.StructuredIntent) string {
	terms := []string{"restaurants"}
	if intent.DietaryContext != nil && intent.DietaryContext.IsVegetarian {
		terms = append([]string{"vegetarian"}, terms...)
	}
	if c := searchCuisine(intent); c != "" {
		terms = append([]string{c}, terms...)
	}

	city := "San Francisco, CA"
	if intent.LocationContext != nil && intent.LocationContext.HomeCity != "" {
		city = intent.LocationContext.HomeCity
	}

	params := url.Values{}
	params.Set("find_desc", strings.Join(terms, " "))
	params.Set("find_loc", city)
	params.Set("attrs", "RestaurantsReservations")
	return "https://www.yelp.com/search?" + params.Encode()
}

func buildGoogleURL(intent *models.StructuredIntent) string {
	terms := []string{}
	if intent.DietaryContext != nil && intent.DietaryContext.IsVegetarian {
		terms = append(terms, "vegetarian")
	}
	if c := searchCuisine(intent); c != "" {
		terms = append(terms, c)
	}
	terms = append(terms, "restaurants")
	city := "san francisco"
	if intent.LocationContext != nil && intent.LocationContext.HomeCity != "" {
		city = strings.ToLower(intent.LocationContext.HomeCity)
	}
	terms = append(terms, city)

	params := url.Values{}
	params.Set("q", strings.Join(terms, " "))
	return "https://www.google.com/search?" + params.Encode()
}

// searchDate falls back to the current day when the query resolved no date
func searchDate(intent *models.StructuredIntent) time.Time {
	if intent.Date != nil {
		return *intent.Date
	}
	return time.Now()
}

// searchTime returns the 24h "HH:MM" time to search for
func searchTime(intent *models.StructuredIntent) string {
	if intent.Time != "" {
		if t := parseTo24h(intent.Time); t != "" {
			return t
		}
	}
	if t, ok := defaultMealTimes[intent.MealType]; ok {
		return t
	}
	return "19:00"
}

// searchCuisine picks the most preferred cuisine from the intent context
func searchCuisine(intent *models.StructuredIntent) string {
	if intent.CuisineContext == nil || len(intent.CuisineContext.Preferred) == 0 {
		return ""
	}
	return strings.ToLower(intent.CuisineContext.Preferred[0])
}

// parseTo24h converts "8pm" / "7:30 pm" style times to "HH:MM"; empty on failure
func parseTo24h(raw string) string {
	s := strings.ReplaceAll(strings.ToLower(raw), " ", "")

	var meridiem string
	switch {
	case strings.HasSuffix(s, "pm"):
		meridiem = "pm"
		s = strings.TrimSuffix(s, "pm")
	case strings.HasSuffix(s, "am"):
		meridiem = "am"
		s = strings.TrimSuffix(s, "am")
	default:
		return ""
	}

	hourPart, minutePart := s, "00"
	if i := strings.Index(s, ":"); i >= 0 {
		hourPart, minutePart = s[:i], s[i+1:]
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return ""
	}
	if _, err := strconv.Atoi(minutePart); err != nil || len(minutePart) != 2 {
		return ""
	}

	if meridiem == "pm" && hour < 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%s", hour, minutePart)
}
