package sources

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-scout/models"
	"restaurant-scout/profile"
)

func reservationIntent() *models.StructuredIntent {
	p := profile.Default()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	return &models.StructuredIntent{
		Query:           "vegetarian dinner for 4 friday at 7:30 pm",
		PartySize:       4,
		Date:            &date,
		Time:            "7:30 pm",
		MealType:        models.MealDinner,
		Kind:            models.KindReserve,
		DietaryContext:  &p.Dietary,
		CuisineContext:  &p.Cuisine,
		LocationContext: &p.Location,
	}
}

func queryParams(t *testing.T, rawURL string) url.Values {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Query()
}

func TestBuildOpenTableURL(t *testing.T) {
	rawURL, err := BuildURL(OpenTable, reservationIntent())
	require.NoError(t, err)

	params := queryParams(t, rawURL)
	assert.Equal(t, "4", params.Get("covers"))
	assert.Equal(t, "2025-03-14T19:30:00", params.Get("dateTime"))
	assert.Equal(t, "asian", params.Get("term"))
}

func TestBuildResyURL(t *testing.T) {
	rawURL, err := BuildURL(Resy, reservationIntent())
	require.NoError(t, err)

	params := queryParams(t, rawURL)
	assert.Equal(t, "2025-03-14", params.Get("date"))
	assert.Equal(t, "4", params.Get("seats"))
	assert.Equal(t, "1930", params.Get("time"))
	assert.Equal(t, "cuisine:Asian", params.Get("facet"))
}

func TestBuildYelpURL(t *testing.T) {
	rawURL, err := BuildURL(Yelp, reservationIntent())
	require.NoError(t, err)

	params := queryParams(t, rawURL)
	assert.Equal(t, "asian vegetarian restaurants", params.Get("find_desc"))
	assert.Equal(t, "San Francisco", params.Get("find_loc"))
}

func TestBuildGoogleURL(t *testing.T) {
	rawURL, err := BuildURL(Google, reservationIntent())
	require.NoError(t, err)

	params := queryParams(t, rawURL)
	assert.Equal(t, "vegetarian asian restaurants san francisco", params.Get("q"))
}

func TestBuildURLUnsupportedPlatform(t *testing.T) {
	_, err := BuildURL("doordash", reservationIntent())
	assert.Error(t, err)
}

func TestSearchTimeDefaultsPerMeal(t *testing.T) {
	intent := reservationIntent()
	intent.Time = ""

	intent.MealType = models.MealBreakfast
	assert.Equal(t, "09:00", searchTime(intent))
	intent.MealType = models.MealLunch
	assert.Equal(t, "12:30", searchTime(intent))
	intent.MealType = models.MealDinner
	assert.Equal(t, "19:00", searchTime(intent))
}

func TestParseTo24h(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8pm", "20:00"},
		{"7:30 pm", "19:30"},
		{"11am", "11:00"},
		{"12am", "00:00"},
		{"12pm", "12:00"},
		{"notatime", ""},
		{"25pm", ""},
		{"7:3 pm", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseTo24h(tt.in), "input %q", tt.in)
	}
}

func TestTaskDescriptionMentionsPlatformFormat(t *testing.T) {
	for _, platform := range Default() {
		task := TaskDescription(platform, "https://example.com/search")
		assert.NotEmpty(t, task, "platform %s", platform)
		assert.Contains(t, task, "https://example.com/search", "platform %s", platform)
	}

	// structured platforms ask for the pipe-delimited line format
	for _, platform := range []string{OpenTable, Yelp, Google} {
		assert.Contains(t, TaskDescription(platform, "u"), "|", "platform %s", platform)
	}
}
