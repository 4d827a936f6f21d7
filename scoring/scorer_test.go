package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-scout/models"
	"restaurant-scout/profile"
)

func boolPtr(b bool) *bool      { return &b }
func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func strongCandidate() *models.CandidateListing {
	return &models.CandidateListing{
		Name:          "Shizen Vegan Sushi Bar",
		CuisineTags:   []string{"Japanese", "Vegan"},
		PriceTier:     models.PriceModerate,
		Address:       "370 14th St, Mission, San Francisco",
		DistanceMiles: f64Ptr(0.8),
		Vegetarian: models.VegetarianSignal{
			HasMenu:      boolPtr(true),
			OptionCount:  12,
			MenuKeywords: []string{"tofu", "mushroom", "eggplant"},
		},
		TransitAccessible: boolPtr(true),
		WineQuality:       strPtr(models.WineExcellent),
		AllowsCorkage:     boolPtr(true),
	}
}

func TestScoreStrongMatch(t *testing.T) {
	p := profile.Default()
	got := Score(strongCandidate(), p, nil)

	// has_menu 10 + options 10 + keywords 5, capped with allergen bonus
	assert.Equal(t, 25.0, got.Dietary)
	// asian subtype 12 + multi-tag 3
	assert.Equal(t, 15.0, got.Cuisine)
	// $$ sits inside the 10-30 range
	assert.Equal(t, 20.0, got.Budget)
	// under a mile + transit confirmed
	assert.Equal(t, 20.0, got.Location)
	// excellent wine + corkage
	assert.Equal(t, 15.0, got.Amenity)
	assert.Equal(t, 95.0, got.Total)
	assert.Contains(t, got.Explanation, "excellent match")
}

func TestScoreDietaryOptionCountIsMonotonic(t *testing.T) {
	p := profile.Default()

	prev := -1.0
	for _, count := range []int{0, 1, 3, 5, 12} {
		c := strongCandidate()
		c.Vegetarian.OptionCount = count
		got := Score(c, p, nil)
		assert.GreaterOrEqual(t, got.Dietary, prev, "option count %d", count)
		prev = got.Dietary
	}
}

func TestScoreDietarySkippedForOmnivores(t *testing.T) {
	p := profile.Default()
	p.Dietary.IsVegetarian = false

	got := Score(strongCandidate(), p, nil)
	assert.Equal(t, 0.0, got.Dietary)
}

func TestScoreDietaryPenalizesMeatCenteredNames(t *testing.T) {
	p := profile.Default()

	c := strongCandidate()
	base := Score(c, p, nil).Dietary

	c.Name = "Mission Steakhouse"
	penalized := Score(c, p, nil).Dietary
	assert.Less(t, penalized, base)
	assert.GreaterOrEqual(t, penalized, 0.0)
}

func TestScoreCuisine(t *testing.T) {
	p := profile.Default() // prefers asian + mexican, mild spice

	tests := []struct {
		name    string
		tags    []string
		summary string
		want    float64
	}{
		{"direct preference", []string{"Mexican"}, "", 15},
		{"asian subtype", []string{"Japanese"}, "", 12},
		{"subtype plus extra tag", []string{"Japanese", "Sushi"}, "", 15},
		{"spicy subtype penalized", []string{"Thai"}, "", 7},
		{"spicy softened by mild note", []string{"Thai"}, "Mild curries available", 10},
		{"no match", []string{"French"}, "", 0},
		{"no tags", nil, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := strongCandidate()
			c.CuisineTags = tt.tags
			c.Summary = tt.summary
			assert.Equal(t, tt.want, Score(c, p, nil).Cuisine)
		})
	}
}

func TestScoreBudget(t *testing.T) {
	p := profile.Default() // 10-30 per dish

	tests := []struct {
		tier string
		want float64
	}{
		{models.PriceCheap, 20},    // $15 in range
		{models.PriceModerate, 20}, // $30 at the edge
		{models.PriceUpscale, 20.0 - (20.0/30.0)*20.0},
		{models.PriceLuxury, 0}, // decay floors at zero
		{"", 20},                // unknown tier gets the benefit of the doubt
	}

	for _, tt := range tests {
		c := strongCandidate()
		c.PriceTier = tt.tier
		got := Score(c, p, nil).Budget
		assert.InDelta(t, round1(tt.want), got, 0.001, "tier %q", tt.tier)
	}
}

func TestScoreBudgetOutsideRangeScoresStrictlyLess(t *testing.T) {
	p := profile.Default()

	c := strongCandidate()
	c.PriceTier = models.PriceModerate
	inRange := Score(c, p, nil).Budget

	c.PriceTier = models.PriceUpscale
	over := Score(c, p, nil).Budget
	assert.Less(t, over, inRange)

	p.Budget.MinPerDish = 25
	p.Budget.MaxPerDish = 60
	c.PriceTier = models.PriceCheap
	under := Score(c, p, nil).Budget
	assert.Less(t, under, 20.0)
	assert.GreaterOrEqual(t, under, 10.0)
}

func TestScoreLocation(t *testing.T) {
	p := profile.Default() // requires transit, max 3 miles

	c := strongCandidate()
	c.DistanceMiles = f64Ptr(2.5)
	assert.Equal(t, 18.0, Score(c, p, nil).Location)

	c.DistanceMiles = f64Ptr(8.0)
	assert.Equal(t, 10.0, Score(c, p, nil).Location)

	// unknown distance but address mentions the home city
	c.DistanceMiles = nil
	c.TransitAccessible = nil
	assert.Equal(t, 10.0, Score(c, p, nil).Location)

	c.TransitAccessible = boolPtr(false)
	assert.Equal(t, 5.0, Score(c, p, nil).Location)

	p.Location.RequiresTransit = false
	assert.Equal(t, 15.0, Score(c, p, nil).Location)
}

func TestScoreAmenity(t *testing.T) {
	p := profile.Default() // wine important, corkage preferred

	c := strongCandidate()
	c.WineQuality = strPtr(models.WineGood)
	c.AllowsCorkage = nil
	assert.Equal(t, 9.5, Score(c, p, nil).Amenity)

	c.WineQuality = nil
	c.AllowsCorkage = boolPtr(false)
	assert.Equal(t, 4.0, Score(c, p, nil).Amenity)

	p.Amenity.WineImportant = false
	p.Amenity.CorkagePreferred = false
	assert.Equal(t, 15.0, Score(c, p, nil).Amenity)
}

func TestScoreIsPure(t *testing.T) {
	p := profile.Default()
	c := strongCandidate()

	first := Score(c, p, nil)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Score(c, p, nil))
	}
}

func TestFeedbackThresholds(t *testing.T) {
	p := profile.Default()

	strong := Score(strongCandidate(), p, nil)
	require.NotEmpty(t, strong.MatchReasons)
	assert.Contains(t, strong.MatchReasons, "Excellent vegetarian options available")
	assert.Empty(t, strong.Concerns)

	weak := Score(&models.CandidateListing{Name: "Unknown Steakhouse", CuisineTags: []string{"French"}}, p, nil)
	assert.Contains(t, weak.Concerns, "Limited vegetarian options")
	assert.Contains(t, weak.Concerns, "Cuisine type doesn't match preferences")
}
