package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-scout/models"
	"restaurant-scout/profile"
	"restaurant-scout/utils"
)

func testIntent(p *profile.Profile) *models.StructuredIntent {
	return &models.StructuredIntent{
		Query:          "vegetarian dinner",
		CuisineContext: &p.Cuisine,
		BudgetContext:  &p.Budget,
	}
}

func TestNormalizeDelimitedBlocks(t *testing.T) {
	raw := `
Some page chrome here
=== RESTAURANT ===
name: Shizen Vegan Sushi Bar
cuisine: Japanese, Vegan
price: $$ (moderate)
location: 370 14th St, Mission
rating: 4.5 stars
phone: (415) 678-5767
times: [6:00 PM, 6:30 PM, 8:00 PM]
features: [corkage allowed, excellent wine list, near transit]
=== END ===
=== RESTAURANT ===
name: Nameless Spot
rating: garbage
=== END ===
=== RESTAURANT ===
cuisine: Thai
=== END ===
`
	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())
	got := n.Normalize(raw, testIntent(p), p)

	require.Len(t, got, 2) // block without a name is dropped
	c := got[0]
	assert.Equal(t, "Shizen Vegan Sushi Bar", c.Name)
	assert.Equal(t, []string{"Japanese", "Vegan"}, c.CuisineTags)
	assert.Equal(t, "$$", c.PriceTier)
	assert.Equal(t, "370 14th St, Mission", c.Address)
	require.NotNil(t, c.Rating)
	assert.Equal(t, 4.5, *c.Rating)
	assert.Equal(t, []string{"6:00 PM", "6:30 PM", "8:00 PM"}, c.Availability)
	require.NotNil(t, c.AllowsCorkage)
	assert.True(t, *c.AllowsCorkage)
	require.NotNil(t, c.WineQuality)
	assert.Equal(t, models.WineExcellent, *c.WineQuality)
	require.NotNil(t, c.TransitAccessible)
	assert.True(t, *c.TransitAccessible)
	// "vegan" in the name implies a vegetarian menu
	require.NotNil(t, c.Vegetarian.HasMenu)
	assert.True(t, *c.Vegetarian.HasMenu)
	assert.Equal(t, 8, c.Vegetarian.OptionCount)
	// neighborhood distance inferred from the address
	require.NotNil(t, c.DistanceMiles)
	assert.Equal(t, 2.5, *c.DistanceMiles)
}

func TestNormalizeNoAvailabilityIsConfirmedEmpty(t *testing.T) {
	raw := `
=== RESTAURANT ===
name: Greens Restaurant
times: no availability tonight
=== END ===
`
	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())
	got := n.Normalize(raw, testIntent(p), p)

	require.Len(t, got, 1)
	require.NotNil(t, got[0].Availability)
	assert.Empty(t, got[0].Availability)
}

func TestNormalizeSinglePipeLine(t *testing.T) {
	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())

	got := n.Normalize("Greens Restaurant | Vegetarian | $$$ | Fort Mason", testIntent(p), p)

	require.Len(t, got, 1)
	assert.Equal(t, "Greens Restaurant", got[0].Name)
	assert.Equal(t, []string{"Vegetarian"}, got[0].CuisineTags)
	assert.Equal(t, "$$$", got[0].PriceTier)
	assert.Equal(t, "Fort Mason", got[0].Address)
}

func TestNormalizeDelimitedLines(t *testing.T) {
	raw := `
2025/03/12 INFO navigating to results page
Here are some options:
1. Greens Restaurant | Vegetarian | $$ | Fort Mason | 4.4
2. Loving Hut | Vegan, Asian | $ | Chinatown
[Example | Format | $$$ | Nowhere]
ab | x | $
`
	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())
	got := n.Normalize(raw, testIntent(p), p)

	require.Len(t, got, 2)
	assert.Equal(t, "Greens Restaurant", got[0].Name)
	assert.Equal(t, []string{"Vegetarian"}, got[0].CuisineTags)
	assert.Equal(t, "$$", got[0].PriceTier)
	assert.Equal(t, "Fort Mason", got[0].Address)
	require.NotNil(t, got[0].Rating)
	assert.Equal(t, 4.4, *got[0].Rating)
	require.NotNil(t, got[0].DistanceMiles)
	assert.Equal(t, 1.7, *got[0].DistanceMiles)

	assert.Equal(t, "Loving Hut", got[1].Name)
	assert.Equal(t, []string{"Vegan", "Asian"}, got[1].CuisineTags)
	assert.Nil(t, got[1].Rating)
}

func TestNormalizeFreeform(t *testing.T) {
	raw := `
Sponsored results
here are a few vegetarian picks around the Mission:
1. Gracias Madre
4.3
$$
2. Herbivore
Valencia St, Mission
http://example.com/menu
INFO done
`
	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())
	got := n.Normalize(raw, testIntent(p), p)

	require.Len(t, got, 2)
	assert.Equal(t, "Gracias Madre", got[0].Name)
	require.NotNil(t, got[0].Rating)
	assert.Equal(t, 4.3, *got[0].Rating)
	assert.Equal(t, "$$", got[0].PriceTier)
	assert.Equal(t, "Herbivore", got[1].Name)
	assert.Equal(t, "Valencia St, Mission", got[1].Address)
}

func TestNormalizeDedupeFirstWins(t *testing.T) {
	raw := `
Shizen | Japanese | $$ | Mission | 4.5
SHIZEN | Sushi | $$$ | Soma
Greens Restaurant | Vegetarian | $$ | Fort Mason
`
	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())
	got := n.Normalize(raw, testIntent(p), p)

	require.Len(t, got, 2)
	assert.Equal(t, "Shizen", got[0].Name)
	assert.Equal(t, []string{"Japanese"}, got[0].CuisineTags)
	assert.Equal(t, "Greens Restaurant", got[1].Name)
}

func TestNormalizeCapsCandidateCount(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "Restaurant Number %d | Thai | $$ | Mission\n", i)
	}

	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())
	got := n.Normalize(b.String(), testIntent(p), p)

	assert.Len(t, got, 10)
}

func TestNormalizeBackfillsFromContext(t *testing.T) {
	raw := "Golden Lotus | | | \nSecond Place | Thai | |"
	p := profile.Default()
	intent := testIntent(p)

	n := NewNormalizer(utils.NewNopLogger())
	got := n.Normalize(raw, intent, p)

	require.Len(t, got, 2)
	c := got[0]
	// first preferred cuisine, title-cased
	assert.Equal(t, []string{"Asian"}, c.CuisineTags)
	// default profile budget is 10-30 per dish, midpoint 20 → cheap tier
	assert.Equal(t, models.PriceCheap, c.PriceTier)
	// no location context on this intent, so the profile's home city is used
	assert.Equal(t, p.Location.HomeCity, c.Address)
}

func TestNormalizeEmptyAndGarbageInput(t *testing.T) {
	p := profile.Default()
	n := NewNormalizer(utils.NewNopLogger())

	assert.Nil(t, n.Normalize("", testIntent(p), p))
	assert.Nil(t, n.Normalize("   \n\t  ", testIntent(p), p))
	assert.Nil(t, n.Normalize("INFO nothing here\nDEBUG still nothing", testIntent(p), p))
}

func TestCanonicalBlocksRoundTrip(t *testing.T) {
	raw := `
=== RESTAURANT ===
name: Shizen Vegan Sushi Bar
cuisine: Japanese, Vegan
price: $$
location: Mission
rating: 4.5
phone: (415) 678-5767
times: [6:00 PM, 8:00 PM]
features: [corkage allowed, excellent wine list, near transit]
=== END ===
=== RESTAURANT ===
name: Greens Restaurant
cuisine: Vegetarian
price: $$
location: Fort Mason
=== END ===
`
	p := profile.Default()
	intent := testIntent(p)
	n := NewNormalizer(utils.NewNopLogger())

	first := n.Normalize(raw, intent, p)
	require.Len(t, first, 2)

	second := n.Normalize(CanonicalBlocks(first), intent, p)
	assert.Equal(t, first, second)
}
