package scoring

import (
	"fmt"
	"math"
	"strings"

	"restaurant-scout/models"
	"restaurant-scout/profile"
)

// Axis maxima
const (
	maxDietary  = 25.0
	maxCuisine  = 20.0
	maxBudget   = 20.0
	maxLocation = 20.0
	maxAmenity  = 15.0
)

// representativeCost estimates the per-dish dollar cost of a price tier
var representativeCost = map[string]float64{
	models.PriceCheap:    15,
	models.PriceModerate: 30,
	models.PriceUpscale:  50,
	models.PriceLuxury:   80,
}

// qualityVegKeywords indicate substantial vegetarian dishes on a menu
var qualityVegKeywords = []string{
	"tofu", "tempeh", "quinoa", "lentil", "chickpea",
	"mushroom", "eggplant", "cauliflower", "paneer",
}

// asianSubtypes count toward a generic "asian" cuisine preference
var asianSubtypes = []string{"chinese", "japanese", "thai", "vietnamese", "korean", "indian"}

// spicyCuisines typically challenge a mild spice tolerance
var spicyCuisines = []string{"thai", "szechuan", "sichuan", "indian", "korean"}

// antiVegNames in a restaurant name suggest a meat-centered kitchen
var antiVegNames = []string{"steakhouse", "bbq", "seafood"}

// Score evaluates a candidate against the profile and returns a five-axis
// breakdown with a natural-language explanation. Pure: identical inputs give
// identical outputs, rounded to one decimal.
func Score(c *models.CandidateListing, p *profile.Profile, intent *models.StructuredIntent) *models.ScoreBreakdown {
	dietary := scoreDietary(c, p)
	cuisine := scoreCuisine(c, p)
	budget := scoreBudget(c, p)
	location := scoreLocation(c, p)
	amenity := scoreAmenity(c, p)

	total := dietary + cuisine + budget + location + amenity
	reasons, concerns := feedback(c, dietary, cuisine, budget, location, amenity)

	breakdown := &models.ScoreBreakdown{
		Dietary:      round1(dietary),
		Cuisine:      round1(cuisine),
		Budget:       round1(budget),
		Location:     round1(location),
		Amenity:      round1(amenity),
		Total:        round1(total),
		MatchReasons: reasons,
		Concerns:     concerns,
	}
	breakdown.Explanation = explanation(round1(total), reasons, concerns)
	return breakdown
}

func scoreDietary(c *models.CandidateListing, p *profile.Profile) float64 {
	if !p.Dietary.IsVegetarian {
		return 0
	}

	score := 0.0
	if c.Vegetarian.HasMenu != nil && *c.Vegetarian.HasMenu {
		score += 10
	}

	switch {
	case c.Vegetarian.OptionCount >= 5:
		score += 10
	case c.Vegetarian.OptionCount >= 3:
		score += 7
	case c.Vegetarian.OptionCount >= 1:
		score += 4
	}

	menuText := strings.ToLower(strings.Join(c.Vegetarian.MenuKeywords, " "))
	matches := 0
	for _, kw := range qualityVegKeywords {
		if strings.Contains(menuText, kw) {
			matches++
		}
	}
	if matches >= 3 {
		score += 5
	} else if matches >= 1 {
		score += 3
	}

	nameLower := strings.ToLower(c.Name)
	for _, word := range antiVegNames {
		if strings.Contains(nameLower, word) {
			score = math.Max(0, score-10)
			break
		}
	}

	if len(p.Dietary.Allergies) > 0 {
		allergenFound := false
		for _, allergen := range p.Dietary.Allergies {
			if strings.Contains(menuText, strings.ToLower(allergen)) {
				allergenFound = true
				break
			}
		}
		if !allergenFound {
			score = math.Min(maxDietary, score+2)
		}
	}

	return clamp(score, maxDietary)
}

func scoreCuisine(c *models.CandidateListing, p *profile.Profile) float64 {
	score := 0.0

	tags := lowerAll(c.CuisineTags)
	preferred := lowerAll(p.Cuisine.Preferred)

	for _, tag := range tags {
		if contains(preferred, tag) {
			score += 15
			break
		}
		if contains(asianSubtypes, tag) && contains(preferred, "asian") {
			score += 12
			break
		}
	}

	if len(tags) > 1 {
		score += 3
	}

	for _, avoid := range lowerAll(p.Cuisine.Avoid) {
		if contains(tags, avoid) {
			score = math.Max(0, score-10)
		}
	}

	if p.Dietary.SpiceTolerance == profile.SpiceMild {
		for _, tag := range tags {
			if contains(spicyCuisines, tag) {
				if strings.Contains(strings.ToLower(c.Summary), "mild") {
					score = math.Max(0, score-2)
				} else {
					score = math.Max(0, score-5)
				}
				break
			}
		}
	}

	return clamp(score, maxCuisine)
}

func scoreBudget(c *models.CandidateListing, p *profile.Profile) float64 {
	cost, ok := representativeCost[c.PriceTier]
	if !ok {
		return maxBudget
	}

	min, max := p.Budget.MinPerDish, p.Budget.MaxPerDish
	switch {
	case cost >= min && cost <= max:
		return maxBudget
	case cost < min:
		// Under budget is still workable; decay toward 10.
		ratio := (min - cost) / min
		return clamp(maxBudget-ratio*10, maxBudget)
	default:
		ratio := (cost - max) / max
		return clamp(maxBudget-ratio*20, maxBudget)
	}
}

func scoreLocation(c *models.CandidateListing, p *profile.Profile) float64 {
	score := 0.0

	if c.DistanceMiles != nil {
		switch d := *c.DistanceMiles; {
		case d <= 1:
			score += 10
		case d <= 3:
			score += 8
		case d <= p.Location.MaxDistanceMiles:
			score += 5
		}
	} else if p.Location.HomeCity != "" &&
		strings.Contains(strings.ToLower(c.Address), strings.ToLower(p.Location.HomeCity)) {
		score += 5
	}

	if p.Location.RequiresTransit {
		switch {
		case c.TransitAccessible == nil:
			score += 5
		case *c.TransitAccessible:
			score += 10
		}
	} else {
		score += 10
	}

	return clamp(score, maxLocation)
}

func scoreAmenity(c *models.CandidateListing, p *profile.Profile) float64 {
	score := 0.0

	if p.Amenity.WineImportant {
		if c.WineQuality == nil {
			score += 4
		} else {
			switch *c.WineQuality {
			case models.WineExcellent:
				score += 8
			case models.WineGood:
				score += 6
			case models.WineBasic:
				score += 3
			}
		}
	} else {
		score += 8
	}

	if p.Amenity.CorkagePreferred {
		switch {
		case c.AllowsCorkage == nil:
			score += 3.5
		case *c.AllowsCorkage:
			score += 7
		}
	} else {
		score += 7
	}

	return clamp(score, maxAmenity)
}

func feedback(c *models.CandidateListing, dietary, cuisine, budget, location, amenity float64) ([]string, []string) {
	var reasons, concerns []string

	switch {
	case dietary >= 20:
		reasons = append(reasons, "Excellent vegetarian options available")
	case dietary >= 15:
		reasons = append(reasons, "Good vegetarian selection")
	case dietary < 10:
		concerns = append(concerns, "Limited vegetarian options")
	}

	if cuisine >= 15 {
		reasons = append(reasons, fmt.Sprintf("Serves your preferred %s cuisine", strings.Join(c.CuisineTags, ", ")))
	} else if cuisine < 10 {
		concerns = append(concerns, "Cuisine type doesn't match preferences")
	}

	switch {
	case budget >= 18:
		reasons = append(reasons, "Price range perfectly matches your budget")
	case budget >= 15:
		reasons = append(reasons, "Within budget range")
	case budget < 10:
		concerns = append(concerns, "May be outside your preferred price range")
	}

	switch {
	case location >= 18:
		reasons = append(reasons, "Conveniently located with transit access")
	case location >= 15:
		reasons = append(reasons, "Reasonably accessible location")
	case location < 10:
		concerns = append(concerns, "Location may be inconvenient")
	}

	if amenity >= 13 {
		reasons = append(reasons, "Great wine program with corkage option")
	} else if amenity >= 10 {
		reasons = append(reasons, "Good wine selection")
	}

	return reasons, concerns
}

func explanation(total float64, reasons, concerns []string) string {
	var verdict string
	switch {
	case total >= 85:
		verdict = "This is an excellent match for your preferences!"
	case total >= 70:
		verdict = "This restaurant is a good fit with some minor considerations."
	case total >= 50:
		verdict = "This restaurant partially matches your preferences."
	default:
		verdict = "This restaurant may not be the best fit for your preferences."
	}

	parts := []string{verdict}
	if len(reasons) > 0 {
		parts = append(parts, "Strengths: "+strings.Join(reasons, "; ")+".")
	}
	if len(concerns) > 0 {
		parts = append(parts, "Considerations: "+strings.Join(concerns, "; ")+".")
	}
	return strings.Join(parts, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}

func contains(items []string, target string) bool {
	for _, s := range items {
		if s == target {
			return true
		}
	}
	return false
}
