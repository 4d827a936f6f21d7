package models

import "time"

// Price tiers as shown on listing platforms
const (
	PriceCheap    = "$"
	PriceModerate = "$$"
	PriceUpscale  = "$$$"
	PriceLuxury   = "$$$$"
)

// Wine program quality levels
const (
	WineBasic     = "basic"
	WineGood      = "good"
	WineExcellent = "excellent"
)

// VegetarianSignal captures what the source text revealed about vegetarian
// suitability. HasMenu is nil when the source said nothing either way.
type VegetarianSignal struct {
	HasMenu      *bool    `json:"has_menu,omitempty"`
	OptionCount  int      `json:"option_count"`
	MenuKeywords []string `json:"menu_keywords,omitempty"`
}

// CandidateListing is one normalized restaurant record extracted from a
// source's raw text. Immutable once produced by the normalizer.
type CandidateListing struct {
	Name              string           `json:"name"`
	CuisineTags       []string         `json:"cuisine_tags"`
	PriceTier         string           `json:"price_tier"`
	Address           string           `json:"address"`
	Phone             string           `json:"phone,omitempty"`
	DistanceMiles     *float64         `json:"distance_miles,omitempty"`
	Rating            *float64         `json:"rating,omitempty"`
	Availability      []string         `json:"availability,omitempty"` // empty = unknown/none
	Vegetarian        VegetarianSignal `json:"vegetarian"`
	TransitAccessible *bool            `json:"transit_accessible,omitempty"`
	WineQuality       *string          `json:"wine_quality,omitempty"`
	AllowsCorkage     *bool            `json:"allows_corkage,omitempty"`
	Summary           string           `json:"summary,omitempty"` // free text, e.g. review notes
}

// ScoreBreakdown is the 5-axis evaluation of one candidate against a profile.
// Sub-score maxima: dietary 25, cuisine 20, budget 20, location 20, amenity 15.
type ScoreBreakdown struct {
	Dietary      float64  `json:"dietary"`
	Cuisine      float64  `json:"cuisine"`
	Budget       float64  `json:"budget"`
	Location     float64  `json:"location"`
	Amenity      float64  `json:"amenity"`
	Total        float64  `json:"total"`
	Explanation  string   `json:"explanation"`
	MatchReasons []string `json:"match_reasons,omitempty"`
	Concerns     []string `json:"concerns,omitempty"`
}

// RankedEntry pairs a candidate with its score and the source it came from
type RankedEntry struct {
	Candidate *CandidateListing `json:"candidate"`
	Score     *ScoreBreakdown   `json:"score"`
	Source    string            `json:"source"`
}

// RankedResult is the ordered pipeline output, best match first. Entries with
// equal totals keep their discovery order.
type RankedResult struct {
	RequestID   string         `json:"request_id"`
	Query       string         `json:"query"`
	GeneratedAt time.Time      `json:"generated_at"`
	Entries     []*RankedEntry `json:"entries"`
}
