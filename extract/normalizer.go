package extract

import (
	"strings"

	"restaurant-scout/models"
	"restaurant-scout/profile"
	"restaurant-scout/utils"
)

const (
	maxCandidates = 10
	maxNameLength = 100
)

// neighborhoodDistances lists known San Francisco neighborhoods with
// approximate miles from the Nob Hill area, used when a source gives no
// distance. Ordered so that an address naming two areas resolves the same
// way every run.
var neighborhoodDistances = []struct {
	name  string
	miles float64
}{
	{"nob hill", 0.5},
	{"tenderloin", 0.3},
	{"union square", 0.8},
	{"chinatown", 0.6},
	{"mission", 2.5},
	{"castro", 2.0},
	{"hayes valley", 1.5},
	{"soma", 1.5},
	{"financial district", 1.2},
	{"marina", 1.8},
	{"fort mason", 1.7},
}

type strategyFunc func(text string) []*models.CandidateListing

// Normalizer converts raw extraction-agent text into clean candidate listings.
// Strategies are tried in order; the first one yielding a valid candidate is
// used exclusively.
type Normalizer struct {
	logger     *utils.Logger
	strategies []struct {
		name string
		fn   strategyFunc
	}
}

// NewNormalizer creates a Normalizer with the standard strategy chain
func NewNormalizer(logger *utils.Logger) *Normalizer {
	n := &Normalizer{logger: logger}
	n.strategies = []struct {
		name string
		fn   strategyFunc
	}{
		{"delimited-blocks", parseDelimitedBlocks},
		{"delimited-lines", parseDelimitedLines},
		{"freeform", parseFreeform},
	}
	return n
}

// Normalize parses raw text into candidate listings, deduplicates them and
// backfills missing fields from the intent's category context. Deterministic
// for identical input text.
func (n *Normalizer) Normalize(raw string, intent *models.StructuredIntent, p *profile.Profile) []*models.CandidateListing {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var candidates []*models.CandidateListing
	for _, s := range n.strategies {
		candidates = s.fn(raw)
		if len(candidates) > 0 {
			n.logger.Debug("Strategy %q yielded %d candidates", s.name, len(candidates))
			break
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	return n.postProcess(candidates, intent, p)
}

// postProcess dedupes by case-insensitive name (first occurrence wins), drops
// empty or overlong names, caps the slice, and backfills context defaults.
// Ratings and availability are never backfilled.
func (n *Normalizer) postProcess(candidates []*models.CandidateListing, intent *models.StructuredIntent, p *profile.Profile) []*models.CandidateListing {
	seen := make(map[string]bool)
	var cleaned []*models.CandidateListing

	for _, c := range candidates {
		name := strings.TrimSpace(c.Name)
		if name == "" || len(name) > maxNameLength {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			n.logger.Debug("Skipping duplicate: %s", name)
			continue
		}
		seen[key] = true
		c.Name = name

		n.backfill(c, intent, p)
		cleaned = append(cleaned, c)
		if len(cleaned) >= maxCandidates {
			break
		}
	}

	return cleaned
}

func (n *Normalizer) backfill(c *models.CandidateListing, intent *models.StructuredIntent, p *profile.Profile) {
	if len(c.CuisineTags) == 0 && intent.CuisineContext != nil && len(intent.CuisineContext.Preferred) > 0 {
		c.CuisineTags = []string{titleCase(intent.CuisineContext.Preferred[0])}
	}

	if c.Address == "" {
		if intent.LocationContext != nil {
			c.Address = intent.LocationContext.HomeCity
		} else if p != nil {
			c.Address = p.Location.HomeCity
		}
	}

	if c.PriceTier == "" {
		c.PriceTier = defaultPriceTier(intent)
	}

	if c.DistanceMiles == nil {
		addr := strings.ToLower(c.Address)
		for _, hood := range neighborhoodDistances {
			if strings.Contains(addr, hood.name) {
				d := hood.miles
				c.DistanceMiles = &d
				break
			}
		}
	}

	deriveVegetarianSignal(c)
}

// defaultPriceTier picks the tier implied by the budget context, or the
// moderate tier when the query said nothing about money.
func defaultPriceTier(intent *models.StructuredIntent) string {
	if intent.BudgetContext == nil {
		return models.PriceModerate
	}
	mid := (intent.BudgetContext.MinPerDish + intent.BudgetContext.MaxPerDish) / 2
	switch {
	case mid < 22:
		return models.PriceCheap
	case mid < 40:
		return models.PriceModerate
	case mid < 65:
		return models.PriceUpscale
	default:
		return models.PriceLuxury
	}
}

// deriveVegetarianSignal fills the vegetarian signal from text the source
// actually produced (tags, name, summary); nothing is assumed beyond it.
func deriveVegetarianSignal(c *models.CandidateListing) {
	if c.Vegetarian.HasMenu != nil {
		return
	}
	combined := strings.ToLower(c.Name + " " + strings.Join(c.CuisineTags, " ") + " " + c.Summary)

	yes := true
	switch {
	case strings.Contains(combined, "vegan"), strings.Contains(combined, "plant-based"):
		c.Vegetarian.HasMenu = &yes
		if c.Vegetarian.OptionCount == 0 {
			c.Vegetarian.OptionCount = 8
		}
	case strings.Contains(combined, "vegetarian"):
		c.Vegetarian.HasMenu = &yes
		if c.Vegetarian.OptionCount == 0 {
			c.Vegetarian.OptionCount = 5
		}
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
