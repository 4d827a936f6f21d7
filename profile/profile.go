package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spice tolerance levels accepted in a profile.
const (
	SpiceMild   = "mild"
	SpiceMedium = "medium"
	SpiceHot    = "hot"
)

// Dietary holds dietary restrictions and tolerances
type Dietary struct {
	IsVegetarian   bool     `yaml:"is_vegetarian" json:"is_vegetarian"`
	Allergies      []string `yaml:"allergies" json:"allergies"`
	SpiceTolerance string   `yaml:"spice_tolerance" json:"spice_tolerance"`
}

// Cuisine holds preferred and avoided cuisine categories
type Cuisine struct {
	Preferred []string `yaml:"preferred" json:"preferred"`
	Avoid     []string `yaml:"avoid" json:"avoid"`
}

// Budget holds per-dish price bounds in dollars
type Budget struct {
	MinPerDish float64 `yaml:"min_per_dish" json:"min_per_dish"`
	MaxPerDish float64 `yaml:"max_per_dish" json:"max_per_dish"`
}

// Location holds the home base and travel constraints
type Location struct {
	HomeCity         string  `yaml:"home_city" json:"home_city"`
	MaxDistanceMiles float64 `yaml:"max_distance_miles" json:"max_distance_miles"`
	RequiresTransit  bool    `yaml:"requires_transit" json:"requires_transit"`
}

// Amenity holds restaurant feature preferences
type Amenity struct {
	WineImportant    bool `yaml:"wine_important" json:"wine_important"`
	CorkagePreferred bool `yaml:"corkage_preferred" json:"corkage_preferred"`
}

// Timing holds availability preferences used when the query touches scheduling
type Timing struct {
	PreferredMealTimes map[string]string `yaml:"preferred_meal_times" json:"preferred_meal_times"`
	PreferredDays      []string          `yaml:"preferred_days" json:"preferred_days"`
}

// Profile is the complete personal dining preference set. It is loaded once
// per session and never mutated by the pipeline.
type Profile struct {
	Dietary          Dietary  `yaml:"dietary" json:"dietary"`
	Cuisine          Cuisine  `yaml:"cuisine" json:"cuisine"`
	Budget           Budget   `yaml:"budget" json:"budget"`
	Location         Location `yaml:"location" json:"location"`
	Amenity          Amenity  `yaml:"amenity" json:"amenity"`
	Timing           Timing   `yaml:"timing" json:"timing"`
	TypicalPartySize int      `yaml:"typical_party_size" json:"typical_party_size"`
}

// Default returns the built-in profile used when no profile file is configured
func Default() *Profile {
	return &Profile{
		Dietary: Dietary{
			IsVegetarian:   true,
			Allergies:      []string{"peanut"},
			SpiceTolerance: SpiceMild,
		},
		Cuisine: Cuisine{
			Preferred: []string{"asian", "mexican"},
		},
		Budget: Budget{
			MinPerDish: 10,
			MaxPerDish: 30,
		},
		Location: Location{
			HomeCity:         "San Francisco",
			MaxDistanceMiles: 3,
			RequiresTransit:  true,
		},
		Amenity: Amenity{
			WineImportant:    true,
			CorkagePreferred: true,
		},
		Timing: Timing{
			PreferredMealTimes: map[string]string{
				"breakfast": "9:00-11:00",
				"lunch":     "12:00-14:00",
				"dinner":    "18:00-21:00",
			},
			PreferredDays: []string{"tuesday", "wednesday", "thursday", "friday", "saturday"},
		},
		TypicalPartySize: 2,
	}
}

// Load reads a profile from a YAML file and validates it
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadOrDefault behaves like Load but falls back to the built-in default
// profile when the file does not exist. A file that exists but fails to parse
// or validate is still an error.
func LoadOrDefault(path string) (*Profile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks internal consistency. A broken profile is a configuration
// error and fatal at session start.
func (p *Profile) Validate() error {
	if p.Budget.MinPerDish > p.Budget.MaxPerDish {
		return fmt.Errorf("invalid budget: min per dish %.2f exceeds max %.2f",
			p.Budget.MinPerDish, p.Budget.MaxPerDish)
	}
	switch p.Dietary.SpiceTolerance {
	case SpiceMild, SpiceMedium, SpiceHot:
	default:
		return fmt.Errorf("invalid spice tolerance %q", p.Dietary.SpiceTolerance)
	}
	if p.Location.MaxDistanceMiles < 0 {
		return fmt.Errorf("invalid max distance: %.1f", p.Location.MaxDistanceMiles)
	}
	if p.TypicalPartySize < 1 {
		p.TypicalPartySize = 2
	}
	return nil
}
