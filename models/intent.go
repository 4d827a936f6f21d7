package models

import (
	"time"

	"restaurant-scout/profile"
)

// Request kinds recognized in a query
const (
	KindFind    = "find"
	KindReserve = "reserve"
)

// Meal types recognized in a query
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// Relevance categories computed per query
const (
	CategoryDietary  = "dietary"
	CategoryCuisine  = "cuisine"
	CategoryBudget   = "budget"
	CategoryLocation = "location"
	CategoryTiming   = "timing"
)

// StructuredIntent is the interpreted form of a free-text dining request.
// Category context fields are nil unless the query made that category
// relevant; cuisine context is the exception and is always populated.
type StructuredIntent struct {
	Query     string     `json:"query"`
	PartySize int        `json:"party_size"`
	Date      *time.Time `json:"date,omitempty"`
	Time      string     `json:"time,omitempty"` // e.g. "8pm", empty if absent
	MealType  string     `json:"meal_type"`
	Kind      string     `json:"kind"`

	Relevance map[string]float64 `json:"relevance"`

	DietaryContext  *profile.Dietary  `json:"dietary_context,omitempty"`
	CuisineContext  *profile.Cuisine  `json:"cuisine_context,omitempty"`
	BudgetContext   *profile.Budget   `json:"budget_context,omitempty"`
	LocationContext *profile.Location `json:"location_context,omitempty"`
	TimingContext   *profile.Timing   `json:"timing_context,omitempty"`
}
