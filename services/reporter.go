package services

import (
	"fmt"
	"strings"

	"restaurant-scout/models"
)

// PrintRankedReport formats and prints the ranked recommendations to terminal
func PrintRankedReport(result *models.RankedResult) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("RESTAURANT RECOMMENDATIONS ", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n REQUEST\n%s\n", thin)
	fmt.Printf("  Query      : %s\n", result.Query)
	fmt.Printf("  Request ID : %s\n", result.RequestID)
	fmt.Printf("  Generated  : %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Candidates : %d\n", len(result.Entries))

	for i, e := range result.Entries {
		fmt.Printf("\n %d. %s\n%s\n", i+1, truncate(e.Candidate.Name, 50), thin)
		if len(e.Candidate.CuisineTags) > 0 {
			fmt.Printf("  Cuisine  : %s\n", strings.Join(e.Candidate.CuisineTags, ", "))
		}
		if e.Candidate.PriceTier != "" {
			fmt.Printf("  Price    : %s\n", e.Candidate.PriceTier)
		}
		if e.Candidate.Address != "" {
			fmt.Printf("  Location : %s\n", e.Candidate.Address)
		}
		if e.Candidate.Rating != nil {
			fmt.Printf("  Rating   : %.1f\n", *e.Candidate.Rating)
		}
		if len(e.Candidate.Availability) > 0 {
			fmt.Printf("  Times    : %s\n", strings.Join(e.Candidate.Availability, ", "))
		}
		fmt.Printf("  Source   : %s\n", e.Source)
		fmt.Printf("  Score    : %.1f/100  (diet %.1f | cuisine %.1f | budget %.1f | location %.1f | amenity %.1f)\n",
			e.Score.Total, e.Score.Dietary, e.Score.Cuisine, e.Score.Budget, e.Score.Location, e.Score.Amenity)
		fmt.Printf("  Verdict  : %s\n", e.Score.Explanation)
		for _, r := range e.Score.MatchReasons {
			fmt.Printf("    + %s\n", r)
		}
		for _, c := range e.Score.Concerns {
			fmt.Printf("    - %s\n", c)
		}
	}

	fmt.Printf("\n%s\n\n", border)
}

func center(s string, width int) string {
	// Account for possible emoji width
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
