package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"restaurant-scout/models"
)

var (
	blockPattern = regexp.MustCompile(`(?s)=== RESTAURANT ===(.*?)=== END ===`)
	priceRun     = regexp.MustCompile(`\$+`)
	ratingValue  = regexp.MustCompile(`\d\.\d{1,2}|\d`)
)

// parseDelimitedBlocks handles text bracketed by explicit restaurant markers,
// each block a set of "key: value" lines. A block without a name is discarded.
func parseDelimitedBlocks(text string) []*models.CandidateListing {
	var candidates []*models.CandidateListing

	for _, m := range blockPattern.FindAllStringSubmatch(text, -1) {
		if c := parseBlock(m[1]); c != nil {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func parseBlock(block string) *models.CandidateListing {
	fields := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if value == "" || strings.EqualFold(value, "N/A") {
			continue
		}
		fields[key] = value
	}

	name := fields["name"]
	if name == "" {
		return nil
	}

	c := &models.CandidateListing{Name: name}

	if v := fields["cuisine"]; v != "" {
		c.CuisineTags = splitList(v)
	}
	if v := fields["price"]; v != "" {
		c.PriceTier = priceRun.FindString(v)
	}
	if v := fields["location"]; v != "" {
		c.Address = v
	}
	if v := fields["rating"]; v != "" {
		if r := parseRating(v); r != nil {
			c.Rating = r
		}
	}
	if v := fields["phone"]; v != "" {
		c.Phone = v
	}

	times := fields["times"]
	if times == "" {
		times = fields["available times"]
	}
	if times == "" {
		times = fields["available-times"]
	}
	c.Availability = parseAvailability(times)

	if v := fields["features"]; v != "" {
		applyFeatures(c, splitList(v))
	}

	return c
}

// parseAvailability maps a times value to an ordered slot list. Explicit
// "no availability" phrasing means a confirmed empty list.
func parseAvailability(value string) []string {
	if value == "" {
		return nil
	}
	lower := strings.ToLower(value)
	if strings.Contains(lower, "no times") ||
		strings.Contains(lower, "no availability") ||
		strings.Contains(lower, "not available") {
		return []string{}
	}

	if i, j := strings.Index(value, "["), strings.Index(value, "]"); i >= 0 && j > i {
		value = value[i+1 : j]
	}

	var slots []string
	for _, t := range strings.Split(value, ",") {
		if t = strings.TrimSpace(t); t != "" {
			slots = append(slots, t)
		}
	}
	return slots
}

// applyFeatures maps recognized feature phrases onto amenity fields
func applyFeatures(c *models.CandidateListing, features []string) {
	yes := true
	for _, f := range features {
		lower := strings.ToLower(f)
		switch {
		case strings.Contains(lower, "corkage"):
			c.AllowsCorkage = &yes
		case strings.Contains(lower, "wine"):
			quality := models.WineBasic
			if strings.Contains(lower, "excellent") {
				quality = models.WineExcellent
			} else if strings.Contains(lower, "good") {
				quality = models.WineGood
			}
			c.WineQuality = &quality
		case strings.Contains(lower, "transit"):
			c.TransitAccessible = &yes
		}
	}
}

func splitList(value string) []string {
	if i, j := strings.Index(value, "["), strings.Index(value, "]"); i >= 0 && j > i {
		value = value[i+1 : j]
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseRating(value string) *float64 {
	m := ratingValue.FindString(value)
	if m == "" {
		return nil
	}
	r, err := strconv.ParseFloat(m, 64)
	if err != nil || r < 0 || r > 5 {
		return nil
	}
	return &r
}

// CanonicalBlocks serializes candidates back into the delimited-block format
// the first strategy parses. Normalizing the output again yields the same
// candidate set.
func CanonicalBlocks(candidates []*models.CandidateListing) string {
	var b strings.Builder
	for _, c := range candidates {
		b.WriteString("=== RESTAURANT ===\n")
		fmt.Fprintf(&b, "name: %s\n", c.Name)
		if len(c.CuisineTags) > 0 {
			fmt.Fprintf(&b, "cuisine: %s\n", strings.Join(c.CuisineTags, ", "))
		}
		if c.PriceTier != "" {
			fmt.Fprintf(&b, "price: %s\n", c.PriceTier)
		}
		if c.Address != "" {
			fmt.Fprintf(&b, "location: %s\n", c.Address)
		}
		if c.Rating != nil {
			fmt.Fprintf(&b, "rating: %.1f\n", *c.Rating)
		}
		if c.Phone != "" {
			fmt.Fprintf(&b, "phone: %s\n", c.Phone)
		}
		if len(c.Availability) > 0 {
			fmt.Fprintf(&b, "times: [%s]\n", strings.Join(c.Availability, ", "))
		}
		if features := canonicalFeatures(c); len(features) > 0 {
			fmt.Fprintf(&b, "features: [%s]\n", strings.Join(features, ", "))
		}
		b.WriteString("=== END ===\n")
	}
	return b.String()
}

func canonicalFeatures(c *models.CandidateListing) []string {
	var features []string
	if c.AllowsCorkage != nil && *c.AllowsCorkage {
		features = append(features, "corkage allowed")
	}
	if c.WineQuality != nil {
		features = append(features, *c.WineQuality+" wine list")
	}
	if c.TransitAccessible != nil && *c.TransitAccessible {
		features = append(features, "near transit")
	}
	return features
}
