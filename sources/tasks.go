package sources

import "fmt"

// TaskDescription builds the extraction task text handed to the agent for a
// platform. Each task asks for pipe-delimited lines so the normalizer's
// field-delimited strategy can parse the result directly.
func TaskDescription(platform, pageURL string) string {
	switch platform {
	case OpenTable:
		return fmt.Sprintf(`Extract restaurant data from OpenTable.

1. Go to %s
2. Wait for restaurant cards to load
3. Look at the first 5-7 restaurant cards on the page
4. For each card extract: name, cuisine type, price ($ symbols), neighborhood

Format each restaurant as:
[Name] | [Cuisine] | [Price] | [Neighborhood]

Example:
Greens Restaurant | Vegetarian | $$$ | Fort Mason

List 5 restaurants this way.`, pageURL)

	case Yelp:
		return fmt.Sprintf(`Get restaurants from Yelp.

1. Go to %s
2. Wait for search results to load
3. For the first 5 results extract: name, categories, price ($ symbols), neighborhood

Format as:
[Name] | [Categories] | [Price] | [Area]

Just list 5 restaurants.`, pageURL)

	case Google:
		return fmt.Sprintf(`Extract restaurant data from Google's local results.

1. Navigate to %s
2. Wait for the local results box to appear
3. For each restaurant extract: name, cuisine type, price level, area

Return as a simple list:
1. [Name] | [Type] | [Price] | [Area]

Just the first 5 restaurants from the local pack.`, pageURL)

	case Resy:
		return fmt.Sprintf(`Get Resy restaurant listings.

1. Go to %s
2. Wait a few seconds for the page to render
3. Extract all restaurant names and info visible on the page

Raw text is fine.`, pageURL)
	}

	return fmt.Sprintf("Go to %s and list the restaurants shown, one per line.", pageURL)
}
