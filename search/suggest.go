package search

import (
	"strings"

	"github.com/halalsenpai/electricwheels/models"
)

const (
	maxSuggestions = 8
	maxModelHits   = 5
	minQueryLen    = 2
)

// PopularSuggestions is the fixed list shown before the user has typed a
// meaningful query. Order matters for display.
var PopularSuggestions = []models.Suggestion{
	{Text: "Evee C1", Type: "model"},
	{Text: "Vlektra Bolt", Type: "model"},
	{Text: "Lithium battery", Type: "feature"},
	{Text: "Under 200k", Type: "feature"},
	{Text: "Metro", Type: "brand"},
}

// featurePhrases is the static feature vocabulary matched against the
// query. Not derived from the catalog.
var featurePhrases = []string{
	"Lithium battery",
	"Lead acid battery",
	"Under 100k",
	"Under 200k",
	"Over 80km range",
	"Disc brakes",
}

// Suggest returns up to 8 ranked suggestions for a partial query. Queries
// shorter than 2 characters get the popular list. Ranking is fixed group
// order only: brands, then models, then features; plain substring matching,
// no fuzziness.
func Suggest(query string, bikes []models.Bike) []models.Suggestion {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < minQueryLen {
		out := make([]models.Suggestion, len(PopularSuggestions))
		copy(out, PopularSuggestions)
		return out
	}

	q := strings.ToLower(trimmed)
	suggestions := make([]models.Suggestion, 0, maxSuggestions)

	// Brand matches, deduped, with model counts.
	brandCounts := make(map[string]int)
	brandOrder := make([]string, 0)
	for _, b := range bikes {
		if _, seen := brandCounts[b.Brand]; !seen {
			brandOrder = append(brandOrder, b.Brand)
		}
		brandCounts[b.Brand]++
	}
	for _, brand := range brandOrder {
		if strings.Contains(strings.ToLower(brand), q) {
			suggestions = append(suggestions, models.Suggestion{
				Text:  brand,
				Type:  "brand",
				Count: brandCounts[brand],
			})
		}
	}

	// Model matches by name or brand, capped at 5.
	modelHits := 0
	for _, b := range bikes {
		if modelHits >= maxModelHits {
			break
		}
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Brand), q) {
			suggestions = append(suggestions, models.Suggestion{Text: b.Name, Type: "model"})
			modelHits++
		}
	}

	// Static feature phrases.
	for _, phrase := range featurePhrases {
		if strings.Contains(strings.ToLower(phrase), q) {
			suggestions = append(suggestions, models.Suggestion{Text: phrase, Type: "feature"})
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
