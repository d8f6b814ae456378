// Package coverage classifies assets into the fixed control categories and
// reports how well each category is covered.
package coverage

import (
	"math"
	"strings"

	"github.com/netposture/core/internal/models"
	"github.com/netposture/core/internal/weights"
)

// Evaluate returns one result per catalog category, in catalog order. An
// asset contributes to every category whose keywords appear in its
// normalized name.
func Evaluate(assets []models.Asset) []models.CategoryCoverage {
	results := make([]models.CategoryCoverage, len(catalog))
	for i, c := range catalog {
		results[i] = models.CategoryCoverage{
			ID:                c.ID,
			Label:             c.Label,
			Critical:          c.Critical,
			RecommendedWeight: c.RecommendedWeight,
		}
	}

	for _, asset := range assets {
		normalizedName := weights.Normalize(asset.Name)
		if normalizedName == "" {
			continue
		}

		weight := weights.AssetWeight(asset)

		for i, c := range catalog {
			if !matchesAny(normalizedName, c.Keywords) {
				continue
			}

			coverage := &results[i]
			if weight > coverage.MaxWeight {
				coverage.MaxWeight = weight
				coverage.Normalized = math.Min(1, float64(weight)/10)
			}
			if weight >= c.RecommendedWeight {
				coverage.MeetsRecommended = true
			}
		}
	}

	return results
}

// Missing returns the critical categories nothing contributed to.
func Missing(results []models.CategoryCoverage) []models.CategoryCoverage {
	var missing []models.CategoryCoverage
	for _, r := range results {
		if r.Critical && r.Missing() {
			missing = append(missing, r)
		}
	}
	return missing
}

// MeanNormalized averages the normalized coverage over all results.
func MeanNormalized(results []models.CategoryCoverage) float64 {
	if len(results) == 0 {
		return 0
	}

	var sum float64
	for _, r := range results {
		sum += r.Normalized
	}
	return sum / float64(len(results))
}

func matchesAny(normalized string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}
