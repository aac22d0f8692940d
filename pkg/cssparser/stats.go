package cssparser

import (
	"github.com/Hamish-Leahy/Prism-sub000/models"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/analytics"
)

// computeStats aggregates counts and histograms over the unconditional rules
// plus every media-nested rule. Keyframe steps are animation interior, not
// cascade rules, and stay out of the histograms.
func computeStats(sheet *models.Stylesheet) models.StylesheetStats {
	stats := models.StylesheetStats{
		PropertyUsage:      map[string]int{},
		SelectorTypes:      map[string]int{},
		SpecificityBuckets: map[string]int{"low": 0, "medium": 0, "high": 0},
	}

	tally := func(rules []models.Rule) {
		for _, rule := range rules {
			stats.RuleCount++
			stats.SelectorCount += len(rule.Selectors)
			stats.DeclarationCount += len(rule.Declarations)

			for _, sel := range rule.Selectors {
				stats.SelectorTypes[sel.Type]++
			}
			for _, decl := range rule.Declarations {
				stats.PropertyUsage[decl.Property]++
			}

			switch weight := rule.Specificity.Weight(); {
			case weight < 10:
				stats.SpecificityBuckets["low"]++
			case weight < 100:
				stats.SpecificityBuckets["medium"]++
			default:
				stats.SpecificityBuckets["high"]++
			}
		}
	}

	tally(sheet.Rules)
	for _, mq := range sheet.MediaQueries {
		tally(mq.Rules)
	}

	return stats
}

// TopProperties reports the n most used properties of a stylesheet as
// "property:count" strings, descending.
func TopProperties(sheet *models.Stylesheet, n int) []string {
	return analytics.TopN(sheet.Stats.PropertyUsage, n)
}
