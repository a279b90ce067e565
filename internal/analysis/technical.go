package analysis

import (
	"sort"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// Fix-priority bucket thresholds.
const (
	priorityImmediate  = 6
	priorityMediumTerm = 3
)

var statusScores = map[models.CheckStatus]int{
	models.StatusPass:    100,
	models.StatusWarning: 70,
	models.StatusFail:    30,
}

var impactScores = map[string]int{"high": 3, "medium": 2, "low": 1}

// Lower effort ranks higher: cheap fixes first.
var effortScores = map[string]int{"low": 3, "medium": 2, "high": 1}

// Impact/effort table per audit area. Unlisted areas default to
// medium impact, medium effort.
var areaWeights = map[string]struct{ impact, effort string }{
	models.AreaCyrillicSupport:    {"high", "low"},
	models.AreaYandexOptimization: {"high", "medium"},
	models.AreaMobilePerformance:  {"high", "medium"},
	models.AreaPageSpeedRussia:    {"medium", "low"},
	models.AreaSchemaMarkup:       {"medium", "low"},
}

// TechnicalScore averages per-check scores (pass=100, warning=70, fail=30)
// with integer truncation. Entries without a status are skipped; no scored
// entries yields 0.
func TechnicalScore(results map[string]models.CheckResult) int {
	sum := 0
	count := 0
	for _, result := range results {
		score, ok := statusScores[result.Status]
		if !ok {
			continue
		}
		sum += score
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / count
}

// PrioritizeFixes turns failing checks into an ordered remediation list.
// Pass and warning checks never produce a fix. Priority is
// impact × effort-to-score; ties keep encounter order.
func PrioritizeFixes(areas []string, results map[string]models.CheckResult) []models.TechnicalFix {
	fixes := make([]models.TechnicalFix, 0, len(results))

	for _, area := range areas {
		result, ok := results[area]
		if !ok || result.Status != models.StatusFail {
			continue
		}
		fixes = append(fixes, models.TechnicalFix{
			Area:            area,
			Issues:          result.Issues,
			Recommendations: result.Recommendations,
			Priority:        FixPriority(area),
		})
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		return fixes[i].Priority > fixes[j].Priority
	})
	return fixes
}

// FixPriority computes the impact×effort score for an audit area.
func FixPriority(area string) int {
	impact, effort := "medium", "medium"
	if w, ok := areaWeights[area]; ok {
		impact, effort = w.impact, w.effort
	}
	return impactScores[impact] * effortScores[effort]
}

// BucketFixes splits prioritized fixes into the three remediation horizons.
func BucketFixes(fixes []models.TechnicalFix) models.TechnicalRecommendations {
	recs := models.TechnicalRecommendations{
		ImmediateFixes:         []models.TechnicalFix{},
		MediumTermImprovements: []models.TechnicalFix{},
		LongTermOptimizations:  []models.TechnicalFix{},
	}

	for _, fix := range fixes {
		switch {
		case fix.Priority >= priorityImmediate:
			recs.ImmediateFixes = append(recs.ImmediateFixes, fix)
		case fix.Priority >= priorityMediumTerm:
			recs.MediumTermImprovements = append(recs.MediumTermImprovements, fix)
		default:
			recs.LongTermOptimizations = append(recs.LongTermOptimizations, fix)
		}
	}
	return recs
}
