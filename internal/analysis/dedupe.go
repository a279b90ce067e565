package analysis

import (
	"strings"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// Deduplicate merges raw keyword candidates from multiple sources into a
// unique list. Identity is the lower-cased term; the first occurrence wins
// and keeps its original casing. Records without a term carry no signal and
// are dropped. Output preserves first-appearance order, which downstream
// stable sorts rely on for tie-breaking.
func Deduplicate(keywords []models.KeywordRecord) []models.KeywordRecord {
	seen := make(map[string]struct{}, len(keywords))
	unique := make([]models.KeywordRecord, 0, len(keywords))

	for _, kw := range keywords {
		if kw.Term == "" {
			continue
		}
		key := strings.ToLower(kw.Term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, kw)
	}

	return unique
}

// FilterThresholds keeps only keywords worth pursuing: enough volume and
// not too hard to rank for. Order is preserved.
func FilterThresholds(keywords []models.KeywordRecord, volumeMin, difficultyMax int) []models.KeywordRecord {
	filtered := make([]models.KeywordRecord, 0, len(keywords))
	for _, kw := range keywords {
		if kw.Volume >= volumeMin && kw.Difficulty <= difficultyMax {
			filtered = append(filtered, kw)
		}
	}
	return filtered
}
