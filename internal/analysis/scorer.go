package analysis

import (
	"math"
	"sort"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// Weights of the opportunity formula. They must sum to 1.0; the score is
// only meaningful for relative ranking.
const (
	weightVolume     = 0.30
	weightDifficulty = 0.30
	weightIntent     = 0.25
	weightRelevance  = 0.15

	volumeCeiling = 100000.0
)

var intentScores = map[models.Intent]float64{
	models.IntentTransactional: 1.0,
	models.IntentCommercial:    0.8,
	models.IntentInformational: 0.6,
	models.IntentNavigational:  0.4,
}

// OpportunityScore rates a keyword in [0,1]. Pure function: the same
// record always yields the identical value.
func OpportunityScore(kw models.KeywordRecord) float64 {
	volumeScore := math.Min(float64(kw.Volume)/volumeCeiling, 1.0)
	difficultyScore := float64(100-kw.Difficulty) / 100

	intentScore, ok := intentScores[kw.Intent]
	if !ok {
		intentScore = 0.5
	}

	return weightVolume*volumeScore +
		weightDifficulty*difficultyScore +
		weightIntent*intentScore +
		weightRelevance*kw.LocalRelevance
}

// RankByOpportunity sorts keywords by descending opportunity score.
// The sort is stable: ties keep their input order, so results are
// reproducible for identical input.
func RankByOpportunity(keywords []models.KeywordRecord) {
	sort.SliceStable(keywords, func(i, j int) bool {
		return OpportunityScore(keywords[i]) > OpportunityScore(keywords[j])
	})
}
