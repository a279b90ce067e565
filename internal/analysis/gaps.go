package analysis

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/grabgifts/seo-analyst/internal/models"
	"github.com/grabgifts/seo-analyst/internal/research"
)

// Quick-win thresholds, applied to the combined gap list.
const (
	quickWinMinVolume     = 1000
	quickWinMaxDifficulty = 40
	quickWinLimit         = 20

	highValueMinVolume = 10000
)

type competitorFetch struct {
	domain   string
	keywords []models.KeywordRecord
	err      error
}

// AnalyzeGaps compares our keyword set against each competitor's keywords.
// Membership is case-sensitive on the raw term: normalizing ourTerms is the
// caller's job. Competitor fetches run concurrently; a failure for one
// competitor is logged and its strengths entry omitted, without touching
// the others' results.
//
// The combined gap list intentionally keeps duplicates across competitors,
// so each competitor's contribution stays visible in the strengths map.
func AnalyzeGaps(ctx context.Context, ourTerms map[string]struct{}, competitorDomains []string, provider research.KeywordProvider) models.GapAnalysisResult {
	result := models.GapAnalysisResult{
		KeywordGaps:         []models.KeywordRecord{},
		ContentGaps:         []string{},
		OpportunityKeywords: []models.KeywordRecord{},
		CompetitorStrengths: make(map[string]models.CompetitorStrength),
	}

	fetches := make([]competitorFetch, len(competitorDomains))

	var wg sync.WaitGroup
	for i, domain := range competitorDomains {
		wg.Add(1)
		go func(i int, domain string) {
			defer wg.Done()
			keywords, err := provider.CompetitorKeywords(ctx, domain)
			fetches[i] = competitorFetch{domain: domain, keywords: keywords, err: err}
		}(i, domain)
	}
	wg.Wait()

	// Combine in input order so the result is deterministic.
	for _, fetch := range fetches {
		if fetch.err != nil {
			log.Printf("gap analysis: skipping %s: %v", fetch.domain, fetch.err)
			continue
		}

		highValue := []models.KeywordRecord{}
		for _, kw := range fetch.keywords {
			if _, ours := ourTerms[kw.Term]; !ours {
				result.KeywordGaps = append(result.KeywordGaps, kw)
			}
			if kw.Volume > highValueMinVolume {
				highValue = append(highValue, kw)
			}
		}

		result.CompetitorStrengths[fetch.domain] = models.CompetitorStrength{
			TotalKeywords:     len(fetch.keywords),
			HighValueKeywords: highValue,
			RankingStrengths:  rankingStrengths(fetch.keywords),
		}
	}

	result.OpportunityKeywords = QuickWins(result.KeywordGaps)

	return result
}

// QuickWins selects gap keywords we can realistically rank for soon:
// decent volume, low difficulty, buying-adjacent intent. Sorted by
// opportunity score, capped at the top 20.
func QuickWins(gaps []models.KeywordRecord) []models.KeywordRecord {
	wins := make([]models.KeywordRecord, 0, len(gaps))

	for _, kw := range gaps {
		if kw.Volume > quickWinMinVolume &&
			kw.Difficulty < quickWinMaxDifficulty &&
			(kw.Intent == models.IntentCommercial || kw.Intent == models.IntentTransactional) {
			wins = append(wins, kw)
		}
	}

	RankByOpportunity(wins)

	if len(wins) > quickWinLimit {
		wins = wins[:quickWinLimit]
	}
	return wins
}

// rankingStrengths names the competitor's strongest terms: the top three
// by volume.
func rankingStrengths(keywords []models.KeywordRecord) []string {
	sorted := make([]models.KeywordRecord, len(keywords))
	copy(sorted, keywords)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Volume > sorted[j].Volume
	})

	limit := 3
	if len(sorted) < limit {
		limit = len(sorted)
	}

	strengths := make([]string, 0, limit)
	for _, kw := range sorted[:limit] {
		strengths = append(strengths, kw.Term)
	}
	return strengths
}
