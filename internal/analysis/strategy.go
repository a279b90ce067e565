package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// Slice limits used when composing the recommendation bundle.
const (
	topNewKeywords      = 10
	topQuickWins        = 5
	topContentGaps      = 5
	topImmediateFixes   = 3
	opportunityExamples = 5

	underutilizedMaxDifficulty = 50
)

// ComposeStrategyUpdate merges the scored keywords, gap analysis and audit
// into one recommendation bundle. Pure aggregation: nothing is recomputed,
// only sliced and bucketed. The timestamp is taken at generation time and
// feeds no computation.
func ComposeStrategyUpdate(newKeywords []models.KeywordRecord, gaps models.GapAnalysisResult, audit models.AuditReport) models.StrategyUpdate {
	return models.StrategyUpdate{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Summary: models.StrategySummary{
			NewKeywordsFound:      len(newKeywords),
			KeywordGapsIdentified: len(gaps.KeywordGaps),
			QuickWinsAvailable:    len(gaps.OpportunityKeywords),
			TechnicalScore:        audit.OverallScore,
			PriorityFixes:         len(audit.PriorityFixes),
		},
		KeywordRecommendations: models.KeywordRecommendations{
			HighPriorityAdditions: headKeywords(newKeywords, topNewKeywords),
			QuickWinOpportunities: headKeywords(gaps.OpportunityKeywords, topQuickWins),
			ContentGapKeywords:    headStrings(gaps.ContentGaps, topContentGaps),
		},
		TechnicalRecommendations: BucketFixes(audit.PriorityFixes),
		CompetitiveInsights: models.CompetitiveInsights{
			CompetitorStrengths: gaps.CompetitorStrengths,
			MarketOpportunities: marketOpportunities(gaps),
		},
		ImplementationTimeline: buildTimeline(newKeywords, gaps, audit),
	}
}

// marketOpportunities finds competitors sitting on high-value keywords
// that are still cheap to rank for (difficulty < 50).
func marketOpportunities(gaps models.GapAnalysisResult) []models.MarketOpportunity {
	opportunities := []models.MarketOpportunity{}

	domains := make([]string, 0, len(gaps.CompetitorStrengths))
	for domain := range gaps.CompetitorStrengths {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		strength := gaps.CompetitorStrengths[domain]
		underutilized := []models.KeywordRecord{}
		for _, kw := range strength.HighValueKeywords {
			if kw.Difficulty < underutilizedMaxDifficulty {
				underutilized = append(underutilized, kw)
			}
		}
		if len(underutilized) == 0 {
			continue
		}

		opportunities = append(opportunities, models.MarketOpportunity{
			Type:            "competitor_weakness",
			Competitor:      domain,
			Opportunity:     fmt.Sprintf("Target %d underutilized high-value keywords", len(underutilized)),
			Keywords:        headKeywords(underutilized, opportunityExamples),
			EstimatedImpact: "high",
		})
	}

	return opportunities
}

// buildTimeline schedules the recommendations into four coarse buckets:
// critical fixes first, quick wins next, new content after, the remaining
// fixes in quarter two.
func buildTimeline(newKeywords []models.KeywordRecord, gaps models.GapAnalysisResult, audit models.AuditReport) models.ImplementationTimeline {
	timeline := models.ImplementationTimeline{
		Week1:     []string{},
		Week2To4:  []string{},
		Month2To3: []string{},
		Quarter2:  []string{},
	}

	for _, fix := range headFixes(audit.PriorityFixes, topImmediateFixes) {
		issue := "General improvements"
		if len(fix.Issues) > 0 {
			issue = fix.Issues[0]
		}
		timeline.Week1 = append(timeline.Week1, fmt.Sprintf("Fix %s: %s", fix.Area, issue))
	}

	for _, kw := range headKeywords(gaps.OpportunityKeywords, topQuickWins) {
		timeline.Week2To4 = append(timeline.Week2To4, "Target keyword: "+kw.Term)
	}

	for _, kw := range headKeywords(newKeywords, topNewKeywords) {
		timeline.Month2To3 = append(timeline.Month2To3, "Develop content for: "+kw.Term)
	}

	if len(audit.PriorityFixes) > topImmediateFixes {
		for _, fix := range audit.PriorityFixes[topImmediateFixes:] {
			timeline.Quarter2 = append(timeline.Quarter2, fmt.Sprintf("Implement %s improvements", fix.Area))
		}
	}

	return timeline
}

func headKeywords(keywords []models.KeywordRecord, n int) []models.KeywordRecord {
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	out := make([]models.KeywordRecord, len(keywords))
	copy(out, keywords)
	return out
}

func headStrings(values []string, n int) []string {
	if len(values) > n {
		values = values[:n]
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func headFixes(fixes []models.TechnicalFix, n int) []models.TechnicalFix {
	if len(fixes) > n {
		fixes = fixes[:n]
	}
	return fixes
}
