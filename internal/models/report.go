package models

import "time"

// StrategySummary holds the headline counts of a strategy update.
type StrategySummary struct {
	NewKeywordsFound      int `json:"new_keywords_found"`
	KeywordGapsIdentified int `json:"keyword_gaps_identified"`
	QuickWinsAvailable    int `json:"quick_wins_available"`
	TechnicalScore        int `json:"technical_score"`
	PriorityFixes         int `json:"priority_fixes"`
}

// KeywordRecommendations buckets keyword suggestions by how they were found.
type KeywordRecommendations struct {
	HighPriorityAdditions []KeywordRecord `json:"high_priority_additions"`
	QuickWinOpportunities []KeywordRecord `json:"quick_win_opportunities"`
	ContentGapKeywords    []string        `json:"content_gap_keywords"`
}

// TechnicalRecommendations buckets fixes by priority threshold.
type TechnicalRecommendations struct {
	ImmediateFixes         []TechnicalFix `json:"immediate_fixes"`
	MediumTermImprovements []TechnicalFix `json:"medium_term_improvements"`
	LongTermOptimizations  []TechnicalFix `json:"long_term_optimizations"`
}

// MarketOpportunity points at a competitor weakness worth targeting.
type MarketOpportunity struct {
	Type            string          `json:"type"`
	Competitor      string          `json:"competitor"`
	Opportunity     string          `json:"opportunity"`
	Keywords        []KeywordRecord `json:"keywords"`
	EstimatedImpact string          `json:"estimated_impact"`
}

// CompetitiveInsights bundles competitor strengths with derived opportunities.
type CompetitiveInsights struct {
	CompetitorStrengths map[string]CompetitorStrength `json:"competitor_strengths"`
	MarketOpportunities []MarketOpportunity           `json:"market_opportunities"`
}

// ImplementationTimeline schedules recommendations into four coarse buckets.
type ImplementationTimeline struct {
	Week1     []string `json:"week_1"`
	Week2To4  []string `json:"week_2-4"`
	Month2To3 []string `json:"month_2-3"`
	Quarter2  []string `json:"quarter_2"`
}

// StrategyUpdate is the immutable recommendation bundle produced at the end
// of a pipeline run. The timestamp is bookkeeping only and feeds no
// computation.
type StrategyUpdate struct {
	ID                       string                   `json:"id"`
	Timestamp                time.Time                `json:"timestamp"`
	Summary                  StrategySummary          `json:"summary"`
	KeywordRecommendations   KeywordRecommendations   `json:"keyword_recommendations"`
	TechnicalRecommendations TechnicalRecommendations `json:"technical_recommendations"`
	CompetitiveInsights      CompetitiveInsights      `json:"competitive_insights"`
	ImplementationTimeline   ImplementationTimeline   `json:"implementation_timeline"`
}

// Strategy is the parsed content of the keyword-strategy document.
type Strategy struct {
	Keywords      []KeywordRecord            `json:"keywords"`
	Clusters      map[string][]KeywordRecord `json:"clusters"`
	LastUpdated   time.Time                  `json:"last_updated"`
	TotalKeywords int                        `json:"total_keywords"`
}
