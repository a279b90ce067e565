package models

// CompetitorRecord holds the profile of one competing domain. It is
// populated once while parsing the competitive-analysis document and
// read-only afterwards.
type CompetitorRecord struct {
	Domain              string          `json:"domain"`
	OrganicKeywordCount int             `json:"organic_keywords"`
	OrganicTraffic      int             `json:"organic_traffic"`
	BacklinkCount       int             `json:"backlinks"`
	DomainAuthority     int             `json:"domain_authority"`
	TopKeywords         []KeywordRecord `json:"top_keywords"`
	ContentGaps         []string        `json:"content_gaps"`
}

// CompetitorStrength summarizes one competitor inside a gap analysis.
type CompetitorStrength struct {
	TotalKeywords     int             `json:"total_keywords"`
	HighValueKeywords []KeywordRecord `json:"high_value_keywords"`
	RankingStrengths  []string        `json:"ranking_strengths"`
}

// GapAnalysisResult is the outcome of one gap-analysis run. It is
// recomputed per run and never persisted as mutable state.
type GapAnalysisResult struct {
	KeywordGaps         []KeywordRecord               `json:"keyword_gaps"`
	ContentGaps         []string                      `json:"content_gaps"`
	OpportunityKeywords []KeywordRecord               `json:"opportunity_keywords"`
	CompetitorStrengths map[string]CompetitorStrength `json:"competitor_strengths"`
}
