package analysis

import (
	"fmt"
	"testing"

	"github.com/grabgifts/seo-analyst/internal/models"
)

func sampleAudit() models.AuditReport {
	return models.AuditReport{
		Domain:       "grabgifts.ru",
		OverallScore: 66,
		Results: map[string]models.CheckResult{
			models.AreaCyrillicSupport: {Status: models.StatusFail, Issues: []string{"missing charset declaration"}},
		},
		PriorityFixes: []models.TechnicalFix{
			{Area: models.AreaCyrillicSupport, Issues: []string{"missing charset declaration"}, Priority: 9},
			{Area: models.AreaYandexOptimization, Issues: []string{"no Metrica counter"}, Priority: 6},
			{Area: models.AreaSchemaMarkup, Priority: 6},
			{Area: models.AreaPageSpeedRussia, Issues: []string{"heavy assets"}, Priority: 6},
		},
	}
}

func TestComposeStrategyUpdate_Summary(t *testing.T) {
	newKeywords := []models.KeywordRecord{
		kw("тапалки", 15000, 35, models.IntentCommercial, 1),
		kw("телеграм игры", 12000, 30, models.IntentCommercial, 1),
	}
	gaps := models.GapAnalysisResult{
		KeywordGaps:         []models.KeywordRecord{kw("a", 1, 1, models.IntentInformational, 1)},
		OpportunityKeywords: []models.KeywordRecord{kw("b", 2000, 20, models.IntentCommercial, 1)},
	}

	update := ComposeStrategyUpdate(newKeywords, gaps, sampleAudit())

	if update.ID == "" {
		t.Error("update must carry an ID")
	}
	if update.Timestamp.IsZero() {
		t.Error("update must carry a timestamp")
	}
	s := update.Summary
	if s.NewKeywordsFound != 2 || s.KeywordGapsIdentified != 1 || s.QuickWinsAvailable != 1 {
		t.Errorf("summary counts = %+v", s)
	}
	if s.TechnicalScore != 66 || s.PriorityFixes != 4 {
		t.Errorf("summary audit fields = %+v", s)
	}
}

func TestComposeStrategyUpdate_SlicesCapped(t *testing.T) {
	newKeywords := make([]models.KeywordRecord, 0, 15)
	for i := 0; i < 15; i++ {
		newKeywords = append(newKeywords, kw(fmt.Sprintf("new%d", i), 2000, 20, models.IntentCommercial, 1))
	}
	wins := make([]models.KeywordRecord, 0, 8)
	for i := 0; i < 8; i++ {
		wins = append(wins, kw(fmt.Sprintf("win%d", i), 2000, 20, models.IntentCommercial, 1))
	}
	gaps := models.GapAnalysisResult{
		OpportunityKeywords: wins,
		ContentGaps:         []string{"g1", "g2", "g3", "g4", "g5", "g6", "g7"},
	}

	update := ComposeStrategyUpdate(newKeywords, gaps, sampleAudit())

	recs := update.KeywordRecommendations
	if len(recs.HighPriorityAdditions) != 10 {
		t.Errorf("high priority additions = %d, want 10", len(recs.HighPriorityAdditions))
	}
	if len(recs.QuickWinOpportunities) != 5 {
		t.Errorf("quick win opportunities = %d, want 5", len(recs.QuickWinOpportunities))
	}
	if len(recs.ContentGapKeywords) != 5 {
		t.Errorf("content gap keywords = %d, want 5", len(recs.ContentGapKeywords))
	}
}

func TestMarketOpportunities(t *testing.T) {
	gaps := models.GapAnalysisResult{
		CompetitorStrengths: map[string]models.CompetitorStrength{
			"easy.io": {
				HighValueKeywords: []models.KeywordRecord{
					kw("cheap", 20000, 30, models.IntentCommercial, 1),
					kw("pricey", 20000, 50, models.IntentCommercial, 1), // difficulty not < 50
				},
			},
			"fortress.io": {
				HighValueKeywords: []models.KeywordRecord{
					kw("locked", 50000, 90, models.IntentCommercial, 1),
				},
			},
		},
	}

	opportunities := marketOpportunities(gaps)

	if len(opportunities) != 1 {
		t.Fatalf("opportunities = %d, want 1 (fortress.io has no cheap keywords)", len(opportunities))
	}
	op := opportunities[0]
	if op.Competitor != "easy.io" || op.Type != "competitor_weakness" {
		t.Errorf("opportunity = %+v", op)
	}
	if op.Opportunity != "Target 1 underutilized high-value keywords" {
		t.Errorf("opportunity text = %q", op.Opportunity)
	}
	if len(op.Keywords) != 1 || op.Keywords[0].Term != "cheap" {
		t.Errorf("opportunity keywords = %v", op.Keywords)
	}
}

func TestBuildTimeline(t *testing.T) {
	newKeywords := []models.KeywordRecord{kw("тапалки", 15000, 35, models.IntentCommercial, 1)}
	gaps := models.GapAnalysisResult{
		OpportunityKeywords: []models.KeywordRecord{kw("телеграм игры", 12000, 30, models.IntentCommercial, 1)},
	}

	timeline := buildTimeline(newKeywords, gaps, sampleAudit())

	if len(timeline.Week1) != 3 {
		t.Fatalf("week_1 = %d entries, want top 3 fixes", len(timeline.Week1))
	}
	if timeline.Week1[0] != "Fix cyrillic_support: missing charset declaration" {
		t.Errorf("week_1[0] = %q", timeline.Week1[0])
	}
	// Fix without issues falls back to the generic label.
	if timeline.Week1[2] != "Fix schema_markup: General improvements" {
		t.Errorf("week_1[2] = %q", timeline.Week1[2])
	}
	if len(timeline.Week2To4) != 1 || timeline.Week2To4[0] != "Target keyword: телеграм игры" {
		t.Errorf("week_2-4 = %v", timeline.Week2To4)
	}
	if len(timeline.Month2To3) != 1 || timeline.Month2To3[0] != "Develop content for: тапалки" {
		t.Errorf("month_2-3 = %v", timeline.Month2To3)
	}
	// Fixes beyond the first three spill into quarter two.
	if len(timeline.Quarter2) != 1 || timeline.Quarter2[0] != "Implement page_speed_russia improvements" {
		t.Errorf("quarter_2 = %v", timeline.Quarter2)
	}
}

func TestBuildTimeline_EmptyInputs(t *testing.T) {
	timeline := buildTimeline(nil, models.GapAnalysisResult{}, models.AuditReport{})

	if timeline.Week1 == nil || timeline.Week2To4 == nil || timeline.Month2To3 == nil || timeline.Quarter2 == nil {
		t.Error("timeline buckets must serialize as empty arrays, not null")
	}
	if len(timeline.Week1)+len(timeline.Week2To4)+len(timeline.Month2To3)+len(timeline.Quarter2) != 0 {
		t.Errorf("timeline not empty: %+v", timeline)
	}
}
