package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// fakeProvider serves canned competitor keywords and fails on demand.
type fakeProvider struct {
	byDomain map[string][]models.KeywordRecord
	failing  map[string]bool
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Suggest(_ context.Context, _ []string) ([]models.KeywordRecord, error) {
	return nil, nil
}

func (f *fakeProvider) CompetitorKeywords(_ context.Context, domain string) ([]models.KeywordRecord, error) {
	if f.failing[domain] {
		return nil, errors.New("provider down")
	}
	return f.byDomain[domain], nil
}

func terms(keywords []models.KeywordRecord) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = kw.Term
	}
	return out
}

func termSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func TestAnalyzeGaps_SetDifference(t *testing.T) {
	provider := &fakeProvider{
		byDomain: map[string][]models.KeywordRecord{
			"comp.io": {
				kw("a", 5000, 30, models.IntentCommercial, 1),
				kw("c", 5000, 30, models.IntentCommercial, 1),
				kw("d", 5000, 30, models.IntentCommercial, 1),
			},
		},
	}

	result := AnalyzeGaps(context.Background(), termSet("a", "b"), []string{"comp.io"}, provider)

	got := terms(result.KeywordGaps)
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("gap set = %v, want [c d]", got)
	}
}

func TestAnalyzeGaps_CaseSensitiveMembership(t *testing.T) {
	provider := &fakeProvider{
		byDomain: map[string][]models.KeywordRecord{
			"comp.io": {kw("Foo", 5000, 30, models.IntentCommercial, 1)},
		},
	}

	// "foo" is ours, but membership is on the raw term: "Foo" is a gap.
	result := AnalyzeGaps(context.Background(), termSet("foo"), []string{"comp.io"}, provider)

	if len(result.KeywordGaps) != 1 || result.KeywordGaps[0].Term != "Foo" {
		t.Errorf("expected raw-term gap [Foo], got %v", terms(result.KeywordGaps))
	}
}

func TestAnalyzeGaps_PerCompetitorIsolation(t *testing.T) {
	provider := &fakeProvider{
		byDomain: map[string][]models.KeywordRecord{
			"healthy.io": {kw("тапалки", 15000, 35, models.IntentCommercial, 1)},
		},
		failing: map[string]bool{"broken.io": true},
	}

	result := AnalyzeGaps(context.Background(), termSet(), []string{"broken.io", "healthy.io"}, provider)

	if _, ok := result.CompetitorStrengths["broken.io"]; ok {
		t.Error("failed competitor must be omitted from strengths")
	}

	strength, ok := result.CompetitorStrengths["healthy.io"]
	if !ok {
		t.Fatal("healthy competitor missing from strengths")
	}
	if strength.TotalKeywords != 1 {
		t.Errorf("healthy competitor TotalKeywords = %d, want 1", strength.TotalKeywords)
	}
	if len(result.KeywordGaps) != 1 || result.KeywordGaps[0].Term != "тапалки" {
		t.Errorf("healthy competitor's gaps missing: %v", terms(result.KeywordGaps))
	}
}

func TestAnalyzeGaps_HighValueAndStrengths(t *testing.T) {
	provider := &fakeProvider{
		byDomain: map[string][]models.KeywordRecord{
			"comp.io": {
				kw("small", 10000, 30, models.IntentCommercial, 1), // not > 10000
				kw("big", 10001, 30, models.IntentCommercial, 1),
				kw("biggest", 50000, 30, models.IntentCommercial, 1),
			},
		},
	}

	result := AnalyzeGaps(context.Background(), termSet(), []string{"comp.io"}, provider)

	strength := result.CompetitorStrengths["comp.io"]
	if len(strength.HighValueKeywords) != 2 {
		t.Fatalf("high value count = %d, want 2 (volume strictly > 10000)", len(strength.HighValueKeywords))
	}
	if strength.RankingStrengths[0] != "biggest" {
		t.Errorf("top ranking strength = %q, want %q", strength.RankingStrengths[0], "biggest")
	}
}

// Duplicates across competitors are kept in the combined gap list, so the
// same keyword can appear twice among the quick wins. Pinned deliberately:
// change this only with a product decision.
func TestAnalyzeGaps_CrossCompetitorDuplicatesPreserved(t *testing.T) {
	shared := kw("тапалки", 15000, 35, models.IntentCommercial, 1)
	provider := &fakeProvider{
		byDomain: map[string][]models.KeywordRecord{
			"one.io": {shared},
			"two.io": {shared},
		},
	}

	result := AnalyzeGaps(context.Background(), termSet(), []string{"one.io", "two.io"}, provider)

	if len(result.KeywordGaps) != 2 {
		t.Fatalf("combined gaps = %d, want 2 (no cross-competitor dedup)", len(result.KeywordGaps))
	}
	if len(result.OpportunityKeywords) != 2 {
		t.Errorf("quick wins = %d, want duplicate kept", len(result.OpportunityKeywords))
	}
}

func TestQuickWins_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		keyword  models.KeywordRecord
		included bool
	}{
		{
			name:     "volume exactly 1000 excluded",
			keyword:  kw("x", 1000, 10, models.IntentCommercial, 1),
			included: false,
		},
		{
			name:     "volume 1001 difficulty 39 commercial included",
			keyword:  kw("x", 1001, 39, models.IntentCommercial, 1),
			included: true,
		},
		{
			name:     "difficulty exactly 40 excluded",
			keyword:  kw("x", 5000, 40, models.IntentCommercial, 1),
			included: false,
		},
		{
			name:     "transactional included",
			keyword:  kw("x", 5000, 10, models.IntentTransactional, 1),
			included: true,
		},
		{
			name:     "informational excluded",
			keyword:  kw("x", 5000, 10, models.IntentInformational, 1),
			included: false,
		},
		{
			name:     "navigational excluded",
			keyword:  kw("x", 5000, 10, models.IntentNavigational, 1),
			included: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wins := QuickWins([]models.KeywordRecord{tt.keyword})
			if (len(wins) == 1) != tt.included {
				t.Errorf("included = %v, want %v", len(wins) == 1, tt.included)
			}
		})
	}
}

func TestQuickWins_SortedAndCapped(t *testing.T) {
	gaps := make([]models.KeywordRecord, 0, 25)
	for i := 0; i < 25; i++ {
		// Increasing volume: later entries score higher.
		gaps = append(gaps, kw(fmt.Sprintf("kw%d", i), 2000+i*100, 20, models.IntentCommercial, 0.8))
	}

	wins := QuickWins(gaps)

	if len(wins) != 20 {
		t.Fatalf("quick wins = %d, want cap of 20", len(wins))
	}
	if wins[0].Term != "kw24" {
		t.Errorf("top quick win = %q, want highest-volume kw24", wins[0].Term)
	}
	for i := 1; i < len(wins); i++ {
		if OpportunityScore(wins[i]) > OpportunityScore(wins[i-1]) {
			t.Errorf("quick wins not sorted descending at %d", i)
		}
	}
}
