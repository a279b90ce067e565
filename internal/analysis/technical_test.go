package analysis

import (
	"testing"

	"github.com/grabgifts/seo-analyst/internal/models"
)

func TestTechnicalScore(t *testing.T) {
	tests := []struct {
		name     string
		results  map[string]models.CheckResult
		expected int
	}{
		{
			name: "pass warning fail truncates to 66",
			results: map[string]models.CheckResult{
				"a": {Status: models.StatusPass},
				"b": {Status: models.StatusWarning},
				"c": {Status: models.StatusFail},
			},
			expected: 66, // (100+70+30)/3 with integer truncation
		},
		{
			name:     "no entries",
			results:  map[string]models.CheckResult{},
			expected: 0,
		},
		{
			name: "statusless entries skipped",
			results: map[string]models.CheckResult{
				"a": {Status: models.StatusPass},
				"b": {},
			},
			expected: 100,
		},
		{
			name: "all pass",
			results: map[string]models.CheckResult{
				"a": {Status: models.StatusPass},
				"b": {Status: models.StatusPass},
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TechnicalScore(tt.results); got != tt.expected {
				t.Errorf("TechnicalScore = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFixPriority(t *testing.T) {
	tests := []struct {
		area     string
		expected int
	}{
		{models.AreaCyrillicSupport, 9},    // high impact(3) * low effort(3)
		{models.AreaYandexOptimization, 6}, // high(3) * medium(2)
		{models.AreaMobilePerformance, 6},
		{models.AreaPageSpeedRussia, 6}, // medium(2) * low(3)
		{models.AreaSchemaMarkup, 6},
		{"unknown_area", 4}, // medium(2) * medium(2)
	}

	for _, tt := range tests {
		t.Run(tt.area, func(t *testing.T) {
			if got := FixPriority(tt.area); got != tt.expected {
				t.Errorf("FixPriority(%q) = %d, want %d", tt.area, got, tt.expected)
			}
		})
	}
}

func TestPrioritizeFixes(t *testing.T) {
	areas := []string{"unknown_area", models.AreaSchemaMarkup, models.AreaCyrillicSupport, models.AreaMobilePerformance}
	results := map[string]models.CheckResult{
		"unknown_area":               {Status: models.StatusFail, Issues: []string{"x"}},
		models.AreaSchemaMarkup:      {Status: models.StatusFail, Issues: []string{"no schema"}},
		models.AreaCyrillicSupport:   {Status: models.StatusFail, Issues: []string{"mojibake"}},
		models.AreaMobilePerformance: {Status: models.StatusPass},
	}

	fixes := PrioritizeFixes(areas, results)

	if len(fixes) != 3 {
		t.Fatalf("fixes = %d, want 3 (pass never produces a fix)", len(fixes))
	}
	if fixes[0].Area != models.AreaCyrillicSupport || fixes[0].Priority != 9 {
		t.Errorf("top fix = %s(%d), want cyrillic_support(9)", fixes[0].Area, fixes[0].Priority)
	}
	if fixes[1].Area != models.AreaSchemaMarkup {
		t.Errorf("second fix = %s, want schema_markup", fixes[1].Area)
	}
	if fixes[2].Area != "unknown_area" || fixes[2].Priority != 4 {
		t.Errorf("last fix = %s(%d), want unknown_area(4)", fixes[2].Area, fixes[2].Priority)
	}
}

func TestPrioritizeFixes_StableTies(t *testing.T) {
	// Both unlisted: equal priority 4, encounter order must survive.
	areas := []string{"zeta_check", "alpha_check"}
	results := map[string]models.CheckResult{
		"zeta_check":  {Status: models.StatusFail},
		"alpha_check": {Status: models.StatusFail},
	}

	fixes := PrioritizeFixes(areas, results)

	if fixes[0].Area != "zeta_check" || fixes[1].Area != "alpha_check" {
		t.Errorf("tie order broken: got [%s, %s]", fixes[0].Area, fixes[1].Area)
	}
}

func TestBucketFixes(t *testing.T) {
	fixes := []models.TechnicalFix{
		{Area: "a", Priority: 9},
		{Area: "b", Priority: 6},
		{Area: "c", Priority: 4}, // unlisted-area default lands medium-term
		{Area: "d", Priority: 3},
		{Area: "e", Priority: 2},
	}

	recs := BucketFixes(fixes)

	if len(recs.ImmediateFixes) != 2 {
		t.Errorf("immediate = %d, want 2 (priority >= 6)", len(recs.ImmediateFixes))
	}
	if len(recs.MediumTermImprovements) != 2 {
		t.Errorf("medium-term = %d, want 2 (3 <= priority < 6)", len(recs.MediumTermImprovements))
	}
	if len(recs.LongTermOptimizations) != 1 {
		t.Errorf("long-term = %d, want 1 (priority < 3)", len(recs.LongTermOptimizations))
	}
}
