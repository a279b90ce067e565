package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grabgifts/seo-analyst/internal/models"
)

const strategyDoc = `### Telegram Games Keywords

| Keyword | Volume | Difficulty | Intent | Notes |
|---------|--------|------------|--------|-------|
| телеграм игры | высокий | низкий | commercial | core |
`

const competitorDoc = `#### 1. Hamster Kombat
#### 2. TapSwap
`

func TestLoadStrategy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strategy.md")
	if err := os.WriteFile(path, []byte(strategyDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStrategyStore(path, "", dir)

	strategy, err := store.LoadStrategy()
	if err != nil {
		t.Fatal(err)
	}
	if strategy.TotalKeywords != 1 || strategy.Keywords[0].Term != "телеграм игры" {
		t.Errorf("strategy = %+v", strategy)
	}
}

func TestLoadStrategy_MissingFile(t *testing.T) {
	store := NewStrategyStore(filepath.Join(t.TempDir(), "absent.md"), "", "")

	strategy, err := store.LoadStrategy()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if strategy.TotalKeywords != 0 {
		t.Errorf("missing file must yield an empty strategy, got %+v", strategy)
	}
}

func TestLoadCompetitors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "competitors.md")
	if err := os.WriteFile(path, []byte(competitorDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStrategyStore("", path, dir)

	competitors, err := store.LoadCompetitors()
	if err != nil {
		t.Fatal(err)
	}
	if len(competitors) != 2 || competitors[0].Domain != "hamsterkombat.io" {
		t.Errorf("competitors = %+v", competitors)
	}
}

func TestSaveUpdate_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStrategyStore("", "", filepath.Join(dir, "out"))

	update := models.StrategyUpdate{
		ID:        "test-id",
		Timestamp: time.Now().UTC(),
		Summary: models.StrategySummary{
			NewKeywordsFound: 3,
			TechnicalScore:   66,
		},
		KeywordRecommendations: models.KeywordRecommendations{
			HighPriorityAdditions: []models.KeywordRecord{
				models.NewKeywordRecord("телеграм игры", 12000, 30, 0.75, models.IntentCommercial, 0.9),
			},
		},
	}

	path, err := store.SaveUpdate(update)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "strategy_update_test-id.json") {
		t.Errorf("path = %q, want ID-keyed filename", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Cyrillic must land unescaped in the file.
	if !strings.Contains(string(raw), "телеграм игры") {
		t.Error("cyrillic terms must not be escaped in output")
	}

	var restored models.StrategyUpdate
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatal(err)
	}
	if restored.ID != update.ID || restored.Summary.TechnicalScore != 66 {
		t.Errorf("restored = %+v", restored)
	}
	kw := restored.KeywordRecommendations.HighPriorityAdditions[0]
	if kw.Term != "телеграм игры" || kw.Volume != 12000 || kw.CostPerClick != 0.75 {
		t.Errorf("restored keyword = %+v", kw)
	}
}
