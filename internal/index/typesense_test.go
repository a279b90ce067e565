package index

import (
	"testing"

	"github.com/grabgifts/seo-analyst/internal/models"
)

func TestDocumentID(t *testing.T) {
	a := documentID("Телеграм Игры")
	b := documentID("телеграм игры")

	if a != b {
		t.Error("document ID must be case-insensitive")
	}
	if len(a) != 16 {
		t.Errorf("document ID length = %d, want 16", len(a))
	}
	if a == documentID("другой запрос") {
		t.Error("distinct terms must produce distinct IDs")
	}
}

func TestDocumentToRecord(t *testing.T) {
	doc := map[string]interface{}{
		"term":            "телеграм игры",
		"volume":          float64(12000), // JSON numbers decode as float64
		"difficulty":      float64(35),
		"cpc":             0.75,
		"intent":          "commercial",
		"local_relevance": 0.9,
		"url_variations":  []interface{}{"telegram-igry", "телеграм-игры"},
	}

	record := documentToRecord(doc)

	if record.Term != "телеграм игры" || record.Volume != 12000 || record.Difficulty != 35 {
		t.Errorf("record = %+v", record)
	}
	if record.Intent != models.IntentCommercial {
		t.Errorf("intent = %q", record.Intent)
	}
	if len(record.URLVariations) != 2 || record.URLVariations[0] != "telegram-igry" {
		t.Errorf("url variations = %v", record.URLVariations)
	}
}
