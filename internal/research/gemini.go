package research

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/grabgifts/seo-analyst/internal/models"
	"github.com/grabgifts/seo-analyst/internal/utils"
)

// GeminiProvider expands seed terms into keyword candidates using an LLM.
// It is a best-effort source: any model failure degrades to empty results.
type GeminiProvider struct {
	client *genai.Client
	model  string
	cache  *SuggestionCache
}

func NewGeminiProvider(client *genai.Client, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiProvider{
		client: client,
		model:  model,
		cache:  NewSuggestionCache(30*time.Minute, 200),
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable reports whether a model client was configured.
func (p *GeminiProvider) IsAvailable() bool {
	return p.client != nil
}

type geminiSuggestion struct {
	Keyword    string  `json:"keyword"`
	Volume     int     `json:"volume"`
	Difficulty int     `json:"difficulty"`
	CPC        float64 `json:"cpc"`
}

// Suggest asks the model for Russian keyword variations around the seeds.
func (p *GeminiProvider) Suggest(ctx context.Context, seeds []string) ([]models.KeywordRecord, error) {
	if p.client == nil {
		return nil, nil
	}

	cacheKey := p.cache.Key(p.Name(), seeds)
	if cached := p.cache.Get(cacheKey); cached != nil {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`Ты — специалист по SEO для российского рынка.
Для каждой из этих тем предложи до 8 поисковых запросов на русском языке:

Темы: %s

Верни JSON-массив объектов вида:
[{"keyword": "...", "volume": 5000, "difficulty": 35, "cpc": 0.4}]

Правила:
- volume: оценка месячных запросов в Яндексе
- difficulty: 0-100, сложность продвижения
- cpc: ориентировочная цена клика
- только реальные формулировки, которые вводят пользователи

Верни ТОЛЬКО JSON.`, strings.Join(seeds, ", "))

	content := genai.NewContentFromText(prompt, genai.RoleUser)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, []*genai.Content{content}, nil)
	if err != nil {
		log.Printf("gemini: suggestion request failed: %v", err)
		return nil, nil
	}
	respText := resp.Text()
	if respText == "" {
		return nil, nil
	}

	jsonStr := extractJSONArray(respText)

	var suggestions []geminiSuggestion
	if err := json.Unmarshal([]byte(jsonStr), &suggestions); err != nil {
		log.Printf("gemini: could not parse suggestions: %v", err)
		return nil, nil
	}

	records := make([]models.KeywordRecord, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Keyword == "" {
			continue
		}
		rec := models.NewKeywordRecord(
			s.Keyword,
			s.Volume,
			s.Difficulty,
			s.CPC,
			DetectIntent(s.Keyword),
			0.9,
		)
		records = append(records, rec.WithURLVariations(utils.URLVariations(s.Keyword)))
	}

	p.cache.Set(cacheKey, records)
	return records, nil
}

// CompetitorKeywords is not supported by the LLM source; it returns empty.
func (p *GeminiProvider) CompetitorKeywords(_ context.Context, _ string) ([]models.KeywordRecord, error) {
	return nil, nil
}

// extractJSONArray strips markdown fences and leading prose from a model
// response, leaving the JSON array.
func extractJSONArray(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	}

	if idx := strings.Index(s, "["); idx != -1 {
		s = s[idx:]
	}

	return strings.TrimSpace(s)
}
