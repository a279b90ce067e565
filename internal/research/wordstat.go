package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/grabgifts/seo-analyst/internal/models"
	"github.com/grabgifts/seo-analyst/internal/utils"
)

const defaultWordstatURL = "https://api.direct.yandex.com/json/v5/keywordsresearch"

// WordstatProvider fetches keyword suggestions from the Yandex Direct
// keyword research API. Without a token it degrades to empty results so the
// pipeline keeps running on whatever other sources are configured.
type WordstatProvider struct {
	token   string
	baseURL string
	client  *http.Client
	cache   *SuggestionCache
}

func NewWordstatProvider(token string, timeout time.Duration) *WordstatProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &WordstatProvider{
		token:   token,
		baseURL: defaultWordstatURL,
		client:  &http.Client{Timeout: timeout},
		cache:   NewSuggestionCache(30*time.Minute, 200),
	}
}

func (p *WordstatProvider) Name() string {
	return "yandex_wordstat"
}

type wordstatRequest struct {
	Method string         `json:"method"`
	Params wordstatParams `json:"params"`
}

type wordstatParams struct {
	Phrases []string `json:"Phrases"`
	Region  string   `json:"GeoID,omitempty"`
}

type wordstatResponse struct {
	Result struct {
		Suggestions []struct {
			Phrase       string  `json:"Phrase"`
			SearchVolume int     `json:"SearchVolume"`
			Competition  float64 `json:"Competition"`
			AveragePrice float64 `json:"AveragePrice"`
		} `json:"Suggestions"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"error_code"`
		Message string `json:"error_string"`
	} `json:"error"`
}

// Suggest asks Wordstat for suggestions around the seed phrases.
func (p *WordstatProvider) Suggest(ctx context.Context, seeds []string) ([]models.KeywordRecord, error) {
	if p.token == "" {
		log.Printf("wordstat: no token configured, returning no suggestions")
		return nil, nil
	}

	cacheKey := p.cache.Key(p.Name(), seeds)
	if cached := p.cache.Get(cacheKey); cached != nil {
		return cached, nil
	}

	body, err := json.Marshal(wordstatRequest{
		Method: "GetKeywordSuggestions",
		Params: wordstatParams{Phrases: seeds, Region: "RU"},
	})
	if err != nil {
		return nil, fmt.Errorf("wordstat: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("wordstat: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Accept-Language", "ru")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wordstat: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wordstat: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordstat: status %d: %s", resp.StatusCode, raw)
	}

	var parsed wordstatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("wordstat: decode response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("wordstat: api error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}

	records := make([]models.KeywordRecord, 0, len(parsed.Result.Suggestions))
	for _, s := range parsed.Result.Suggestions {
		if s.Phrase == "" {
			continue
		}
		// Competition comes back in [0,1]; map it onto the 0-100 difficulty scale.
		rec := models.NewKeywordRecord(
			s.Phrase,
			s.SearchVolume,
			int(s.Competition*100),
			s.AveragePrice,
			DetectIntent(s.Phrase),
			1.0,
		)
		records = append(records, rec.WithURLVariations(utils.URLVariations(s.Phrase)))
	}

	p.cache.Set(cacheKey, records)
	return records, nil
}

// CompetitorKeywords is not supported by Wordstat; it always returns empty.
func (p *WordstatProvider) CompetitorKeywords(_ context.Context, _ string) ([]models.KeywordRecord, error) {
	return nil, nil
}
