package research

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/grabgifts/seo-analyst/internal/models"
	"github.com/grabgifts/seo-analyst/internal/utils"
)

// Russian modifier patterns appended to every seed term.
var seedModifiers = []string{
	"%s бесплатно",
	"%s скачать",
	"%s онлайн",
	"лучшие %s",
	"новые %s",
	"%s 2024",
	"%s отзывы",
	"%s рейтинг",
}

// Standalone suggestion terms in the Wordstat style, independent of seeds.
var standaloneTerms = []string{
	"яндекс игры",
	"игры браузер",
	"онлайн игры россия",
	"мобильные игры",
	"игры без регистрации",
}

// Keywords every gaming competitor is assumed to rank for.
var competitorBaseTerms = []string{
	"телеграм игры",
	"криптоигры",
	"блокчейн игры",
	"тапалки",
	"заработок в играх",
	"TON игры",
}

// SyntheticProvider fabricates reproducible keyword data without any
// network access. All numbers are derived from an FNV-seeded PRNG over the
// term (and domain), so identical inputs always produce identical records.
// The output is synthetic by construction and must never be treated as a
// real market signal.
type SyntheticProvider struct{}

func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

func (p *SyntheticProvider) Name() string {
	return "synthetic"
}

// Suggest expands each seed through the Russian modifier patterns and adds
// the standalone suggestion terms.
func (p *SyntheticProvider) Suggest(_ context.Context, seeds []string) ([]models.KeywordRecord, error) {
	records := make([]models.KeywordRecord, 0, len(seeds)*len(seedModifiers)+len(standaloneTerms))

	for _, seed := range seeds {
		for i, pattern := range seedModifiers {
			term := fmt.Sprintf(pattern, seed)
			rec := models.NewKeywordRecord(
				term,
				5000-i*500,
				30+i*5,
				0.5+float64(i)*0.1,
				DetectIntent(term),
				0.9,
			)
			records = append(records, rec.WithURLVariations(utils.URLVariations(term)))
		}
	}

	for _, term := range standaloneTerms {
		r := seededRand(term)
		rec := models.NewKeywordRecord(
			term,
			8000+r.Intn(15000),
			35+r.Intn(25),
			0.4+float64(r.Intn(80))/100,
			DetectIntent(term),
			1.0,
		)
		records = append(records, rec.WithURLVariations(utils.URLVariations(term)))
	}

	return records, nil
}

// CompetitorKeywords returns the base competitor terms with values seeded
// from domain+term, so each domain gets a distinct but stable profile.
func (p *SyntheticProvider) CompetitorKeywords(_ context.Context, domain string) ([]models.KeywordRecord, error) {
	records := make([]models.KeywordRecord, 0, len(competitorBaseTerms))

	for _, term := range competitorBaseTerms {
		r := seededRand(domain + "|" + term)
		rec := models.NewKeywordRecord(
			term,
			10000+r.Intn(20000),
			40+r.Intn(30),
			0.3+float64(r.Intn(100))/100,
			models.IntentCommercial,
			0.8,
		)
		records = append(records, rec)
	}

	return records, nil
}

func seededRand(key string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(key))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
