package analysis

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/grabgifts/seo-analyst/internal/models"
	"github.com/grabgifts/seo-analyst/internal/research"
)

// Default research thresholds; callers may override per request.
const (
	DefaultVolumeMin     = 500
	DefaultDifficultyMax = 60
)

// Auditor runs the technical checks for a domain.
type Auditor interface {
	Audit(ctx context.Context, domain string) models.AuditReport
}

// KeywordIndexer receives researched keywords for later term search.
// Indexing is best-effort; the pipeline ignores its failures.
type KeywordIndexer interface {
	IndexKeywords(ctx context.Context, keywords []models.KeywordRecord) error
}

// ResearchRequest carries the inputs of one keyword-research run.
type ResearchRequest struct {
	Seeds         []string
	VolumeMin     int
	DifficultyMax int
}

// Pipeline wires the research providers, the auditor and the analysis
// stages together. Every stage is a pure function over its inputs; the
// pipeline only sequences them and fans out the provider calls.
type Pipeline struct {
	providers []research.KeywordProvider
	auditor   Auditor
	indexer   KeywordIndexer
}

func NewPipeline(providers []research.KeywordProvider, auditor Auditor, indexer KeywordIndexer) *Pipeline {
	return &Pipeline{
		providers: providers,
		auditor:   auditor,
		indexer:   indexer,
	}
}

// Research fans the seed terms out to every configured provider, merges the
// candidates, filters by the thresholds, deduplicates and ranks them.
// A provider failure drops that provider's contribution, nothing else.
func (p *Pipeline) Research(ctx context.Context, req ResearchRequest) ([]models.KeywordRecord, error) {
	if len(req.Seeds) == 0 {
		return nil, models.ErrSeedsRequired
	}
	if req.VolumeMin <= 0 {
		req.VolumeMin = DefaultVolumeMin
	}
	if req.DifficultyMax <= 0 {
		req.DifficultyMax = DefaultDifficultyMax
	}

	ctx, span := otel.Tracer("pipeline").Start(ctx, "research")
	defer span.End()
	span.SetAttributes(
		attribute.String("research.seeds", strings.Join(req.Seeds, ",")),
		attribute.Int("research.volume_min", req.VolumeMin),
		attribute.Int("research.difficulty_max", req.DifficultyMax),
	)

	batches := make([][]models.KeywordRecord, len(p.providers))

	var wg sync.WaitGroup
	for i, provider := range p.providers {
		wg.Add(1)
		go func(i int, provider research.KeywordProvider) {
			defer wg.Done()
			records, err := provider.Suggest(ctx, req.Seeds)
			if err != nil {
				log.Printf("research: provider %s failed: %v", provider.Name(), err)
				return
			}
			batches[i] = records
		}(i, provider)
	}
	wg.Wait()

	// Merge in provider order so dedup keeps the first source's casing.
	candidates := []models.KeywordRecord{}
	for _, batch := range batches {
		candidates = append(candidates, batch...)
	}

	keywords := Deduplicate(FilterThresholds(candidates, req.VolumeMin, req.DifficultyMax))
	RankByOpportunity(keywords)

	span.SetAttributes(attribute.Int("research.results", len(keywords)))

	if p.indexer != nil && len(keywords) > 0 {
		if err := p.indexer.IndexKeywords(ctx, keywords); err != nil {
			log.Printf("research: keyword indexing failed: %v", err)
		}
	}

	return keywords, nil
}

// Gaps runs the competitor gap analysis with the first provider that
// supports competitor lookups (in practice: the one configured).
func (p *Pipeline) Gaps(ctx context.Context, ourTerms []string, competitorDomains []string) (models.GapAnalysisResult, error) {
	if len(competitorDomains) == 0 {
		return models.GapAnalysisResult{}, models.ErrNoCompetitors
	}
	if len(p.providers) == 0 {
		return models.GapAnalysisResult{}, models.ErrProviderUnavailable
	}

	ctx, span := otel.Tracer("pipeline").Start(ctx, "gap_analysis")
	defer span.End()
	span.SetAttributes(attribute.Int("gaps.competitors", len(competitorDomains)))

	termSet := make(map[string]struct{}, len(ourTerms))
	for _, term := range ourTerms {
		termSet[term] = struct{}{}
	}

	result := AnalyzeGaps(ctx, termSet, competitorDomains, p.providers[0])
	span.SetAttributes(attribute.Int("gaps.found", len(result.KeywordGaps)))

	return result, nil
}

// Audit runs the technical checks for a domain.
func (p *Pipeline) Audit(ctx context.Context, domain string) (models.AuditReport, error) {
	if domain == "" {
		return models.AuditReport{}, models.ErrDomainRequired
	}

	ctx, span := otel.Tracer("pipeline").Start(ctx, "technical_audit")
	defer span.End()
	span.SetAttributes(attribute.String("audit.domain", domain))

	report := p.auditor.Audit(ctx, domain)
	span.SetAttributes(attribute.Int("audit.score", report.OverallScore))

	return report, nil
}

// RunRequest carries the inputs of a full strategy-update run.
type RunRequest struct {
	Domain            string
	Seeds             []string
	CompetitorDomains []string
	CurrentKeywords   []models.KeywordRecord
	VolumeMin         int
	DifficultyMax     int
}

// Run executes the whole pipeline: research, gap analysis and audit, then
// composes the strategy update. Stages that fail contribute empty inputs to
// the composer; the update is always structurally complete.
func (p *Pipeline) Run(ctx context.Context, req RunRequest) (models.StrategyUpdate, error) {
	if req.Domain == "" {
		return models.StrategyUpdate{}, models.ErrDomainRequired
	}

	ctx, span := otel.Tracer("pipeline").Start(ctx, "strategy_update")
	defer span.End()

	start := time.Now()

	newKeywords, err := p.Research(ctx, ResearchRequest{
		Seeds:         req.Seeds,
		VolumeMin:     req.VolumeMin,
		DifficultyMax: req.DifficultyMax,
	})
	if err != nil {
		if err != models.ErrSeedsRequired {
			return models.StrategyUpdate{}, err
		}
		newKeywords = nil
	}

	ourTerms := make([]string, 0, len(req.CurrentKeywords))
	for _, kw := range req.CurrentKeywords {
		ourTerms = append(ourTerms, kw.Term)
	}

	gaps, err := p.Gaps(ctx, ourTerms, req.CompetitorDomains)
	if err != nil {
		log.Printf("pipeline: gap analysis skipped: %v", err)
		gaps = models.GapAnalysisResult{
			KeywordGaps:         []models.KeywordRecord{},
			ContentGaps:         []string{},
			OpportunityKeywords: []models.KeywordRecord{},
			CompetitorStrengths: map[string]models.CompetitorStrength{},
		}
	}

	audit, err := p.Audit(ctx, req.Domain)
	if err != nil {
		return models.StrategyUpdate{}, err
	}

	update := ComposeStrategyUpdate(newKeywords, gaps, audit)

	span.SetAttributes(attribute.Int64("pipeline.duration_ms", time.Since(start).Milliseconds()))
	log.Printf("pipeline: strategy update %s generated in %s", update.ID, time.Since(start).Round(time.Millisecond))

	return update, nil
}
