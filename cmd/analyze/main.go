// Command analyze runs the full SEO analysis once and writes the strategy
// update to disk. Suited for cron jobs and local iteration on the strategy
// documents.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/grabgifts/seo-analyst/internal/analysis"
	"github.com/grabgifts/seo-analyst/internal/audit"
	"github.com/grabgifts/seo-analyst/internal/config"
	"github.com/grabgifts/seo-analyst/internal/research"
	"github.com/grabgifts/seo-analyst/internal/store"
)

func main() {
	domain := flag.String("domain", "", "Domain to audit (required)")
	seeds := flag.String("seeds", "телеграм игры,тапалки", "Comma-separated seed keywords")
	strategyPath := flag.String("strategy", "", "Keyword strategy markdown (defaults to STRATEGY_FILE)")
	competitorPath := flag.String("competitors", "", "Competitor analysis markdown (defaults to COMPETITOR_FILE)")
	outputDir := flag.String("out", "", "Output directory (defaults to OUTPUT_DIR)")
	offline := flag.Bool("offline", false, "Skip live page fetches during the audit")
	synthetic := flag.Bool("synthetic", false, "Force the synthetic provider regardless of configuration")

	flag.Parse()

	if *domain == "" {
		log.Fatal("-domain is required")
	}

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if *strategyPath != "" {
		cfg.StrategyFile = *strategyPath
	}
	if *competitorPath != "" {
		cfg.CompetitorFile = *competitorPath
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *offline {
		cfg.AuditOffline = true
	}
	if *synthetic {
		cfg.ProviderMode = config.ProviderModeSynthetic
	}

	ctx := context.Background()

	providers := research.ProvidersFromConfig(ctx, cfg)
	auditor := audit.NewAuditor(&http.Client{Timeout: 15 * time.Second}, cfg.AuditOffline)
	pipeline := analysis.NewPipeline(providers, auditor, nil)
	strategyStore := store.NewStrategyStore(cfg.StrategyFile, cfg.CompetitorFile, cfg.OutputDir)

	strategy, err := strategyStore.LoadStrategy()
	if err != nil {
		log.Fatalf("Loading strategy: %v", err)
	}
	log.Printf("Loaded %d keywords from strategy", strategy.TotalKeywords)

	competitors, err := strategyStore.LoadCompetitors()
	if err != nil {
		log.Fatalf("Loading competitors: %v", err)
	}
	competitorDomains := make([]string, 0, len(competitors))
	for _, competitor := range competitors {
		competitorDomains = append(competitorDomains, competitor.Domain)
	}
	log.Printf("Loaded %d competitors from analysis", len(competitorDomains))

	update, err := pipeline.Run(ctx, analysis.RunRequest{
		Domain:            *domain,
		Seeds:             splitSeeds(*seeds),
		CompetitorDomains: competitorDomains,
		CurrentKeywords:   strategy.Keywords,
		VolumeMin:         cfg.ResearchVolumeMin,
		DifficultyMax:     cfg.ResearchDifficultyMax,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	path, err := strategyStore.SaveUpdate(update)
	if err != nil {
		log.Fatalf("Saving results: %v", err)
	}

	fmt.Printf("Technical score: %d/100\n", update.Summary.TechnicalScore)
	fmt.Printf("New keywords: %d, gaps: %d, quick wins: %d\n",
		update.Summary.NewKeywordsFound,
		update.Summary.KeywordGapsIdentified,
		update.Summary.QuickWinsAvailable)
	fmt.Printf("Results saved to %s\n", path)
}

func splitSeeds(csv string) []string {
	seeds := []string{}
	for _, seed := range strings.Split(csv, ",") {
		if seed = strings.TrimSpace(seed); seed != "" {
			seeds = append(seeds, seed)
		}
	}
	return seeds
}
