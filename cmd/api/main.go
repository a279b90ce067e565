package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/grabgifts/seo-analyst/docs"
	"github.com/grabgifts/seo-analyst/internal/analysis"
	"github.com/grabgifts/seo-analyst/internal/api/handlers"
	"github.com/grabgifts/seo-analyst/internal/api/routes"
	"github.com/grabgifts/seo-analyst/internal/audit"
	"github.com/grabgifts/seo-analyst/internal/config"
	"github.com/grabgifts/seo-analyst/internal/index"
	"github.com/grabgifts/seo-analyst/internal/observability"
	"github.com/grabgifts/seo-analyst/internal/research"
	"github.com/grabgifts/seo-analyst/internal/store"
)

// @title           SEO Analyst API
// @version         1.0
// @description     Keyword research, competitor gap analysis and technical audits for the Russian search market

// @license.name  MIT

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	ctx := context.Background()
	providers := research.ProvidersFromConfig(ctx, cfg)

	var indexer analysis.KeywordIndexer
	if cfg.TypesenseAPIKey != "" {
		keywordIndex := index.NewKeywordIndex(cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort, cfg.TypesenseAPIKey)
		if err := keywordIndex.EnsureCollection(ctx); err != nil {
			log.Printf("keyword index unavailable, continuing without it: %v", err)
		} else {
			indexer = keywordIndex
		}
	}

	auditor := audit.NewAuditor(&http.Client{Timeout: 15 * time.Second}, cfg.AuditOffline)
	pipeline := analysis.NewPipeline(providers, auditor, indexer)
	strategyStore := store.NewStrategyStore(cfg.StrategyFile, cfg.CompetitorFile, cfg.OutputDir)

	analysisHandler := handlers.NewAnalysisHandler(pipeline, strategyStore)
	healthHandler := handlers.NewHealthHandler(research.ProviderNames(providers))

	r := routes.SetupRouter(analysisHandler, healthHandler)

	log.Printf("Server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
