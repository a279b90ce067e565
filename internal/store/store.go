// Package store reads the markdown documents the strategy lives in and
// persists analysis results as JSON.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grabgifts/seo-analyst/internal/models"
	"github.com/grabgifts/seo-analyst/internal/parser"
)

// StrategyStore owns the file layout of one SEO project: the keyword
// strategy document, the competitor analysis document and the directory
// results are written to.
type StrategyStore struct {
	strategyPath   string
	competitorPath string
	outputDir      string
}

func NewStrategyStore(strategyPath, competitorPath, outputDir string) *StrategyStore {
	if outputDir == "" {
		outputDir = "."
	}
	return &StrategyStore{
		strategyPath:   strategyPath,
		competitorPath: competitorPath,
		outputDir:      outputDir,
	}
}

// LoadStrategy parses the keyword strategy document. A missing file yields
// an empty strategy, not an error: new projects start from nothing.
func (s *StrategyStore) LoadStrategy() (models.Strategy, error) {
	content, err := os.ReadFile(s.strategyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return parser.ParseStrategy(""), nil
		}
		return models.Strategy{}, fmt.Errorf("reading strategy file: %w", err)
	}
	return parser.ParseStrategy(string(content)), nil
}

// LoadCompetitors parses the competitor analysis document. Missing file
// semantics match LoadStrategy.
func (s *StrategyStore) LoadCompetitors() ([]models.CompetitorRecord, error) {
	content, err := os.ReadFile(s.competitorPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.CompetitorRecord{}, nil
		}
		return nil, fmt.Errorf("reading competitor file: %w", err)
	}
	return parser.ParseCompetitors(string(content)), nil
}

// SaveUpdate writes a strategy update as indented UTF-8 JSON and returns
// the path. The update ID keys the filename, so successive runs never
// overwrite each other.
func (s *StrategyStore) SaveUpdate(update models.StrategyUpdate) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	data, err := json.MarshalIndent(update, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding strategy update: %w", err)
	}

	path := filepath.Join(s.outputDir, fmt.Sprintf("strategy_update_%s.json", update.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing strategy update: %w", err)
	}
	return path, nil
}
