// Package index persists researched keywords in Typesense so past runs
// stay searchable across sessions.
package index

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"

	"github.com/grabgifts/seo-analyst/internal/models"
)

const collectionName = "seo_keywords"

// KeywordIndex wraps the Typesense client with the keyword collection's
// schema and document shape.
type KeywordIndex struct {
	client *typesense.Client
}

func NewKeywordIndex(protocol, host, port, apiKey string) *KeywordIndex {
	client := typesense.NewClient(
		typesense.WithServer(fmt.Sprintf("%s://%s:%s", protocol, host, port)),
		typesense.WithAPIKey(apiKey),
	)
	return &KeywordIndex{client: client}
}

// EnsureCollection creates the keyword collection if it does not exist yet.
func (ki *KeywordIndex) EnsureCollection(ctx context.Context) error {
	schema := &api.CollectionSchema{
		Name:                collectionName,
		DefaultSortingField: stringPtr("indexed_at"),
		Fields: []api.Field{
			{Name: "id", Type: "string", Optional: boolPtr(true)},
			{Name: "term", Type: "string", Facet: boolPtr(false)},
			{Name: "volume", Type: "int32", Facet: boolPtr(false)},
			{Name: "difficulty", Type: "int32", Facet: boolPtr(false)},
			{Name: "cpc", Type: "float", Facet: boolPtr(false)},
			{Name: "intent", Type: "string", Facet: boolPtr(true)},
			{Name: "local_relevance", Type: "float", Facet: boolPtr(false)},
			{Name: "url_variations", Type: "string[]", Facet: boolPtr(false), Optional: boolPtr(true)},
			{Name: "indexed_at", Type: "int64", Facet: boolPtr(false)},
		},
	}

	_, err := ki.client.Collections().Create(ctx, schema)
	if err != nil && strings.Contains(err.Error(), "already exists") {
		return nil
	}
	return err
}

// IndexKeywords upserts the records one by one. A failed document is
// logged and skipped; only a fully failed batch is reported as an error.
func (ki *KeywordIndex) IndexKeywords(ctx context.Context, keywords []models.KeywordRecord) error {
	if len(keywords) == 0 {
		return nil
	}

	now := time.Now().Unix()
	failures := 0
	for _, kw := range keywords {
		doc := map[string]interface{}{
			"id":              documentID(kw.Term),
			"term":            kw.Term,
			"volume":          kw.Volume,
			"difficulty":      kw.Difficulty,
			"cpc":             kw.CostPerClick,
			"intent":          string(kw.Intent),
			"local_relevance": kw.LocalRelevance,
			"url_variations":  kw.URLVariations,
			"indexed_at":      now,
		}

		if _, err := ki.client.Collection(collectionName).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
			log.Printf("index: upsert of %q failed: %v", kw.Term, err)
			failures++
		}
	}

	if failures == len(keywords) {
		return fmt.Errorf("indexing failed for all %d keywords", failures)
	}
	return nil
}

// Search looks up previously indexed keywords by term.
func (ki *KeywordIndex) Search(ctx context.Context, query string, limit int) ([]models.KeywordRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	searchParams := &api.SearchCollectionParams{
		Q:       stringPtr(query),
		QueryBy: stringPtr("term"),
		PerPage: intPtr(limit),
	}

	result, err := ki.client.Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}

	keywords := []models.KeywordRecord{}
	if result.Hits == nil {
		return keywords, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		keywords = append(keywords, documentToRecord(*hit.Document))
	}
	return keywords, nil
}

func documentToRecord(doc map[string]interface{}) models.KeywordRecord {
	record := models.NewKeywordRecord(
		asString(doc["term"]),
		asInt(doc["volume"]),
		asInt(doc["difficulty"]),
		asFloat(doc["cpc"]),
		models.Intent(asString(doc["intent"])),
		asFloat(doc["local_relevance"]),
	)

	if raw, ok := doc["url_variations"].([]interface{}); ok {
		variations := make([]string, 0, len(raw))
		for _, v := range raw {
			variations = append(variations, asString(v))
		}
		record = record.WithURLVariations(variations)
	}
	return record
}

// documentID derives a stable ID from the term so re-indexing the same
// keyword overwrites instead of duplicating.
func documentID(term string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(term)))
	return hex.EncodeToString(sum[:])[:16]
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	}
	return 0
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
func intPtr(i int) *int          { return &i }
