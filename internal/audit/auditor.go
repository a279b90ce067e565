// Package audit runs the Russian-market technical SEO checks against a
// live page: Cyrillic rendering, Yandex integration, mobile compliance,
// structured data and page weight.
package audit

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/grabgifts/seo-analyst/internal/analysis"
	"github.com/grabgifts/seo-analyst/internal/models"
)

const (
	fetchTimeout = 15 * time.Second
	maxBodyBytes = 4 << 20
)

// FocusAreas is the canonical audit order. Prioritization is stable, so
// this order decides ties between fixes of equal priority.
var FocusAreas = []string{
	models.AreaCyrillicSupport,
	models.AreaYandexOptimization,
	models.AreaMobilePerformance,
	models.AreaSchemaMarkup,
	models.AreaPageSpeedRussia,
}

type checkFunc func(doc *html.Node, body string) models.CheckResult

var checks = map[string]checkFunc{
	models.AreaCyrillicSupport:    checkCyrillic,
	models.AreaYandexOptimization: checkYandex,
	models.AreaMobilePerformance:  checkMobile,
	models.AreaSchemaMarkup:       checkSchema,
	models.AreaPageSpeedRussia:    checkPageSpeed,
}

// Auditor fetches a domain's landing page and evaluates the focus areas.
// With Offline set (or when the fetch fails) it falls back to reference
// findings instead of erroring, so a full pipeline run always completes.
type Auditor struct {
	client  *http.Client
	offline bool
}

func NewAuditor(client *http.Client, offline bool) *Auditor {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Auditor{client: client, offline: offline}
}

// Audit runs every focus-area check for the domain and assembles the
// report: per-area results, the truncated-mean overall score and the
// prioritized fix list.
func (a *Auditor) Audit(ctx context.Context, domain string) models.AuditReport {
	results := a.collectResults(ctx, domain)

	return models.AuditReport{
		Domain:        domain,
		Results:       results,
		OverallScore:  analysis.TechnicalScore(results),
		PriorityFixes: analysis.PrioritizeFixes(FocusAreas, results),
	}
}

func (a *Auditor) collectResults(ctx context.Context, domain string) map[string]models.CheckResult {
	if a.offline {
		return offlineResults()
	}

	doc, body, err := a.fetch(ctx, domain)
	if err != nil {
		log.Printf("audit: fetch for %s failed, using offline results: %v", domain, err)
		return offlineResults()
	}

	results := make(map[string]models.CheckResult, len(FocusAreas))
	for _, area := range FocusAreas {
		results[area] = checks[area](doc, body)
	}
	return results
}

func (a *Auditor) fetch(ctx context.Context, domain string) (*html.Node, string, error) {
	url := domain
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", "seo-analyst/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "", err
	}

	body := string(raw)
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	return doc, body, nil
}
