package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/grabgifts/seo-analyst/internal/analysis"
	"github.com/grabgifts/seo-analyst/internal/audit"
	"github.com/grabgifts/seo-analyst/internal/research"
	"github.com/grabgifts/seo-analyst/internal/store"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	providers := []research.KeywordProvider{research.NewSyntheticProvider()}
	auditor := audit.NewAuditor(nil, true)
	pipeline := analysis.NewPipeline(providers, auditor, nil)
	dir := t.TempDir()
	strategyStore := store.NewStrategyStore(
		filepath.Join(dir, "strategy.md"),
		filepath.Join(dir, "competitors.md"),
		dir,
	)

	handler := NewAnalysisHandler(pipeline, strategyStore)

	r := gin.New()
	r.POST("/api/v1/research", handler.Research)
	r.POST("/api/v1/gaps", handler.Gaps)
	r.GET("/api/v1/audit", handler.Audit)
	r.POST("/api/v1/strategy-update", handler.StrategyUpdate)
	return r
}

func TestResearchEndpoint(t *testing.T) {
	r := testRouter(t)

	body := `{"seeds": ["телеграм игры"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/research", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"keywords"`) {
		t.Errorf("response missing keywords: %s", w.Body.String())
	}
}

func TestResearchEndpoint_EmptySeeds(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/research", strings.NewReader(`{"seeds": []}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGapsEndpoint_MissingCompetitors(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gaps", strings.NewReader(`{"our_keywords": ["игры"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAuditEndpoint_RequiresDomain(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestStrategyUpdateEndpoint(t *testing.T) {
	r := testRouter(t)

	body := `{"domain": "grabgifts.ru", "seeds": ["телеграм игры"], "competitor_domains": ["hamsterkombat.io"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/strategy-update", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	for _, field := range []string{`"summary"`, `"implementation_timeline"`, `"competitive_insights"`} {
		if !strings.Contains(w.Body.String(), field) {
			t.Errorf("response missing %s", field)
		}
	}
}
