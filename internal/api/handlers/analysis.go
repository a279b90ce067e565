package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/grabgifts/seo-analyst/internal/analysis"
	"github.com/grabgifts/seo-analyst/internal/models"
	"github.com/grabgifts/seo-analyst/internal/store"
)

type AnalysisHandler struct {
	pipeline  *analysis.Pipeline
	store     *store.StrategyStore
	validator *validator.Validate
}

func NewAnalysisHandler(pipeline *analysis.Pipeline, strategyStore *store.StrategyStore) *AnalysisHandler {
	return &AnalysisHandler{
		pipeline:  pipeline,
		store:     strategyStore,
		validator: validator.New(),
	}
}

// ResearchRequest is the payload of POST /api/v1/research.
type ResearchRequest struct {
	Seeds         []string `json:"seeds" binding:"required,min=1" validate:"required,min=1,dive,min=1"`
	VolumeMin     int      `json:"volume_min" validate:"gte=0"`
	DifficultyMax int      `json:"difficulty_max" validate:"gte=0,lte=100"`
}

// ResearchResponse wraps the ranked keyword list.
type ResearchResponse struct {
	Keywords []models.KeywordRecord `json:"keywords"`
	Total    int                    `json:"total"`
}

// Research godoc
// @Summary Research keywords for the Russian market
// @Description Expands the seed terms through the configured providers, filters by volume and difficulty, deduplicates and ranks by opportunity score
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body ResearchRequest true "Seed terms and thresholds"
// @Success 200 {object} ResearchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/research [post]
func (h *AnalysisHandler) Research(c *gin.Context) {
	var request ResearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + err.Error()})
		return
	}

	keywords, err := h.pipeline.Research(c.Request.Context(), analysis.ResearchRequest{
		Seeds:         request.Seeds,
		VolumeMin:     request.VolumeMin,
		DifficultyMax: request.DifficultyMax,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrSeedsRequired) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ResearchResponse{Keywords: keywords, Total: len(keywords)})
}

// GapsRequest is the payload of POST /api/v1/gaps.
type GapsRequest struct {
	OurKeywords       []string `json:"our_keywords"`
	CompetitorDomains []string `json:"competitor_domains" binding:"required,min=1" validate:"required,min=1,dive,min=1"`
}

// Gaps godoc
// @Summary Find keyword gaps against competitors
// @Description Compares our keyword set against what each competitor ranks for and surfaces quick-win opportunities
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body GapsRequest true "Our terms and competitor domains"
// @Success 200 {object} models.GapAnalysisResult
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/gaps [post]
func (h *AnalysisHandler) Gaps(c *gin.Context) {
	var request GapsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + err.Error()})
		return
	}

	result, err := h.pipeline.Gaps(c.Request.Context(), request.OurKeywords, request.CompetitorDomains)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, models.ErrNoCompetitors):
			status = http.StatusBadRequest
		case errors.Is(err, models.ErrProviderUnavailable):
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Audit godoc
// @Summary Run the technical SEO audit for a domain
// @Description Evaluates Cyrillic rendering, Yandex integration, mobile compliance, structured data and page weight
// @Tags analysis
// @Produce json
// @Param domain query string true "Domain to audit"
// @Success 200 {object} models.AuditReport
// @Failure 400 {object} map[string]string
// @Router /api/v1/audit [get]
func (h *AnalysisHandler) Audit(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrDomainRequired.Error()})
		return
	}

	report, err := h.pipeline.Audit(c.Request.Context(), domain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// StrategyUpdateRequest is the payload of POST /api/v1/strategy-update.
type StrategyUpdateRequest struct {
	Domain            string   `json:"domain" binding:"required" validate:"required,min=1"`
	Seeds             []string `json:"seeds"`
	CompetitorDomains []string `json:"competitor_domains"`
	Save              bool     `json:"save"`
}

// StrategyUpdateResponse carries the update plus the output path when the
// caller asked to persist it.
type StrategyUpdateResponse struct {
	Update models.StrategyUpdate `json:"update"`
	Path   string                `json:"path,omitempty"`
}

// StrategyUpdate godoc
// @Summary Run the full analysis pipeline
// @Description Researches keywords, analyzes competitor gaps, audits the domain and composes a strategy update. Competitors default to the configured analysis document when omitted.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body StrategyUpdateRequest true "Pipeline inputs"
// @Success 200 {object} StrategyUpdateResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/strategy-update [post]
func (h *AnalysisHandler) StrategyUpdate(c *gin.Context) {
	var request StrategyUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + err.Error()})
		return
	}

	strategy, err := h.store.LoadStrategy()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	competitorDomains := request.CompetitorDomains
	if len(competitorDomains) == 0 {
		competitors, err := h.store.LoadCompetitors()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for _, competitor := range competitors {
			competitorDomains = append(competitorDomains, competitor.Domain)
		}
	}

	update, err := h.pipeline.Run(c.Request.Context(), analysis.RunRequest{
		Domain:            request.Domain,
		Seeds:             request.Seeds,
		CompetitorDomains: competitorDomains,
		CurrentKeywords:   strategy.Keywords,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrDomainRequired) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	response := StrategyUpdateResponse{Update: update}
	if request.Save {
		path, err := h.store.SaveUpdate(update)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response.Path = path
	}

	c.JSON(http.StatusOK, response)
}
