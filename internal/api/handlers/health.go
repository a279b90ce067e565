package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

type HealthHandler struct {
	providerNames []string
}

func NewHealthHandler(providerNames []string) *HealthHandler {
	return &HealthHandler{providerNames: providerNames}
}

// Health godoc
// @Summary Health check endpoint
// @Description Reports process liveness and which keyword providers are wired in
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string, len(h.providerNames))
	for _, name := range h.providerNames {
		checks["provider:"+name] = "configured"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Checks:    checks,
		Timestamp: time.Now().Unix(),
	})
}
