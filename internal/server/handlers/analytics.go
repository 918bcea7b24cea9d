package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/analyticsservice"
)

type AnalyticsHandler struct {
	analyticsService analyticsservice.IAnalyticsService
}

func NewAnalyticsHandler(analyticsService analyticsservice.IAnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Summary returns the global dashboard counters.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	report, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to build summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ProviderBreakdown returns per-provider usage and earnings.
func (h *AnalyticsHandler) ProviderBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsService.ProviderBreakdown(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to build provider breakdown")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// ProviderBalance returns one provider's ledger balance, 0 when unknown.
func (h *AnalyticsHandler) ProviderBalance(c *gin.Context) {
	provider := c.Param("provider")

	balance, err := h.analyticsService.ProviderBalance(c.Request.Context(), provider)
	if err != nil {
		log.Error().Err(err).Str("provider", provider).Msg("Failed to load provider balance")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load provider balance."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": provider,
		"balance":  balance,
	})
}
