package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/ingestservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type EventHandler struct {
	ingestService ingestservice.IIngestService
}

func NewEventHandler(ingestService ingestservice.IIngestService) *EventHandler {
	return &EventHandler{
		ingestService: ingestService,
	}
}

func (h *EventHandler) LogStream(c *gin.Context) {
	var req domain.StreamEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	earned, err := h.ingestService.LogStream(c.Request.Context(), &req)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
			return
		}
		log.Error().Err(err).Str("video_id", req.VideoID).Msg("Stream logging error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log stream"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Stream logged",
		"earnedAmount": earned,
	})
}

func (h *EventHandler) LogDownload(c *gin.Context) {
	var req domain.DownloadEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.ingestService.LogDownload(c.Request.Context(), &req); err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing videoId"})
			return
		}
		log.Error().Err(err).Str("video_id", req.VideoID).Msg("Download logging error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log download"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Download logged",
	})
}

func (h *EventHandler) LogView(c *gin.Context) {
	var req domain.ViewEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.ingestService.LogView(c.Request.Context(), &req); err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
			return
		}
		log.Error().Err(err).Str("video_id", req.VideoID).Msg("View logging error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log view"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "View logged",
	})
}
