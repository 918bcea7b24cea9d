package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/videorepo"
)

type VideoHandler struct {
	videoRepo videorepo.IVideoRepository
}

func NewVideoHandler(videoRepo videorepo.IVideoRepository) *VideoHandler {
	return &VideoHandler{
		videoRepo: videoRepo,
	}
}

// ListVideos returns the catalog, newest first.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	videos, err := h.videoRepo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list videos")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// CreateVideo registers a catalog entry.
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req domain.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Title == "" || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or url"})
		return
	}

	video := &domain.Video{
		Title:      req.Title,
		URL:        req.URL,
		UploadSize: req.UploadSize,
	}
	if err := h.videoRepo.Create(c.Request.Context(), video); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create video")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"video":   video,
	})
}
