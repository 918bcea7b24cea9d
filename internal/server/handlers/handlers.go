package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/analyticsservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/ingestservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/withdrawalservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain/interfaces"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/videorepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
)

type Handlers struct {
	IngestSvc     ingestservice.IIngestService
	AnalyticsSvc  analyticsservice.IAnalyticsService
	WithdrawalSvc withdrawalservice.IWithdrawalService
	VideoRepo     videorepo.IVideoRepository
	WsManager     interfaces.WebSocketManager
	Logger        zerolog.Logger
	Config        *config.Config
}

func New(
	ingestSvc ingestservice.IIngestService,
	analyticsSvc analyticsservice.IAnalyticsService,
	withdrawalSvc withdrawalservice.IWithdrawalService,
	videoRepo videorepo.IVideoRepository,
	wsManager interfaces.WebSocketManager,
	logger zerolog.Logger,
	config *config.Config,
) *Handlers {
	return &Handlers{
		IngestSvc:     ingestSvc,
		AnalyticsSvc:  analyticsSvc,
		WithdrawalSvc: withdrawalSvc,
		VideoRepo:     videoRepo,
		WsManager:     wsManager,
		Logger:        logger,
		Config:        config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	eventHandler := NewEventHandler(h.IngestSvc)
	analyticsHandler := NewAnalyticsHandler(h.AnalyticsSvc)
	videoHandler := NewVideoHandler(h.VideoRepo)
	withdrawalHandler := NewWithdrawalHandler(h.WithdrawalSvc)
	wsHandler := NewWebSocketHandler(h.WsManager, h.Config.WebSocket)
	healthHandler := NewHealthHandler()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "King Charmer Streaming Analytics Backend is live & connected!")
	})

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Live event feed for the dashboard
	router.GET("/status", wsHandler.HandleConnection)

	events := router.Group("/events")
	{
		events.POST("/stream", eventHandler.LogStream)
		events.POST("/download", eventHandler.LogDownload)
		events.POST("/view", eventHandler.LogView)
	}

	router.GET("/analytics", analyticsHandler.ProviderBreakdown)
	router.GET("/summary", analyticsHandler.Summary)
	router.GET("/analytics-summary", analyticsHandler.Summary)
	router.GET("/providers/:provider/balance", analyticsHandler.ProviderBalance)

	router.GET("/videos", videoHandler.ListVideos)
	router.POST("/videos", videoHandler.CreateVideo)

	router.POST("/verification-codes", withdrawalHandler.SendVerificationCode)
	router.POST("/withdrawals", withdrawalHandler.RequestWithdrawal)
}
