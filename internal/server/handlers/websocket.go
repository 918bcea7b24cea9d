package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain/interfaces"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/server/websocket"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
)

// WebSocketHandler upgrades dashboard connections onto the live event feed.
type WebSocketHandler struct {
	wsManager interfaces.WebSocketManager
	wsConfig  config.WebSocketConfig
	upgrader  gws.Upgrader
}

func NewWebSocketHandler(wsManager interfaces.WebSocketManager, cfg config.WebSocketConfig) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		wsConfig:  cfg,
		upgrader: gws.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				// The dashboard is served from arbitrary origins, same as the
				// HTTP surface's open CORS policy.
				return true
			},
		},
	}
}

func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Failed to upgrade to WebSocket",
		})
		return
	}

	client := websocket.NewClient(conn, h.wsConfig)

	if err := h.wsManager.AddClient(client); err != nil {
		log.Error().Err(err).Str("client_id", client.GetID()).Msg("Failed to add WebSocket client")
		conn.Close()
		return
	}

	log.Info().Str("client_id", client.GetID()).Msg("WebSocket client connected")

	defer func() {
		h.wsManager.RemoveClient(client.GetID())
		client.Close()
		log.Info().Str("client_id", client.GetID()).Msg("WebSocket client disconnected")
	}()

	client.HandleConnection()
}
