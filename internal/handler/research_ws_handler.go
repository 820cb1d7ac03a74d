package handler

import (
	"ai-research-be/internal/pkg/logger"
	internalWS "ai-research-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ResearchWsHandler upgrades connections onto the public research event
// feed. The feed is read-only and unauthenticated.
type ResearchWsHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewResearchWsHandler(hub *internalWS.Hub, log logger.ILogger) *ResearchWsHandler {
	return &ResearchWsHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *ResearchWsHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ResearchWsHandler", "Starting WebSocket session", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("ResearchWsHandler", "WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *ResearchWsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
