package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"ai-resume-be/internal/pkg/logger"
	"ai-resume-be/internal/repository/memory"
	internalWS "ai-resume-be/internal/websocket"
)

// ScoreFeedHandler upgrades score-feed requests to websocket connections.
// Sessions are unauthenticated; knowing the session id is the capability.
type ScoreFeedHandler struct {
	sessionRepo *memory.SessionRepository
	hub         *internalWS.Hub
	logger      logger.ILogger
}

func NewScoreFeedHandler(sessionRepo *memory.SessionRepository, hub *internalWS.Hub, log logger.ILogger) *ScoreFeedHandler {
	return &ScoreFeedHandler{
		sessionRepo: sessionRepo,
		hub:         hub,
		logger:      log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *ScoreFeedHandler) ServeWs(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	// Reject connections for sessions that do not exist or already expired.
	if _, found := h.sessionRepo.Get(sessionID.String()); !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ScoreFeedHandler", "Starting score feed session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("ScoreFeedHandler", "Score feed session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the score feed websocket route.
func (h *ScoreFeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/v1/score/:sessionId", h.ServeWs)
}
