package handler

import (
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/pkg/logger"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/service"
	internalWS "github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatHandler upgrades /ws requests into realtime chat sessions.
type ChatHandler struct {
	hub    *internalWS.Hub
	agents service.IAgentService
	logger logger.ILogger

	// Demo identity used when the client does not name one.
	defaultUserId         uuid.UUID
	defaultConversationId uuid.UUID
}

func NewChatHandler(
	hub *internalWS.Hub,
	agents service.IAgentService,
	log logger.ILogger,
	defaultUserId, defaultConversationId uuid.UUID,
) *ChatHandler {
	return &ChatHandler{
		hub:                   hub,
		agents:                agents,
		logger:                log,
		defaultUserId:         defaultUserId,
		defaultConversationId: defaultConversationId,
	}
}

func (h *ChatHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws", h.ServeWs)
}

// ServeWs handles websocket requests from the peer. Identity comes from
// query params and falls back to the seeded demo user.
func (h *ChatHandler) ServeWs(c *fiber.Ctx) error {
	userId := h.defaultUserId
	if raw := c.Query("userId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
		}
		userId = parsed
	}

	conversationId := h.defaultConversationId
	if raw := c.Query("conversationId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid conversation ID format"})
		}
		conversationId = parsed
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ChatHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userId})
			internalWS.ServeWs(h.hub, conn, userId, conversationId, h.agents)
			h.logger.Info("ChatHandler", "WebSocket session ended", map[string]interface{}{"user_id": userId})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
