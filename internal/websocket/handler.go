package websocket

import (
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// WelcomeContent greets every new connection before any frame exchange.
const WelcomeContent = `Welcome to Viyara StudyBot! I'm here to help you learn any subject. Try commands like "Explain Newton's Laws", "Quiz me on photosynthesis", or "Motivate me".`

// ServeWs handles websocket requests from the peer. It blocks until the
// connection closes.
func ServeWs(hub *Hub, c *websocket.Conn, userID, conversationID uuid.UUID, agents service.IAgentService) {
	client := &Client{
		Hub:            hub,
		Conn:           c,
		UserID:         userID,
		ConversationID: conversationID,
		Send:           make(chan []byte, 256),
		agents:         agents,
	}
	client.Hub.register <- client

	go client.writePump()

	client.enqueue(&Envelope{
		Type:      TypeAgentResponse,
		AgentType: "explainer",
		Content:   WelcomeContent,
	})

	client.readPump() // Run readPump in current goroutine (handler)
}
