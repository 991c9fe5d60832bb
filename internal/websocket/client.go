package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/dto"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	processTimeout = 30 * time.Second
)

// Client is a middleman between the websocket connection and the hub.
// Inbound frames are handled one at a time on the read loop, so a
// conversation's typing choreography never interleaves on a single
// connection.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// UserID associated with this connection
	UserID uuid.UUID

	// ConversationID used when an inbound envelope does not name one.
	ConversationID uuid.UUID

	// Buffered channel of outbound messages.
	Send chan []byte

	agents service.IAgentService
}

// readPump pumps messages from the websocket connection into the agent
// pipeline.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Hub", "Unexpected close", map[string]interface{}{
					"user_id": c.UserID,
					"error":   err.Error(),
				})
			}
			break
		}
		c.handleFrame(data)
	}
}

// handleFrame runs the full choreography for one inbound frame:
// typing_start, dispatch, typing_end, then the agent response (or the
// generic error envelope when anything failed).
func (c *Client) handleFrame(data []byte) {
	env, err := ParseEnvelope(data)
	if err != nil {
		c.Hub.logger.Warn("Hub", "Rejected malformed frame", map[string]interface{}{
			"user_id": c.UserID,
			"error":   err.Error(),
		})
		c.enqueue(&Envelope{Type: TypeError, Content: "Failed to process message"})
		return
	}

	if env.Type != TypeUserMessage {
		return
	}

	conversationId := c.ConversationID
	if env.ConversationId != nil {
		conversationId = *env.ConversationId
	}

	c.enqueue(&Envelope{Type: TypeTypingStart, ConversationId: env.ConversationId})

	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	reply := c.agents.ProcessMessage(ctx, c.UserID, conversationId, env.Content)
	cancel()

	c.enqueue(&Envelope{Type: TypeTypingEnd, ConversationId: env.ConversationId})

	c.deliver(reply)
}

// deliver routes the reply: errors go only to this connection, agent
// responses fan out to every device the user has.
func (c *Client) deliver(reply *dto.AgentReply) {
	if reply.IsError {
		c.enqueue(&Envelope{Type: TypeError, Content: reply.Content})
		return
	}

	conversationId := reply.ConversationId
	c.Hub.Send(c.UserID, &Envelope{
		Type:           TypeAgentResponse,
		ConversationId: &conversationId,
		Content:        reply.Content,
		AgentType:      reply.AgentType,
		Metadata:       reply.Metadata,
	})
}

// enqueue serializes an envelope onto this connection's send buffer.
func (c *Client) enqueue(env *Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		c.Hub.logger.Error("Hub", "Failed to marshal envelope", map[string]interface{}{"error": err.Error()})
		return
	}
	select {
	case c.Send <- data:
	default:
		c.Hub.logger.Warn("Hub", "Client send buffer full, dropping frame", map[string]interface{}{
			"user_id": c.UserID,
		})
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
