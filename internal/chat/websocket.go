package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type    string `json:"type"` // "message" or "suggestion"
	Content string `json:"content"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type    string `json:"type"` // "response" or "error"
	Content string `json:"content"`
	Kind    string `json:"kind,omitempty"`
	Topic   string `json:"topic,omitempty"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// The connection outlives the per-request timeout middleware.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chat: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.sendError(conn, "invalid message format")
			continue
		}

		switch req.Type {
		case "message", "suggestion":
			h.handleSocketMessage(ctx, conn, req)
		default:
			h.sendError(conn, "unknown message type: "+req.Type)
		}
	}
}

func (h *Handler) handleSocketMessage(ctx context.Context, conn *websocket.Conn, req wsRequest) {
	out, err := h.gateway.Reply(ctx, IncomingMessage{Channel: ChannelWebSocket, Text: req.Content})
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}

	h.send(conn, wsResponse{
		Type:    "response",
		Content: out.Text,
		Kind:    out.Kind,
		Topic:   out.Topic,
	})
}

func (h *Handler) send(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, wsResponse{Type: "error", Content: message})
}
