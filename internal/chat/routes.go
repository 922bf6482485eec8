package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// messageRequest is the body of POST /api/chat.
type messageRequest struct {
	Message string `json:"message"`
}

// messageResponse is the reply to POST /api/chat.
type messageResponse struct {
	Response string `json:"response"`
	Kind     string `json:"kind"`
	Topic    string `json:"topic,omitempty"`
}

// Handler serves the chat widget endpoints.
type Handler struct {
	gateway     *Gateway
	suggestions []string
}

// NewHandler creates a Handler. Empty suggestions fall back to DefaultSuggestions.
func NewHandler(gateway *Gateway, suggestions []string) *Handler {
	if len(suggestions) == 0 {
		suggestions = DefaultSuggestions
	}
	return &Handler{gateway: gateway, suggestions: suggestions}
}

// RegisterRoutes mounts the chat endpoints onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/chat", h.handleMessage)
	r.Get("/api/chat/suggestions", h.handleSuggestions)
	r.Get("/ws/chat", h.handleWebSocket)
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	out, err := h.gateway.Reply(r.Context(), IncomingMessage{Channel: ChannelHTTP, Text: req.Message})
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}
		log.Printf("chat: reply: %v", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Response: out.Text,
		Kind:     out.Kind,
		Topic:    out.Topic,
	})
}

func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.suggestions)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
