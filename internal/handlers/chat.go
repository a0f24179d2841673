package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/garuda-sec/garuda/internal/assistant"
	"github.com/garuda-sec/garuda/internal/ratelimit"
)

// ChatHandler exposes the conversational assistant.
type ChatHandler struct {
	assistant *assistant.Assistant
	limiter   *ratelimit.Limiter
	logger    *slog.Logger
}

func NewChatHandler(a *assistant.Assistant, limiter *ratelimit.Limiter, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{assistant: a, limiter: limiter, logger: logger}
}

type chatRequest struct {
	Messages []assistant.Message `json:"messages"`
}

type chatResponse struct {
	Message   string               `json:"message"`
	Citations []assistant.Citation `json:"citations"`
}

// Chat handles POST /api/chat. The assistant itself never fails, so this
// endpoint only errors on malformed JSON.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.limiter.Check(w, r, "chat") {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	reply, citations := h.assistant.Respond(r.Context(), req.Messages)
	if citations == nil {
		citations = []assistant.Citation{}
	}
	writeJSON(w, http.StatusOK, chatResponse{Message: reply, Citations: citations})
}
