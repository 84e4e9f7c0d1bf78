package handler

import (
	"encoding/json"
	"net/http"

	"github.com/irahulsinghrajput/BrandMark/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat handles POST /api/chat. Provider failures still answer 200 with a
// fallback reply; only bad input is a 400.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{Reply: service.ReplyEmptyMessage})
		return
	}
	reply, err := h.chatService.Reply(r.Context(), req.Message)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{Reply: reply})
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
