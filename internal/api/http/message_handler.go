package http

import (
	"net/http"

	"vecitools-backend/internal/service"
)

type MessageHandler struct {
	msgSvc service.MessageService
}

func NewMessageHandler(msgSvc service.MessageService) *MessageHandler {
	return &MessageHandler{msgSvc: msgSvc}
}

type sendMessageRequest struct {
	ReceiverID int32  `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required,max=5000"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	msg, err := h.msgSvc.Send(r.Context(), actorFrom(r), req.ReceiverID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.msgSvc.Contacts(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	otherID, err := pathID(r, "otherUserId")
	if err != nil {
		writeError(w, err)
		return
	}
	msgs, err := h.msgSvc.Conversation(r.Context(), actorFrom(r), otherID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
