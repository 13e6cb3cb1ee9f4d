package handlers

import (
	"encoding/json"
	"net/http"

	"sevaBack/internal/models"
	"sevaBack/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var msg models.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateMessage(r.Context(), msg)
	if err != nil {
		handleServiceError(w, err, "CreateMessage")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *MessageHandler) GetMessagesByBookingID(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.GetMessagesByBookingID(r.Context(), getParam(r, "booking_id"))
	if err != nil {
		handleServiceError(w, err, "GetMessagesByBookingID")
		return
	}
	json.NewEncoder(w).Encode(messages)
}
