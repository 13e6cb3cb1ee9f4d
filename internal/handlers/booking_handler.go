package handlers

import (
	"encoding/json"
	"net/http"

	"sevaBack/internal/models"
	"sevaBack/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.CreateBooking(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "CreateBooking")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Service.GetBookingByID(r.Context(), getParam(r, "id"))
	if err != nil {
		handleServiceError(w, err, "GetBookingByID")
		return
	}
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetBookingsByUserID(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetBookingsByUserID(r.Context(), getParam(r, "user_id"))
	if err != nil {
		handleServiceError(w, err, "GetBookingsByUserID")
		return
	}
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) GetBookingsByProviderID(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetBookingsByProviderID(r.Context(), getParam(r, "id"))
	if err != nil {
		handleServiceError(w, err, "GetBookingsByProviderID")
		return
	}
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.UpdateBookingStatus(r.Context(), getParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, err, "UpdateBookingStatus")
		return
	}
	json.NewEncoder(w).Encode(booking)
}
