package handlers

import (
	"encoding/json"
	"net/http"

	"sevaBack/internal/models"
	"sevaBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	review, err := h.Service.SubmitReview(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "CreateReview")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

func (h *ReviewHandler) GetReviewByBookingID(w http.ResponseWriter, r *http.Request) {
	review, err := h.Service.GetReviewByBookingID(r.Context(), getParam(r, "booking_id"))
	if err != nil {
		handleServiceError(w, err, "GetReviewByBookingID")
		return
	}
	json.NewEncoder(w).Encode(review)
}

func (h *ReviewHandler) GetReviewsByProviderID(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetReviewsByProviderID(r.Context(), getParam(r, "provider_id"))
	if err != nil {
		handleServiceError(w, err, "GetReviewsByProviderID")
		return
	}
	json.NewEncoder(w).Encode(reviews)
}
