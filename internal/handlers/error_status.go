package handlers

import (
	"errors"
	"log"
	"net/http"

	"sevaBack/internal/models"
)

// errorResponse maps a core error to its HTTP status and client-facing
// message. Each error kind maps to exactly one status family so the mapping
// stays consistent across endpoints. A zero status means the error is not a
// client error.
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrProviderNotFound):
		return http.StatusNotFound, "Provider not found"
	case errors.Is(err, models.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, models.ErrReviewNotFound):
		return http.StatusNotFound, "Review not found"
	case errors.Is(err, models.ErrDuplicatePhone):
		return http.StatusConflict, "Phone number already registered"
	case errors.Is(err, models.ErrAlreadyReviewed):
		return http.StatusConflict, "This booking has already been reviewed"
	case errors.Is(err, models.ErrBookingNotCompleted):
		return http.StatusBadRequest, "Can only review completed bookings"
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusBadRequest, "Status transition not allowed"
	case errors.Is(err, models.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid status"
	case errors.Is(err, models.ErrInvalidCoordinates):
		return http.StatusBadRequest, "Latitude and longitude out of range"
	case errors.Is(err, models.ErrInvalidCategory):
		return http.StatusBadRequest, "Unknown service category"
	case errors.Is(err, models.ErrEmptyCategories):
		return http.StatusBadRequest, "Select at least one service"
	case errors.Is(err, models.ErrInvalidPrice):
		return http.StatusBadRequest, "Price must be at least 1"
	case errors.Is(err, models.ErrInvalidRating):
		return http.StatusBadRequest, "Rating must be between 1 and 5"
	case errors.Is(err, models.ErrInvalidComment):
		return http.StatusBadRequest, "Comment is required and limited to 1000 characters"
	case errors.Is(err, models.ErrMissingFields):
		return http.StatusBadRequest, "All fields are required"
	}
	return 0, ""
}

// handleServiceError writes the mapped client error, or reports the store as
// unavailable for anything unrecognized. Precondition failures are never
// swallowed; unexpected errors are logged with their operation name.
func handleServiceError(w http.ResponseWriter, err error, op string) {
	if code, msg := errorResponse(err); code != 0 {
		http.Error(w, msg, code)
		return
	}
	log.Printf("%s error: %v", op, err)
	http.Error(w, "Service temporarily unavailable", http.StatusServiceUnavailable)
}
