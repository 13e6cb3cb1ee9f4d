package models

import (
	"time"
)

// Review is immutable once created. Requester identity and name are copied
// from the booking so the review survives independent of booking mutation.
type Review struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	ProviderID string    `json:"provider_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
