package models

import (
	"time"
)

const (
	SenderTypeUser     = "user"
	SenderTypeProvider = "provider"
)

// Message is a chat message scoped to a booking. Delivery over the socket is
// best-effort; the persisted row is the source of truth.
type Message struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderType string    `json:"sender_type"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
