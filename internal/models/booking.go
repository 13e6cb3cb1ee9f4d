package models

import (
	"time"
)

type Booking struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    string  `json:"user_name"`
	UserPhone   string  `json:"user_phone"`
	UserAddress string  `json:"user_address"`
	ProviderID  string  `json:"provider_id"`
	Service     string  `json:"service"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	// UserLocation is optional; nil when the requester declined GPS capture.
	UserLocation *Point          `json:"user_location,omitempty"`
	HasReview    bool            `json:"has_review"`
	Provider     ProviderSummary `json:"provider"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CreateBookingRequest struct {
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name"`
	UserPhone   string   `json:"user_phone"`
	UserAddress string   `json:"user_address"`
	ProviderID  string   `json:"provider_id"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
