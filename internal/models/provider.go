package models

import (
	"time"
)

type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Provider struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Services  []string  `json:"services"`
	Price     float64   `json:"price"`
	Address   string    `json:"address"`
	Location  Point     `json:"location"`
	Rating    Rating    `json:"rating"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProviderSummary is the view joined onto bookings for display.
type ProviderSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Service string  `json:"service"`
	Price   float64 `json:"price"`
	Address string  `json:"address"`
}

// NearbyProvider is a search hit enriched with the computed distance.
type NearbyProvider struct {
	Provider
	DistanceKm float64 `json:"distance_km"`
}

type RegisterProviderRequest struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Services []string `json:"services"`
	// Service is accepted as a single-category alternative to Services for
	// older clients that submit one value.
	Service   string  `json:"service,omitempty"`
	Price     float64 `json:"price"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
