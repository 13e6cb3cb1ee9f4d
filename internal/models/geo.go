package models

// Point is a WGS84 coordinate pair, longitude first to match the stored layout.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Valid reports whether the point lies within coordinate bounds.
func (p Point) Valid() bool {
	return p.Longitude >= -180 && p.Longitude <= 180 && p.Latitude >= -90 && p.Latitude <= 90
}
