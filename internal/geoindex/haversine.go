package geoindex

import (
	"math"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometers. Inputs span tens of kilometers, so a spherical-earth model is
// required rather than a flat-plane approximation.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to 0.1 km for display.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
