package domain

import "strconv"

// Meters in one statute mile.
const MetersPerMile = 1609.34

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as the "lat,lng" token used by the Places API.
func (c Coordinates) LocationParam() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// MilesToMeters converts a search radius given in miles to meters.
func MilesToMeters(miles float64) float64 {
	return miles * MetersPerMile
}
