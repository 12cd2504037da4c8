// Package geo implements great-circle math for distance annotations.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

type Coordinate struct {
	Lat float64
	Lng float64
}

// Distance returns the haversine great-circle distance between a and b in
// kilometers. Coincident points yield exactly 0; the intermediate term is
// clamped so antipodal points stay inside asin's domain.
func Distance(a, b Coordinate) float64 {
	if a == b {
		return 0
	}

	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// RoundKm1 rounds a distance to one decimal place for presentation.
func RoundKm1(km float64) float64 {
	return math.Round(km*10) / 10
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
