package geo

import (
	"github.com/golang/geo/s2"
)

// GreatCircleMiles returns the straight-line (great-circle) distance between a and b in miles.
func GreatCircleMiles(a, b Coordinate) float64 {
	aLatLng := s2.LatLngFromDegrees(a.Lat, a.Lon)
	bLatLng := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return aLatLng.Distance(bLatLng).Radians() * earthRadiusMiles
}
