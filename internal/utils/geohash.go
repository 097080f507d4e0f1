package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/towjek/internal/pkg/models"
)

const (
	earthRadiusKm = 6371.0
	kmPerDegree   = 111.32
	// maxGeohashPrecision is the finest precision EncodeLocation is asked for in practice
	maxGeohashPrecision = 12
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

// cellSizeKm returns the smaller side of a geohash cell at precision near latitude lat
func cellSizeKm(precision uint, lat float64) float64 {
	bits := 5 * precision
	lonBits := (bits + 1) / 2
	latBits := bits / 2
	height := 180.0 / math.Pow(2, float64(latBits)) * kmPerDegree
	width := 360.0 / math.Pow(2, float64(lonBits)) * kmPerDegree * math.Cos(lat*math.Pi/180.0)
	return math.Min(height, width)
}

// CoveringPrefixes returns geohash prefixes whose cells together cover every point within
// radiusKm of center: the center cell plus its eight neighbors at the finest precision
// (up to maxPrecision) whose cell is at least radiusKm wide. It returns nil when the radius
// is too large for any prefix to narrow the search.
func CoveringPrefixes(center GeoPoint, radiusKm float64, maxPrecision uint) []string {
	if maxPrecision > maxGeohashPrecision {
		maxPrecision = maxGeohashPrecision
	}

	var precision uint
	for p := maxPrecision; p >= 1; p-- {
		if cellSizeKm(p, center.Latitude) >= radiusKm {
			precision = p
			break
		}
	}
	if precision == 0 {
		return nil
	}

	hash := geohash.EncodeWithPrecision(center.Latitude, center.Longitude, precision)
	prefixes := append([]string{hash}, geohash.Neighbors(hash)...)

	seen := make(map[string]struct{}, len(prefixes))
	unique := prefixes[:0]
	for _, p := range prefixes {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
