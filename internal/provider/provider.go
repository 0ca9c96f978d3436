// Package provider implements domain.IndicatorProvider backings: a live
// provider over the Gyeonggi Climate Platform and a seeded synthetic
// generator for mock mode, tests, and fallback.
package provider

import (
	"context"
	"math"
)

// ParkRecord is one park feature as delivered by the climate platform,
// with coordinates already converted to WGS84.
type ParkRecord struct {
	UID         string
	District    string  // 시군구 name
	Category    string  // 대분류
	Subcategory string  // 중분류
	Area        float64 // m², 0 when the feature carried none
	Latitude    float64
	Longitude   float64
}

// ParkSource supplies park features, optionally filtered by district name.
// Implementations must be safe for concurrent use.
type ParkSource interface {
	Parks(ctx context.Context, districtFilter string, maxFeatures int) ([]ParkRecord, error)
}

// approxKmPerDegree converts a flat lat/lon offset into kilometers at
// Gyeonggi latitudes. Crude, but consistent with district-scale filtering.
const approxKmPerDegree = 111.0

// withinRadius reports whether a point lies within radiusKm of a center
// using a flat-earth approximation.
func withinRadius(lat, lon, centerLat, centerLon, radiusKm float64) bool {
	dLat := lat - centerLat
	dLon := lon - centerLon
	distKm := math.Sqrt(dLat*dLat+dLon*dLon) * approxKmPerDegree
	return distKm <= radiusKm
}
