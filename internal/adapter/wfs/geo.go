package wfs

import "math"

// EPSG:5186 (Korea 2000 / Central Belt) projection parameters over the
// GRS80 ellipsoid.
const (
	originLat     = 38.0  // central belt origin latitude
	originLon     = 127.0 // central belt origin longitude
	falseEasting  = 200000.0
	falseNorthing = 600000.0

	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257222101
)

// epsg5186ToWGS84 converts Korea 2000 Central Belt coordinates to WGS84
// latitude/longitude using a simplified inverse projection. Accuracy is a
// few meters at Gyeonggi latitudes, which is enough for district-level
// analysis; this is deliberately not a full geodetic transform.
func epsg5186ToWGS84(x, y float64) (lat, lon float64) {
	e2 := 2*flattening - flattening*flattening

	xShifted := x - falseEasting
	yShifted := y - falseNorthing

	latRad := originLat * math.Pi / 180
	m0 := semiMajorAxis * (1 - e2) / math.Pow(1-e2*math.Sin(latRad)*math.Sin(latRad), 1.5)

	lat = originLat + (yShifted/m0)*(180/math.Pi)

	cosLat := math.Cos(lat * math.Pi / 180)
	sinLat := math.Sin(lat * math.Pi / 180)
	n := semiMajorAxis / math.Sqrt(1-e2*sinLat*sinLat)
	lon = originLon + (xShifted/(n*cosLat))*(180/math.Pi)

	return lat, lon
}

// centroid computes the average point of a polygon's outer ring. GeoJSON
// nests rings one level deeper than line strings; the first ring is the
// outline.
func centroid(coordinates [][][]float64) (x, y float64, ok bool) {
	if len(coordinates) == 0 || len(coordinates[0]) == 0 {
		return 0, 0, false
	}
	ring := coordinates[0]
	for _, point := range ring {
		if len(point) < 2 {
			return 0, 0, false
		}
		x += point[0]
		y += point[1]
	}
	n := float64(len(ring))
	return x / n, y / n, true
}
