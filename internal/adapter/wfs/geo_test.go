package wfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEPSG5186ToWGS84_FalseOrigin(t *testing.T) {
	lat, lon := epsg5186ToWGS84(falseEasting, falseNorthing)
	assert.Equal(t, 38.0, lat)
	assert.Equal(t, 127.0, lon)
}

func TestEPSG5186ToWGS84_GyeonggiRange(t *testing.T) {
	// Coordinates roughly covering Suwon city hall.
	lat, lon := epsg5186ToWGS84(202500, 518000)
	assert.InDelta(t, 37.26, lat, 0.1)
	assert.InDelta(t, 127.03, lon, 0.1)
}

func TestEPSG5186ToWGS84_NorthIncreasesLat(t *testing.T) {
	lat1, _ := epsg5186ToWGS84(falseEasting, 550000)
	lat2, _ := epsg5186ToWGS84(falseEasting, 560000)
	assert.Greater(t, lat2, lat1)

	_, lon1 := epsg5186ToWGS84(190000, 550000)
	_, lon2 := epsg5186ToWGS84(210000, 550000)
	assert.Greater(t, lon2, lon1)
}

func TestCentroid(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		x, y, ok := centroid([][][]float64{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}})
		assert.True(t, ok)
		assert.Equal(t, 5.0, x)
		assert.Equal(t, 5.0, y)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, ok := centroid(nil)
		assert.False(t, ok)

		_, _, ok = centroid([][][]float64{{}})
		assert.False(t, ok)
	})

	t.Run("short point", func(t *testing.T) {
		_, _, ok := centroid([][][]float64{{{1}}})
		assert.False(t, ok)
	})
}
