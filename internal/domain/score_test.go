package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("no samples and no weather uses fallback green term", func(t *testing.T) {
		est := HeatIslandEstimate{District: "수원시", Intensity: 2.74, Temperature: 30.7}
		// min(2.74*16, 40)=40 capped + 10 (30≤t<32) + 15 fallback = 65.
		assert.Equal(t, 65.0, Score(est, nil, nil))
	})

	t.Run("temperature tiers", func(t *testing.T) {
		cases := []struct {
			temp float64
			want float64
		}{
			{36, 20}, {35, 20}, {33, 15}, {32, 15}, {31, 10}, {30, 10}, {29, 5}, {28, 5}, {27, 0},
		}
		for _, tc := range cases {
			est := HeatIslandEstimate{Intensity: 0.5, Temperature: tc.temp}
			// intensity term 8 + fallback 15 + temperature term.
			assert.Equalf(t, 8+15+tc.want, Score(est, nil, nil), "temperature %.0f", tc.temp)
		}
	})

	t.Run("green samples reduce the deficiency term", func(t *testing.T) {
		est := HeatIslandEstimate{Intensity: 1.0, Temperature: 29}
		lush := []GreenSpaceSample{{GreenRatio: 40}, {GreenRatio: 44}}
		sparse := []GreenSpaceSample{{GreenRatio: 6}, {GreenRatio: 10}}

		// avg 42 → max(0, 20-21)=0; avg 8 → 20-4=16.
		assert.Equal(t, 16+5+0.0, Score(est, lush, nil))
		assert.Equal(t, 16+5+16.0, Score(est, sparse, nil))
	})

	t.Run("weather term caps at 20", func(t *testing.T) {
		est := HeatIslandEstimate{Intensity: 1.0, Temperature: 27}
		calm := &WeatherReading{Humidity: 75, WindSpeed: 0.5}  // 10+10
		mild := &WeatherReading{Humidity: 65, WindSpeed: 1.5}  // 5+5
		breezy := &WeatherReading{Humidity: 40, WindSpeed: 3}  // 0

		assert.Equal(t, 16+15+20.0, Score(est, nil, calm))
		assert.Equal(t, 16+15+10.0, Score(est, nil, mild))
		assert.Equal(t, 16+15+0.0, Score(est, nil, breezy))
	})

	t.Run("total clamped to 100", func(t *testing.T) {
		est := HeatIslandEstimate{Intensity: 3.0, Temperature: 36}
		sparse := []GreenSpaceSample{{GreenRatio: 0}}
		calm := &WeatherReading{Humidity: 80, WindSpeed: 0.2}
		// 40 + 20 + 20 + 20 = 100 exactly; verify it never exceeds.
		assert.Equal(t, 100.0, Score(est, sparse, calm))
	})

	t.Run("monotonically non-decreasing in intensity", func(t *testing.T) {
		prev := -1.0
		for intensity := 0.5; intensity <= 3.0; intensity += 0.1 {
			est := HeatIslandEstimate{Intensity: intensity, Temperature: 30}
			s := Score(est, nil, nil)
			assert.GreaterOrEqual(t, s, prev)
			assert.LessOrEqual(t, s, 100.0)
			assert.GreaterOrEqual(t, s, 0.0)
			prev = s
		}
	})

	t.Run("pure function", func(t *testing.T) {
		est := HeatIslandEstimate{District: "안양시", Intensity: 1.8, Temperature: 29.8}
		greens := []GreenSpaceSample{{GreenRatio: 12}}
		weather := &WeatherReading{Humidity: 68, WindSpeed: 1.2}
		assert.Equal(t, Score(est, greens, weather), Score(est, greens, weather))
	})
}

func TestAverageGreenRatio(t *testing.T) {
	assert.Equal(t, 0.0, AverageGreenRatio(nil))
	assert.Equal(t, 15.0, AverageGreenRatio([]GreenSpaceSample{{GreenRatio: 10}, {GreenRatio: 20}}))
}
