package domain

import "math"

// Scoring term caps. The total is additionally capped at 100.
const (
	maxIntensityTerm   = 40.0
	maxTemperatureTerm = 20.0
	maxGreenTerm       = 20.0
	maxWeatherTerm     = 20.0

	// fallbackGreenTerm is awarded when no green-space samples are available.
	fallbackGreenTerm = 15.0
)

// Score computes the 0-100 mitigation priority for an estimate. Green-space
// samples and the weather reading are optional; missing inputs fall back to
// documented defaults (a fixed green term, no weather term). Never fails.
func Score(est HeatIslandEstimate, greens []GreenSpaceSample, weather *WeatherReading) float64 {
	score := math.Min(est.Intensity*16, maxIntensityTerm)
	score += temperatureTerm(est.Temperature)
	score += greenDeficiencyTerm(greens)
	if weather != nil {
		score += weatherTerm(*weather)
	}
	return math.Min(score, 100)
}

func temperatureTerm(temp float64) float64 {
	switch {
	case temp >= 35:
		return 20
	case temp >= 32:
		return 15
	case temp >= 30:
		return 10
	case temp >= 28:
		return 5
	default:
		return 0
	}
}

// greenDeficiencyTerm rewards low average green coverage around the location.
func greenDeficiencyTerm(greens []GreenSpaceSample) float64 {
	if len(greens) == 0 {
		return fallbackGreenTerm
	}
	return math.Max(0, maxGreenTerm-AverageGreenRatio(greens)*0.5)
}

// weatherTerm rewards conditions that worsen perceived heat: high humidity
// raises apparent temperature, weak wind prevents heat dispersal.
func weatherTerm(w WeatherReading) float64 {
	var term float64
	switch {
	case w.Humidity >= 70:
		term += 10
	case w.Humidity >= 60:
		term += 5
	}
	switch {
	case w.WindSpeed < 1.0:
		term += 10
	case w.WindSpeed < 2.0:
		term += 5
	}
	return term
}

// AverageGreenRatio returns the mean green-coverage ratio of the samples,
// or 0 when there are none.
func AverageGreenRatio(greens []GreenSpaceSample) float64 {
	if len(greens) == 0 {
		return 0
	}
	var sum float64
	for _, g := range greens {
		sum += g.GreenRatio
	}
	return sum / float64(len(greens))
}
