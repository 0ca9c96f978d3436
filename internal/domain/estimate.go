package domain

import (
	"fmt"
	"math"
)

// Estimation constants. These are policy values carried over from the
// Gyeonggi analysis model, not tunable inputs.
const (
	// BaseAmbientTemperature is the assumed summer baseline in °C; the
	// heat-island intensity is the excess over it.
	BaseAmbientTemperature = 28.0

	// MinIntensity and MaxIntensity bound the estimated intensity in °C.
	MinIntensity = 0.5
	MaxIntensity = 3.0

	// MinGreenRatio and MaxGreenRatio bound the green-coverage ratio (%)
	// used in any intensity computation.
	MinGreenRatio = 5.0
	MaxGreenRatio = 40.0
)

// Estimate derives a heat-island estimate from a district indicator.
// Green coverage below-30% raises intensity; population density raises it up
// to a 20000 people/km² saturation point. When the indicator carries no green
// ratio it is estimated from density. Fails with [ErrInvalidIndicator] when
// the population density is negative.
func Estimate(ind DistrictIndicator) (HeatIslandEstimate, error) {
	if ind.PopulationDensity < 0 {
		return HeatIslandEstimate{}, fmt.Errorf("%w: negative population density %.1f for %q",
			ErrInvalidIndicator, ind.PopulationDensity, ind.District)
	}

	var greenRatio float64
	if ind.GreenRatio != nil {
		greenRatio = clamp(*ind.GreenRatio, MinGreenRatio, MaxGreenRatio)
	} else {
		greenRatio = EstimateGreenRatio(ind.PopulationDensity)
	}

	// green_factor may slightly exceed 1 at very low green ratios; only the
	// final intensity is clamped.
	greenFactor := (30 - greenRatio) / 30
	densityFactor := math.Min(ind.PopulationDensity/20000, 1.0)

	intensity := clamp(0.5+greenFactor*1.5+densityFactor*1.0, MinIntensity, MaxIntensity)
	intensity = round2(intensity)

	return HeatIslandEstimate{
		District:    ind.District,
		Latitude:    ind.Latitude,
		Longitude:   ind.Longitude,
		Intensity:   intensity,
		Temperature: round1(BaseAmbientTemperature + intensity),
		GreenRatio:  round1(greenRatio),
		ObservedAt:  clock.Now(),
	}, nil
}

// EstimateGreenRatio infers a green-coverage ratio (%) from population
// density alone: denser districts are assumed less green, floored at 5%.
func EstimateGreenRatio(density float64) float64 {
	return math.Max(MinGreenRatio, 40-density/500)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
