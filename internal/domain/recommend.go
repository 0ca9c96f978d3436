package domain

import "sort"

// Suitability weights for the three independent recommendation rules.
const (
	landUseFitWeight = 30.0

	severeIntensityWeight   = 25.0 // intensity >= 2.0: prefer high-impact solutions
	moderateIntensityWeight = 20.0 // intensity >= 1.5: prefer mid-impact solutions
	mildIntensityWeight     = 15.0 // otherwise: prefer lightweight solutions

	lowGreenTreeWeight = 20.0 // avg green < 15%: push tree planting
	lowGreenRoofWeight = 15.0 // avg green < 10%: also push green roofs
)

// Recommend ranks all five solution types for a classified location.
// Each solution accumulates suitability from land-use fit, intensity tier,
// and green deficiency; the result is sorted descending with catalog order
// as the stable tiebreak. Always returns exactly five entries; never fails.
func Recommend(est HeatIslandEstimate, area AreaCharacteristic, greens []GreenSpaceSample) SolutionRanking {
	avgGreen := AverageGreenRatio(greens)
	hasGreens := len(greens) > 0

	ranking := make(SolutionRanking, 0, len(SolutionTypes))
	for _, sol := range SolutionTypes {
		spec := catalog[sol]
		var score float64

		if spec.EligibleFor(area) {
			score += landUseFitWeight
		}

		switch {
		case est.Intensity >= 2.0:
			if sol == GreenRoof || sol == TreePlanting {
				score += severeIntensityWeight
			}
		case est.Intensity >= 1.5:
			if sol == CoolPavement || sol == TreePlanting {
				score += moderateIntensityWeight
			}
		default:
			if sol == ShadeStructure || sol == WaterFeature {
				score += mildIntensityWeight
			}
		}

		if hasGreens {
			if avgGreen < 15 && sol == TreePlanting {
				score += lowGreenTreeWeight
			}
			if avgGreen < 10 && sol == GreenRoof {
				score += lowGreenRoofWeight
			}
		}

		ranking = append(ranking, RankedSolution{Solution: sol, Score: score})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}
