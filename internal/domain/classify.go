package domain

import "strings"

// Keyword fragments matched against district names. These are Korean
// place-name conventions from the Gyeonggi district data; matching is plain
// substring containment and therefore script-sensitive.
var (
	industrialKeywords = []string{"산업", "공단", "단지"}
	commercialKeywords = []string{"상업", "역", "시장", "백화점"}
)

// parkAdjacentMinArea is the park area (m²) above which a nearby green-space
// sample marks the location as park-adjacent.
const parkAdjacentMinArea = 5000.0

// Classify assigns a land-use character to an estimated location.
// Rules apply in order, first match wins: industrial keyword in the district
// name, commercial keyword, a large park among the samples, high average
// green coverage (residential), otherwise mixed. Name matching is a
// best-effort heuristic; partial overlaps between district names can
// misclassify. Never fails.
func Classify(est HeatIslandEstimate, greens []GreenSpaceSample) AreaCharacteristic {
	if containsAny(est.District, industrialKeywords) {
		return AreaIndustrial
	}
	if containsAny(est.District, commercialKeywords) {
		return AreaCommercial
	}
	for _, g := range greens {
		if g.ParkArea > parkAdjacentMinArea {
			return AreaParkAdjacent
		}
	}
	if len(greens) > 0 && AverageGreenRatio(greens) > 30 {
		return AreaResidential
	}
	return AreaMixed
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
