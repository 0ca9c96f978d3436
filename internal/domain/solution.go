package domain

import "fmt"

// SolutionType is one of the five fixed mitigation categories.
type SolutionType string

const (
	TreePlanting   SolutionType = "tree_planting"
	GreenRoof      SolutionType = "green_roof"
	CoolPavement   SolutionType = "cool_pavement"
	WaterFeature   SolutionType = "water_feature"
	ShadeStructure SolutionType = "shade_structure"
)

// SolutionTypes lists the catalog in declaration order. This order is the
// stable tiebreak for rankings; do not reorder.
var SolutionTypes = []SolutionType{
	TreePlanting,
	GreenRoof,
	CoolPavement,
	WaterFeature,
	ShadeStructure,
}

// SolutionSpec is the fixed catalog entry for one solution type.
type SolutionSpec struct {
	Name           string
	EligibleAreas  []AreaCharacteristic
	MinEffect      float64 // °C cooling, lower bound
	MaxEffect      float64 // °C cooling, upper bound
	BasePoints     int
	BaseDifficulty int // 1-5
}

// EligibleFor reports whether the area classification is in the solution's
// eligible set.
func (s SolutionSpec) EligibleFor(area AreaCharacteristic) bool {
	for _, a := range s.EligibleAreas {
		if a == area {
			return true
		}
	}
	return false
}

// catalog holds the fixed per-solution parameters.
var catalog = map[SolutionType]SolutionSpec{
	TreePlanting: {
		Name:           "street tree planting",
		EligibleAreas:  []AreaCharacteristic{AreaResidential, AreaCommercial, AreaMixed},
		MinEffect:      0.3,
		MaxEffect:      0.8,
		BasePoints:     50,
		BaseDifficulty: 2,
	},
	GreenRoof: {
		Name:           "rooftop greening",
		EligibleAreas:  []AreaCharacteristic{AreaCommercial, AreaIndustrial, AreaMixed},
		MinEffect:      0.5,
		MaxEffect:      1.5,
		BasePoints:     100,
		BaseDifficulty: 4,
	},
	CoolPavement: {
		Name:           "cool pavement",
		EligibleAreas:  []AreaCharacteristic{AreaIndustrial, AreaCommercial},
		MinEffect:      0.2,
		MaxEffect:      0.5,
		BasePoints:     80,
		BaseDifficulty: 3,
	},
	WaterFeature: {
		Name:           "water feature",
		EligibleAreas:  []AreaCharacteristic{AreaCommercial, AreaParkAdjacent, AreaResidential},
		MinEffect:      0.2,
		MaxEffect:      0.4,
		BasePoints:     70,
		BaseDifficulty: 3,
	},
	ShadeStructure: {
		Name:           "shade structure",
		EligibleAreas:  []AreaCharacteristic{AreaResidential, AreaCommercial, AreaMixed},
		MinEffect:      0.1,
		MaxEffect:      0.3,
		BasePoints:     30,
		BaseDifficulty: 1,
	},
}

// Spec returns the catalog entry for a solution type. Fails with
// [ErrUnknownSolutionType] for anything outside the fixed five.
func Spec(sol SolutionType) (SolutionSpec, error) {
	spec, ok := catalog[sol]
	if !ok {
		return SolutionSpec{}, fmt.Errorf("%w: %q", ErrUnknownSolutionType, sol)
	}
	return spec, nil
}
