package domain

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

// PerceivedImprovementFactor converts a cooling effect into the estimated
// perceived-temperature improvement reported in justifications.
const PerceivedImprovementFactor = 1.5

// ComposeMission builds a mission for an estimated location, its priority
// score, and a chosen solution type. The cooling effect scales linearly with
// the priority score inside the solution's declared range, the reward grows
// with priority, and the difficulty is the solution's fixed base value.
// Fails with [ErrUnknownSolutionType] for a solution outside the catalog.
func ComposeMission(est HeatIslandEstimate, priority float64, sol SolutionType) (GeneratedMission, error) {
	spec, err := Spec(sol)
	if err != nil {
		return GeneratedMission{}, err
	}
	bundle := templates[sol]

	coolingEffect := round2(spec.MinEffect + (priority/100)*(spec.MaxEffect-spec.MinEffect))
	pointsReward := int(math.Floor(float64(spec.BasePoints) * (1 + priority/200)))

	// Variant selection is a hash of the district name: stable per district,
	// varied across districts. The original picked variants at random, which
	// broke reproducibility.
	variant := districtHash(est.District)

	return GeneratedMission{
		Title:         fmt.Sprintf(bundle.Titles[variant%uint32(len(bundle.Titles))], est.District),
		Description:   fmt.Sprintf(bundle.Descriptions[variant%uint32(len(bundle.Descriptions))], est.District),
		Solution:      sol,
		PointsReward:  pointsReward,
		Difficulty:    spec.BaseDifficulty,
		CoolingEffect: coolingEffect,
		PriorityScore: priority,
		Justification: justification(est, sol, coolingEffect),
		Latitude:      est.Latitude,
		Longitude:     est.Longitude,
		District:      est.District,
		GeneratedAt:   clock.Now(),
	}, nil
}

// intensityTier labels an intensity for justification templates.
func intensityTier(intensity float64) string {
	switch {
	case intensity >= 2.0:
		return "severe"
	case intensity >= 1.5:
		return "moderate"
	default:
		return "mild"
	}
}

// justification renders the analysis narrative for a mission: the tier
// assessment, the solution rationale, and the expected effect including the
// derived perceived-temperature improvement.
func justification(est HeatIslandEstimate, sol SolutionType, coolingEffect float64) string {
	var assessment string
	switch intensityTier(est.Intensity) {
	case "severe":
		assessment = fmt.Sprintf(
			"%s runs +%.2f°C above its surroundings (severe) at %.1f°C. Immediate mitigation is needed.",
			est.District, est.Intensity, est.Temperature)
	case "moderate":
		assessment = fmt.Sprintf(
			"%s shows a moderate heat island of +%.2f°C at %.1f°C. Preventive action is recommended before it worsens.",
			est.District, est.Intensity, est.Temperature)
	default:
		assessment = fmt.Sprintf(
			"%s has a comparatively mild heat island of +%.2f°C at %.1f°C. Maintaining the current thermal environment is the goal.",
			est.District, est.Intensity, est.Temperature)
	}

	var b strings.Builder
	b.WriteString(assessment)
	b.WriteString("\n\nRecommended measure: ")
	b.WriteString(catalog[sol].Name)
	b.WriteString(". ")
	b.WriteString(templates[sol].Rationale)
	fmt.Fprintf(&b, "\n\nExpected cooling: -%.2f°C, with a perceived-temperature improvement of about %.1f°C.",
		coolingEffect, round1(coolingEffect*PerceivedImprovementFactor))
	return b.String()
}

func districtHash(district string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(district))
	return h.Sum32()
}
