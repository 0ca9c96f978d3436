package domain

import (
	"context"
	"time"
)

// DistrictIndicator is the raw per-district input record supplied by an
// indicator provider. Immutable once read.
type DistrictIndicator struct {
	District          string   `json:"district"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	PopulationDensity float64  `json:"population_density"`   // people/km², must be >= 0
	GreenRatio        *float64 `json:"green_ratio,omitempty"` // percent, nil when unknown
}

// HeatIslandEstimate is the derived heat-island record for one district.
type HeatIslandEstimate struct {
	District    string    `json:"district"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Temperature float64   `json:"temperature"`           // °C, absolute
	Intensity   float64   `json:"heat_island_intensity"` // °C above ambient baseline, [0.5, 3.0]
	GreenRatio  float64   `json:"green_coverage_ratio"`  // percent used in the computation, [5, 40]
	ObservedAt  time.Time `json:"observed_at"`
}

// GreenSpaceSample describes one green space near an analyzed location.
type GreenSpaceSample struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	GreenRatio  float64 `json:"green_coverage_ratio"` // percent
	TreeDensity float64 `json:"tree_density"`         // trees/ha
	ParkArea    float64 `json:"park_area"`            // m²
	District    string  `json:"district,omitempty"`
	ParkName    string  `json:"park_name,omitempty"`
}

// WeatherReading is an ambient weather observation near an analyzed location.
type WeatherReading struct {
	Temperature    float64   `json:"temperature"`               // °C
	Humidity       float64   `json:"humidity"`                  // percent
	WindSpeed      float64   `json:"wind_speed"`                // m/s
	SolarRadiation float64   `json:"solar_radiation,omitempty"` // W/m²
	ObservedAt     time.Time `json:"observed_at"`
}

// AreaCharacteristic is the categorical land-use character of a location.
type AreaCharacteristic string

const (
	AreaResidential  AreaCharacteristic = "residential"
	AreaCommercial   AreaCharacteristic = "commercial"
	AreaIndustrial   AreaCharacteristic = "industrial"
	AreaMixed        AreaCharacteristic = "mixed"
	AreaParkAdjacent AreaCharacteristic = "park_adjacent"
)

// RankedSolution pairs a solution type with its suitability score.
type RankedSolution struct {
	Solution SolutionType `json:"solution"`
	Score    float64      `json:"score"`
}

// SolutionRanking is all five solution types ordered by descending
// suitability. The first [RecommendedCount] entries are the recommended
// solutions exposed externally.
type SolutionRanking []RankedSolution

// RecommendedCount is how many top-ranked solutions are surfaced to callers.
const RecommendedCount = 3

// Recommended returns the top-ranked subsequence of the ranking.
func (r SolutionRanking) Recommended() []SolutionType {
	n := min(RecommendedCount, len(r))
	out := make([]SolutionType, n)
	for i := 0; i < n; i++ {
		out[i] = r[i].Solution
	}
	return out
}

// AreaAnalysis bundles everything derived for one district in a single pass.
type AreaAnalysis struct {
	Estimate       HeatIslandEstimate `json:"estimate"`
	GreenSpaces    []GreenSpaceSample `json:"green_spaces,omitempty"`
	Weather        *WeatherReading    `json:"weather,omitempty"`
	PriorityScore  float64            `json:"priority_score"`
	Characteristic AreaCharacteristic `json:"characteristic"`
	Ranking        SolutionRanking    `json:"ranking"`
	Reasoning      string             `json:"reasoning"`
}

// GeneratedMission is a composed, user-facing mitigation action. The engine
// assigns no identifiers; persistence and IDs belong to the caller.
type GeneratedMission struct {
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Solution      SolutionType `json:"solution"`
	PointsReward  int          `json:"points_reward"`
	Difficulty    int          `json:"difficulty"`               // 1-5, fixed per solution type
	CoolingEffect float64      `json:"estimated_cooling_effect"` // °C reduction, positive
	PriorityScore float64      `json:"priority_score"`
	Justification string       `json:"justification"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	District      string       `json:"district"`
	GeneratedAt   time.Time    `json:"generated_at"`
}

// IndicatorProvider supplies the raw inputs the engine consumes. A provider
// may be backed by the live climate platform or a deterministic synthetic
// generator; implementations must be safe for concurrent use.
type IndicatorProvider interface {
	// DistrictIndicators returns indicators for districts whose name contains
	// the filter substring, or for all districts when the filter is empty.
	DistrictIndicators(ctx context.Context, districtFilter string) ([]DistrictIndicator, error)

	// GreenSpaces returns green-space samples within radiusKm of a point.
	GreenSpaces(ctx context.Context, lat, lon, radiusKm float64) ([]GreenSpaceSample, error)

	// Weather returns the ambient weather reading at a point.
	Weather(ctx context.Context, lat, lon float64) (WeatherReading, error)
}
