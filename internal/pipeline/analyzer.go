// Package pipeline orchestrates the estimate-score-classify-recommend-compose
// flow per district and the continuous batch loop around it.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/greenseoul/urban-cooling-engine/internal/domain"
	"github.com/greenseoul/urban-cooling-engine/internal/observability"
)

// defaultGreenRadiusKm is the search radius for green spaces around a
// district center.
const defaultGreenRadiusKm = 1.0

// Analyzer runs the full analysis chain for one district at a time.
type Analyzer struct {
	provider domain.IndicatorProvider
	logger   *slog.Logger
	metrics  *observability.Metrics
	radiusKm float64
}

// NewAnalyzer creates an Analyzer over the given indicator provider.
func NewAnalyzer(p domain.IndicatorProvider, logger *slog.Logger, metrics *observability.Metrics) *Analyzer {
	return &Analyzer{
		provider: p,
		logger:   logger,
		metrics:  metrics,
		radiusKm: defaultGreenRadiusKm,
	}
}

// AnalyzeArea scores, classifies, and ranks solutions for one estimated
// location.
func (a *Analyzer) AnalyzeArea(ctx context.Context, est domain.HeatIslandEstimate) (domain.AreaAnalysis, error) {
	greens, err := a.provider.GreenSpaces(ctx, est.Latitude, est.Longitude, a.radiusKm)
	if err != nil {
		a.metrics.AnalysisErrors.Inc()
		return domain.AreaAnalysis{}, fmt.Errorf("green spaces for %s: %w", est.District, err)
	}

	weather, err := a.provider.Weather(ctx, est.Latitude, est.Longitude)
	if err != nil {
		a.metrics.AnalysisErrors.Inc()
		return domain.AreaAnalysis{}, fmt.Errorf("weather for %s: %w", est.District, err)
	}

	priority := domain.Score(est, greens, &weather)
	characteristic := domain.Classify(est, greens)
	ranking := domain.Recommend(est, characteristic, greens)

	a.metrics.DistrictsAnalyzed.Inc()
	a.metrics.PriorityScore.Observe(priority)
	a.logger.Debug("area analyzed",
		"district", est.District,
		"intensity", est.Intensity,
		"priority", priority,
		"characteristic", characteristic,
	)

	return domain.AreaAnalysis{
		Estimate:       est,
		GreenSpaces:    greens,
		Weather:        &weather,
		PriorityScore:  priority,
		Characteristic: characteristic,
		Ranking:        ranking,
		Reasoning:      reasoningText(est, greens, priority),
	}, nil
}

// GenerateMission analyzes the location and composes a mission. Pass an
// empty solution type to use the top-ranked recommendation; an explicit
// type outside the catalog fails with ErrUnknownSolutionType.
func (a *Analyzer) GenerateMission(ctx context.Context, est domain.HeatIslandEstimate, sol domain.SolutionType) (domain.GeneratedMission, error) {
	analysis, err := a.AnalyzeArea(ctx, est)
	if err != nil {
		return domain.GeneratedMission{}, err
	}

	if sol == "" {
		sol = analysis.Ranking[0].Solution
	}

	mission, err := domain.ComposeMission(analysis.Estimate, analysis.PriorityScore, sol)
	if err != nil {
		a.metrics.AnalysisErrors.Inc()
		return domain.GeneratedMission{}, err
	}

	a.metrics.MissionsGenerated.Inc()
	return mission, nil
}

// GenerateBatch estimates every district, selects the topN by heat-island
// intensity, and generates one mission each. Results are sorted by
// descending priority score; ties keep the intensity order.
func (a *Analyzer) GenerateBatch(ctx context.Context, topN int) ([]domain.GeneratedMission, error) {
	if topN < 1 {
		return nil, fmt.Errorf("top n must be at least 1, got %d: %w", topN, domain.ErrInvalidArgument)
	}

	estimates, err := a.priorityAreas(ctx, topN)
	if err != nil {
		return nil, err
	}

	missions := make([]domain.GeneratedMission, 0, len(estimates))
	for _, est := range estimates {
		mission, err := a.GenerateMission(ctx, est, "")
		if err != nil {
			return nil, err
		}
		missions = append(missions, mission)
	}

	sort.SliceStable(missions, func(i, j int) bool {
		return missions[i].PriorityScore > missions[j].PriorityScore
	})
	return missions, nil
}

// priorityAreas estimates all districts and returns the topN hottest,
// ordered by descending heat-island intensity.
func (a *Analyzer) priorityAreas(ctx context.Context, topN int) ([]domain.HeatIslandEstimate, error) {
	indicators, err := a.provider.DistrictIndicators(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("district indicators: %w", err)
	}

	estimates := make([]domain.HeatIslandEstimate, 0, len(indicators))
	for _, ind := range indicators {
		est, err := domain.Estimate(ind)
		if err != nil {
			a.metrics.AnalysisErrors.Inc()
			a.logger.Warn("skipping district with bad indicator", "district", ind.District, "error", err)
			continue
		}
		estimates = append(estimates, est)
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].Intensity > estimates[j].Intensity
	})
	if len(estimates) > topN {
		estimates = estimates[:topN]
	}
	return estimates, nil
}

// reasoningText renders a short analysis summary for humans reviewing
// generated missions.
func reasoningText(est domain.HeatIslandEstimate, greens []domain.GreenSpaceSample, priority float64) string {
	avgGreen := 15.0
	if len(greens) > 0 {
		avgGreen = domain.AverageGreenRatio(greens)
	}

	var severity, advice string
	switch {
	case est.Intensity >= 2.0:
		severity = "severe"
		advice = "Immediate intervention is needed."
	case est.Intensity >= 1.5:
		severity = "elevated"
		advice = "Preventive measures are recommended."
	default:
		severity = "mild"
		advice = "Routine monitoring is sufficient for now."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Area analysis: %s\n", est.District)
	fmt.Fprintf(&b, "Heat-island intensity: +%.1f°C\n", est.Intensity)
	fmt.Fprintf(&b, "Priority score: %.1f/100\n", priority)
	fmt.Fprintf(&b, "Green coverage: %.1f%%\n", avgGreen)
	fmt.Fprintf(&b, "The heat-island level is %s. %s", severity, advice)
	return b.String()
}
