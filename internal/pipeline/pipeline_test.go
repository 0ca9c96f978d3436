package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenseoul/urban-cooling-engine/internal/domain"
	"github.com/greenseoul/urban-cooling-engine/internal/observability"
	"github.com/greenseoul/urban-cooling-engine/internal/pipeline"
)

// --- mocks ---

type mockProvider struct {
	indicators []domain.DistrictIndicator
	greens     []domain.GreenSpaceSample
	weather    domain.WeatherReading

	indicatorErr error
	greensErr    error
	weatherErr   error
}

func (m *mockProvider) DistrictIndicators(_ context.Context, filter string) ([]domain.DistrictIndicator, error) {
	if m.indicatorErr != nil {
		return nil, m.indicatorErr
	}
	return m.indicators, nil
}

func (m *mockProvider) GreenSpaces(_ context.Context, _, _, _ float64) ([]domain.GreenSpaceSample, error) {
	if m.greensErr != nil {
		return nil, m.greensErr
	}
	return m.greens, nil
}

func (m *mockProvider) Weather(_ context.Context, _, _ float64) (domain.WeatherReading, error) {
	if m.weatherErr != nil {
		return domain.WeatherReading{}, m.weatherErr
	}
	return m.weather, nil
}

type mockSink struct {
	mu      sync.Mutex
	batches [][]domain.GeneratedMission
	err     error
	done    chan struct{}
	once    sync.Once
}

func (m *mockSink) PublishBatch(_ context.Context, missions []domain.GeneratedMission) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	m.batches = append(m.batches, missions)
	m.mu.Unlock()
	if m.done != nil {
		m.once.Do(func() { close(m.done) })
	}
	return nil
}

func (m *mockSink) batchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *observability.Metrics {
	// Use a fresh registry to avoid "already registered" panics in tests.
	return observability.NewMetricsForTesting()
}

func threeDistricts() []domain.DistrictIndicator {
	return []domain.DistrictIndicator{
		{District: "수원시", Latitude: 37.2636, Longitude: 127.0286, PopulationDensity: 9800},
		{District: "광명시", Latitude: 37.4786, Longitude: 126.8644, PopulationDensity: 17500},
		{District: "화성시", Latitude: 37.1995, Longitude: 126.8312, PopulationDensity: 1500},
	}
}

func defaultWeather() domain.WeatherReading {
	return domain.WeatherReading{Temperature: 30.0, Humidity: 65.0, WindSpeed: 2.5}
}

func newTestAnalyzer(p domain.IndicatorProvider) *pipeline.Analyzer {
	return pipeline.NewAnalyzer(p, testLogger(), newTestMetrics())
}

// --- Analyzer tests ---

func TestAnalyzer_AnalyzeArea(t *testing.T) {
	prov := &mockProvider{weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	est, err := domain.Estimate(domain.DistrictIndicator{
		District: "광명시", Latitude: 37.4786, Longitude: 126.8644, PopulationDensity: 17500,
	})
	require.NoError(t, err)

	analysis, err := a.AnalyzeArea(context.Background(), est)
	require.NoError(t, err)

	assert.Equal(t, est, analysis.Estimate)
	assert.Equal(t, domain.AreaMixed, analysis.Characteristic)
	assert.Len(t, analysis.Ranking, 5)
	assert.Greater(t, analysis.PriorityScore, 0.0)
	assert.LessOrEqual(t, analysis.PriorityScore, 100.0)
	assert.Contains(t, analysis.Reasoning, "광명시")
	assert.Contains(t, analysis.Reasoning, "severe")
}

func TestAnalyzer_AnalyzeArea_GreensError(t *testing.T) {
	prov := &mockProvider{greensErr: errors.New("upstream down")}
	a := newTestAnalyzer(prov)

	_, err := a.AnalyzeArea(context.Background(), domain.HeatIslandEstimate{District: "수원시"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "green spaces")
}

func TestAnalyzer_GenerateMission_AutoSolution(t *testing.T) {
	prov := &mockProvider{weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	est, err := domain.Estimate(domain.DistrictIndicator{
		District: "광명시", PopulationDensity: 17500,
	})
	require.NoError(t, err)

	mission, err := a.GenerateMission(context.Background(), est, "")
	require.NoError(t, err)

	// Severe intensity in a mixed area ranks tree planting first.
	assert.Equal(t, domain.TreePlanting, mission.Solution)
	assert.Equal(t, "광명시", mission.District)
	assert.Positive(t, mission.CoolingEffect)
}

func TestAnalyzer_GenerateMission_ExplicitSolution(t *testing.T) {
	prov := &mockProvider{weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	est, err := domain.Estimate(domain.DistrictIndicator{District: "수원시", PopulationDensity: 9800})
	require.NoError(t, err)

	mission, err := a.GenerateMission(context.Background(), est, domain.ShadeStructure)
	require.NoError(t, err)
	assert.Equal(t, domain.ShadeStructure, mission.Solution)
	assert.Equal(t, 1, mission.Difficulty)
}

func TestAnalyzer_GenerateMission_UnknownSolution(t *testing.T) {
	prov := &mockProvider{weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	est, err := domain.Estimate(domain.DistrictIndicator{District: "수원시", PopulationDensity: 9800})
	require.NoError(t, err)

	_, err = a.GenerateMission(context.Background(), est, domain.SolutionType("fog_cannon"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSolutionType)
}

func TestAnalyzer_GenerateBatch(t *testing.T) {
	prov := &mockProvider{indicators: threeDistricts(), weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	missions, err := a.GenerateBatch(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, missions, 3)

	// Each mission references a distinct district.
	seen := map[string]bool{}
	for _, m := range missions {
		assert.False(t, seen[m.District], "district %s repeated", m.District)
		seen[m.District] = true
	}

	// Ordered by descending priority score; the densest district leads.
	assert.Equal(t, "광명시", missions[0].District)
	for i := 1; i < len(missions); i++ {
		assert.GreaterOrEqual(t, missions[i-1].PriorityScore, missions[i].PriorityScore)
	}
}

func TestAnalyzer_GenerateBatch_TopNSelection(t *testing.T) {
	prov := &mockProvider{indicators: threeDistricts(), weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	missions, err := a.GenerateBatch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, "광명시", missions[0].District, "hottest district selected")
}

func TestAnalyzer_GenerateBatch_InvalidTopN(t *testing.T) {
	a := newTestAnalyzer(&mockProvider{})

	for _, n := range []int{0, -1} {
		_, err := a.GenerateBatch(context.Background(), n)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestAnalyzer_GenerateBatch_ProviderError(t *testing.T) {
	prov := &mockProvider{indicatorErr: errors.New("wfs timeout")}
	a := newTestAnalyzer(prov)

	_, err := a.GenerateBatch(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "district indicators")
}

func TestAnalyzer_GenerateBatch_SkipsBadIndicators(t *testing.T) {
	inds := threeDistricts()
	inds = append(inds, domain.DistrictIndicator{District: "bad", PopulationDensity: -1})
	prov := &mockProvider{indicators: inds, weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	missions, err := a.GenerateBatch(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, missions, 3, "invalid indicator skipped")
}

func TestAnalyzer_GenerateBatch_Deterministic(t *testing.T) {
	fixed := time.Date(2025, time.August, 1, 10, 30, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(fixed))
	defer domain.SetClock(nil)

	prov := &mockProvider{indicators: threeDistricts(), weather: defaultWeather()}
	a := newTestAnalyzer(prov)

	first, err := a.GenerateBatch(context.Background(), 3)
	require.NoError(t, err)
	second, err := a.GenerateBatch(context.Background(), 3)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("batch not deterministic (-first +second):\n%s", diff)
	}
}

// --- Pipeline tests ---

func TestPipeline_Run_PublishesBatch(t *testing.T) {
	prov := &mockProvider{indicators: threeDistricts(), weather: defaultWeather()}
	sink := &mockSink{done: make(chan struct{})}
	p := pipeline.New(newTestAnalyzer(prov), sink, testLogger(), newTestMetrics(), 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatal("no batch published")
	}
	cancel()
	require.NoError(t, <-errCh)

	require.GreaterOrEqual(t, sink.batchCount(), 1)
	assert.Len(t, sink.batches[0], 3)
	assert.NoError(t, p.CheckReadiness(context.Background()))
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	prov := &mockProvider{indicators: threeDistricts(), weather: defaultWeather()}
	sink := &mockSink{}
	p := pipeline.New(newTestAnalyzer(prov), sink, testLogger(), newTestMetrics(), 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	err := p.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sink.batchCount())
}

func TestPipeline_Run_SinkErrorRetries(t *testing.T) {
	prov := &mockProvider{indicators: threeDistricts(), weather: defaultWeather()}
	sink := &mockSink{err: errors.New("broker down")}
	p := pipeline.New(newTestAnalyzer(prov), sink, testLogger(), newTestMetrics(), 3, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := p.Run(ctx)
	require.NoError(t, err)
	assert.Error(t, p.CheckReadiness(context.Background()), "failed cycles must not mark ready")
}

func TestPipeline_CheckReadiness_Initial(t *testing.T) {
	p := pipeline.New(newTestAnalyzer(&mockProvider{}), nil, testLogger(), newTestMetrics(), 3, time.Hour)
	assert.Error(t, p.CheckReadiness(context.Background()))
}
