// Command genmock generates deterministic analysis and mission fixtures
// using the actual engine with a fixed seed and a fake clock, so test suites
// downstream exercise real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -analyses-out data/mock/district_analyses.json \
//	  -missions-out data/mock/cooling_missions.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/greenseoul/urban-cooling-engine/internal/domain"
	"github.com/greenseoul/urban-cooling-engine/internal/observability"
	"github.com/greenseoul/urban-cooling-engine/internal/pipeline"
	"github.com/greenseoul/urban-cooling-engine/internal/provider"
)

// baseTime stamps every fixture; changing it regenerates all timestamps.
var baseTime = time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	seed := flag.Int64("seed", 42, "seed for the synthetic data world")
	topN := flag.Int("top-n", 5, "number of missions in the batch fixture")
	analysesOut := flag.String("analyses-out", "", "output path for district analyses JSON")
	missionsOut := flag.String("missions-out", "", "output path for mission batch JSON")
	flag.Parse()

	if *analysesOut == "" || *missionsOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -analyses-out, -missions-out")
	}

	// Fix the clock for reproducible timestamps.
	clock := clockwork.NewFakeClockAt(baseTime)
	domain.SetClock(clock)
	defer domain.SetClock(nil)

	prov := provider.NewSynthetic(*seed, clock)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	analyzer := pipeline.NewAnalyzer(prov, logger, observability.NewMetricsForTesting())

	ctx := context.Background()

	indicators, err := prov.DistrictIndicators(ctx, "")
	if err != nil {
		return fmt.Errorf("district indicators: %w", err)
	}

	analyses := make([]domain.AreaAnalysis, 0, len(indicators))
	for _, ind := range indicators {
		est, err := domain.Estimate(ind)
		if err != nil {
			return fmt.Errorf("estimate %s: %w", ind.District, err)
		}
		analysis, err := analyzer.AnalyzeArea(ctx, est)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", ind.District, err)
		}
		analyses = append(analyses, analysis)
	}
	log.Printf("analyzed %d districts", len(analyses))

	missions, err := analyzer.GenerateBatch(ctx, *topN)
	if err != nil {
		return fmt.Errorf("generate batch: %w", err)
	}
	log.Printf("generated %d missions", len(missions))

	if err := writeJSON(*analysesOut, analyses); err != nil {
		return fmt.Errorf("writing analyses fixture: %w", err)
	}
	log.Printf("wrote analyses fixture: %s", *analysesOut)

	if err := writeJSON(*missionsOut, missions); err != nil {
		return fmt.Errorf("writing missions fixture: %w", err)
	}
	log.Printf("wrote missions fixture: %s", *missionsOut)

	printStats(missions)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(missions []domain.GeneratedMission) {
	bySolution := map[domain.SolutionType]int{}
	for _, m := range missions {
		bySolution[m.Solution]++
	}
	log.Printf("missions by solution type:")
	for _, sol := range domain.SolutionTypes {
		if n := bySolution[sol]; n > 0 {
			log.Printf("  %-16s %d", sol, n)
		}
	}
	if len(missions) > 0 {
		log.Printf("priority range: %.1f .. %.1f",
			missions[len(missions)-1].PriorityScore, missions[0].PriorityScore)
	}
}
