// Command validate checks the engine's static data for integrity: mission
// template exhaustiveness, solution catalog sanity, and, when a fixture is
// given, that regenerating the mission batch reproduces it exactly.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -missions-json data/mock/cooling_missions.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/greenseoul/urban-cooling-engine/internal/domain"
	"github.com/greenseoul/urban-cooling-engine/internal/observability"
	"github.com/greenseoul/urban-cooling-engine/internal/pipeline"
	"github.com/greenseoul/urban-cooling-engine/internal/provider"
)

// baseTime must match cmd/genmock for fixture reproducibility.
var baseTime = time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	missionsJSON := flag.String("missions-json", "", "path to mission batch fixture to recompute (optional)")
	seed := flag.Int64("seed", 42, "seed the fixture was generated with")
	topN := flag.Int("top-n", 5, "batch size the fixture was generated with")
	flag.Parse()

	if code := run(*missionsJSON, *seed, *topN); code != 0 {
		os.Exit(code)
	}
}

func run(missionsJSONPath string, seed int64, topN int) int {
	fmt.Println("=== Urban Cooling Engine Validation ===")
	fmt.Println()

	phases := []*phase{
		validateTemplates(),
		validateCatalog(),
		validateEffectProfiles(),
	}

	if missionsJSONPath != "" {
		phases = append(phases, validateFixture(missionsJSONPath, seed, topN))
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-36s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func validateTemplates() *phase {
	p := &phase{name: "Mission template exhaustiveness"}
	if err := domain.ValidateTemplates(); err != nil {
		p.errorf("%v", err)
	}
	return p
}

func validateCatalog() *phase {
	p := &phase{name: "Solution catalog sanity"}

	for _, sol := range domain.SolutionTypes {
		spec, err := domain.Spec(sol)
		if err != nil {
			p.errorf("%s: %v", sol, err)
			continue
		}
		if spec.Name == "" {
			p.errorf("%s: empty display name", sol)
		}
		if len(spec.EligibleAreas) == 0 {
			p.errorf("%s: no eligible areas", sol)
		}
		if spec.MinEffect <= 0 || spec.MaxEffect <= spec.MinEffect {
			p.errorf("%s: invalid effect range [%.2f, %.2f]", sol, spec.MinEffect, spec.MaxEffect)
		}
		if spec.BasePoints <= 0 {
			p.errorf("%s: non-positive base points %d", sol, spec.BasePoints)
		}
		if spec.BaseDifficulty < 1 || spec.BaseDifficulty > 5 {
			p.errorf("%s: difficulty %d outside 1-5", sol, spec.BaseDifficulty)
		}
	}

	if _, err := domain.Spec(domain.SolutionType("bogus")); err == nil {
		p.errorf("unknown solution type did not error")
	}
	return p
}

func validateEffectProfiles() *phase {
	p := &phase{name: "Effectiveness profile coverage"}

	profiles := domain.EffectivenessProfiles()
	seen := map[domain.SolutionType]bool{}
	for _, prof := range profiles {
		seen[prof.Solution] = true
		if prof.AvgCoolingEffect <= 0 {
			p.errorf("%s: non-positive average cooling effect", prof.Solution)
		}
	}
	for _, sol := range domain.SolutionTypes {
		if !seen[sol] {
			p.errorf("missing profile for %s", sol)
		}
	}
	return p
}

// validateFixture regenerates the mission batch with the fixture's seed and
// clock and compares it mission by mission.
func validateFixture(path string, seed int64, topN int) *phase {
	p := &phase{name: "Mission fixture recompute"}

	data, err := os.ReadFile(path)
	if err != nil {
		p.errorf("read fixture: %v", err)
		return p
	}
	var want []domain.GeneratedMission
	if err := json.Unmarshal(data, &want); err != nil {
		p.errorf("parse fixture: %v", err)
		return p
	}

	clock := clockwork.NewFakeClockAt(baseTime)
	domain.SetClock(clock)
	defer domain.SetClock(nil)

	prov := provider.NewSynthetic(seed, clock)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	analyzer := pipeline.NewAnalyzer(prov, logger, observability.NewMetricsForTesting())

	got, err := analyzer.GenerateBatch(context.Background(), topN)
	if err != nil {
		p.errorf("generate batch: %v", err)
		return p
	}

	if len(got) != len(want) {
		p.errorf("mission count mismatch: fixture %d, recomputed %d", len(want), len(got))
		return p
	}
	for i := range want {
		compareMission(p, i, want[i], got[i])
	}
	return p
}

func compareMission(p *phase, i int, want, got domain.GeneratedMission) {
	if want.District != got.District {
		p.errorf("[%d] district: fixture %q, recomputed %q", i, want.District, got.District)
	}
	if want.Solution != got.Solution {
		p.errorf("[%d] solution: fixture %q, recomputed %q", i, want.Solution, got.Solution)
	}
	if want.Title != got.Title {
		p.errorf("[%d] title: fixture %q, recomputed %q", i, want.Title, got.Title)
	}
	if math.Abs(want.PriorityScore-got.PriorityScore) > 1e-9 {
		p.errorf("[%d] priority: fixture %.4f, recomputed %.4f", i, want.PriorityScore, got.PriorityScore)
	}
	if math.Abs(want.CoolingEffect-got.CoolingEffect) > 1e-9 {
		p.errorf("[%d] cooling effect: fixture %.2f, recomputed %.2f", i, want.CoolingEffect, got.CoolingEffect)
	}
	if want.PointsReward != got.PointsReward {
		p.errorf("[%d] points: fixture %d, recomputed %d", i, want.PointsReward, got.PointsReward)
	}
	if !want.GeneratedAt.Equal(got.GeneratedAt) {
		p.errorf("[%d] generated_at: fixture %s, recomputed %s", i, want.GeneratedAt, got.GeneratedAt)
	}
}
