package provider

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/greenseoul/urban-cooling-engine/internal/domain"
)

// districtEntry is one row of the static Gyeonggi district table: centroid
// coordinates (EPSG:4326) and population density (people/km²).
type districtEntry struct {
	name    string
	lat     float64
	lon     float64
	density float64
}

// gyeonggiDistricts lists the major Gyeonggi-do districts the platform
// covers. Densities are approximate published figures.
var gyeonggiDistricts = []districtEntry{
	{"수원시", 37.2636, 127.0286, 9800},
	{"성남시", 37.4200, 127.1265, 9200},
	{"고양시", 37.6584, 126.8320, 7500},
	{"용인시", 37.2410, 127.1775, 3200},
	{"부천시", 37.5034, 126.7660, 15800},
	{"안산시", 37.3219, 126.8309, 8100},
	{"안양시", 37.3943, 126.9568, 11200},
	{"평택시", 36.9921, 127.1128, 1800},
	{"시흥시", 37.3800, 126.8030, 5500},
	{"화성시", 37.1996, 126.8312, 1500},
	{"광명시", 37.4786, 126.8644, 17500},
	{"군포시", 37.3616, 126.9351, 11000},
	{"광주시", 37.4095, 127.2550, 1800},
	{"김포시", 37.6152, 126.7156, 2800},
	{"파주시", 37.7126, 126.7800, 800},
}

// DistrictNames returns the names in the static district table.
func DistrictNames() []string {
	names := make([]string, len(gyeonggiDistricts))
	for i, d := range gyeonggiDistricts {
		names[i] = d.name
	}
	return names
}

// Synthetic is a deterministic IndicatorProvider. Every value derives from
// the configured seed and the request parameters, so identical requests
// always produce identical data regardless of call order — which also makes
// it safe for concurrent use without locking.
type Synthetic struct {
	seed  int64
	clock clockwork.Clock
}

// NewSynthetic creates a synthetic provider. The seed selects the generated
// world; the clock stamps weather observations.
func NewSynthetic(seed int64, clock clockwork.Clock) *Synthetic {
	return &Synthetic{seed: seed, clock: clock}
}

// DistrictIndicators returns the static district table filtered by name
// substring. Green ratios are left unset so the estimator infers them from
// density, matching the platform's behavior when no park data is available.
func (s *Synthetic) DistrictIndicators(_ context.Context, districtFilter string) ([]domain.DistrictIndicator, error) {
	var out []domain.DistrictIndicator
	for _, d := range gyeonggiDistricts {
		if districtFilter != "" && !strings.Contains(d.name, districtFilter) {
			continue
		}
		out = append(out, domain.DistrictIndicator{
			District:          d.name,
			Latitude:          d.lat,
			Longitude:         d.lon,
			PopulationDensity: d.density,
		})
	}
	return out, nil
}

// GreenSpaces synthesizes 3-5 green-space samples scattered around the
// requested point, with ranges matching observed Gyeonggi park data.
func (s *Synthetic) GreenSpaces(_ context.Context, lat, lon, _ float64) ([]domain.GreenSpaceSample, error) {
	rng := s.rng("greenspaces", fmt.Sprintf("%.4f,%.4f", lat, lon))
	count := 3 + rng.Intn(3)

	out := make([]domain.GreenSpaceSample, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, domain.GreenSpaceSample{
			Latitude:    lat + uniform(rng, -0.01, 0.01),
			Longitude:   lon + uniform(rng, -0.01, 0.01),
			GreenRatio:  round1(uniform(rng, 5, 40)),
			TreeDensity: round1(uniform(rng, 10, 100)),
			ParkArea:    round1(uniform(rng, 100, 10000)),
		})
	}
	return out, nil
}

// Weather returns a fixed mid-summer reading. There is no weather-service
// integration yet; the constant matches the platform's placeholder.
func (s *Synthetic) Weather(_ context.Context, _, _ float64) (domain.WeatherReading, error) {
	return domain.WeatherReading{
		Temperature:    30.0,
		Humidity:       65.0,
		WindSpeed:      2.5,
		SolarRadiation: 600.0,
		ObservedAt:     s.clock.Now(),
	}, nil
}

// Parks synthesizes 2-5 parks per matching district so the synthetic
// provider can also stand in for the WFS park source.
func (s *Synthetic) Parks(_ context.Context, districtFilter string, _ int) ([]ParkRecord, error) {
	var out []ParkRecord
	for _, d := range gyeonggiDistricts {
		if districtFilter != "" && !strings.Contains(d.name, districtFilter) {
			continue
		}
		rng := s.rng("parks", d.name)
		count := 2 + rng.Intn(4)
		for i := 0; i < count; i++ {
			out = append(out, ParkRecord{
				UID:         fmt.Sprintf("%s_%d", d.name, i),
				District:    d.name,
				Category:    "도시공원",
				Subcategory: "근린공원",
				Area:        round1(uniform(rng, 5000, 50000)),
				Latitude:    d.lat + uniform(rng, -0.02, 0.02),
				Longitude:   d.lon + uniform(rng, -0.02, 0.02),
			})
		}
	}
	return out, nil
}

// rng derives an independent generator from the seed and a request key.
func (s *Synthetic) rng(parts ...string) *rand.Rand {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", s.seed)
	for _, p := range parts {
		h.Write([]byte("|"))
		h.Write([]byte(p))
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
