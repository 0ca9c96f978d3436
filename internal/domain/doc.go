// Package domain models urban heat-island analysis for Gyeonggi-do districts
// and derives mitigation missions from it.
//
// # Data Source
//
// District indicators originate from the Gyeonggi Climate Platform WFS API
// (park, green-belt, and biotope layers) combined with a static table of
// district centroids and population densities. When the platform is
// unreachable, or in mock mode, a seeded synthetic provider produces
// equivalent records.
//
// # Heat-Island Estimation
//
// Intensity is the estimated temperature excess over an unheated baseline,
// derived from green-coverage deficit and population density:
//
//	green_factor   = (30 - green_ratio) / 30
//	density_factor = min(density / 20000, 1.0)
//	intensity      = clamp(0.5 + green_factor*1.5 + density_factor*1.0, 0.5, 3.0)
//	temperature    = 28.0 + intensity   (summer ambient baseline)
//
// When the green-coverage ratio is unknown it is estimated from density as
// max(5, 40 - density/500). Green ratios used in any intensity computation are
// clamped to [5, 40] percent; intensity is always inside [0.5, 3.0] °C.
// Intensity is rounded to 2 decimals, temperature to 1.
//
// # Priority Scoring
//
// A 0-100 score ranks how urgently a district needs mitigation. It is an
// additive sum of independently capped terms: intensity (max 40), absolute
// temperature (max 20), green deficiency (max 20, fixed 15 when no samples
// are available), and weather conditions (max 20, only when a reading is
// supplied). The score is monotonically non-decreasing in intensity and
// density and non-increasing in green coverage.
//
// # Area Classification
//
// Districts are classified by first-match rules: industrial keywords in the
// district name, then commercial keywords, then park adjacency (any sample
// with park area over 5000 m²), then high average green coverage
// (residential), otherwise mixed. Keyword matching is plain substring
// containment against Korean place-name fragments; it is a best-effort
// heuristic, not a land-use registry lookup.
//
// # Solution Catalog
//
// Five fixed mitigation solution types exist: tree planting, green roof,
// cool pavement, water feature, and shade structure. Each carries an
// eligible-classification set, a cooling-effect range, base reward points,
// and a base difficulty. Recommendation accumulates suitability per solution
// from land-use fit, intensity tier, and green deficiency, then sorts
// descending with catalog order as the stable tiebreak.
//
// # Determinism
//
// Every function in this package is a pure transformation of its inputs.
// Timestamps come from the package clock (see [SetClock]) and mission text
// variants are selected by hashing the district name, so identical inputs
// always produce identical outputs.
package domain
