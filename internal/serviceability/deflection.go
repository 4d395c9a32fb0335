package serviceability

import (
	"math"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

// Level B: computed deflection. The bending moment profile for the
// case maximum Ms is sampled at fixed stations, curvature M/(Ec*I) is
// evaluated per station with the cracked or uncracked inertia chosen
// against the cracking moment, and the midspan (or cantilever tip)
// deflection is integrated by virtual work with Simpson's rule.
//
// The discretization is fixed so results reproduce bit-for-bit:
// Stations points (Intervals equal spaces), Simpson integration.
const (
	// Intervals is the number of equal span subdivisions; Stations is
	// the number of sampled points. Intervals must stay even for
	// Simpson's rule.
	Intervals = 20
	Stations  = Intervals + 1

	// Deflection limits (Cl. 23.2): span/250 overall, span/350 for the
	// post-partition increment.
	LimitRatioTotal     = 250.0
	LimitRatioPartition = 350.0
)

// LevelBResult is the computed-deflection check outcome.
type LevelBResult struct {
	Ms  float64 // service moment (kN·m)
	Mcr float64 // cracking moment (kN·m)

	Ec  float64 // N/mm²
	Igr float64 // mm⁴
	Icr float64 // mm⁴
	X   float64 // cracked neutral axis depth (mm)

	Cracked    bool    // Ms exceeds Mcr anywhere on the span
	Deflection float64 // mm at midspan (tip for cantilevers)

	Limit          float64 // span/250 (mm)
	LimitPartition float64 // span/350 (mm)
	Margin         float64 // Limit - Deflection; negative fails
	Pass           bool
}

// Deflection runs the Level B check for one load case. mu is the
// factored case moment; the service moment is mu/1.5 (basic gravity
// partial factor). ast/asc are the provided steel areas.
func (e *Engine) Deflection(g beam.Geometry, m beam.Materials, mu, ast, asc float64) LevelBResult {
	gross := Gross(g)
	cracked := Cracked(g, m, ast, asc)

	r := LevelBResult{
		Ms:  mu / is456.GammaF,
		Ec:  is456.Ec(m.Fck),
		Igr: gross.I,
		Icr: cracked.I,
		X:   cracked.X,
	}
	r.Mcr = is456.Fcr(m.Fck) * gross.I / gross.YBottom / 1e6

	span := g.Span
	r.Limit = span / LimitRatioTotal
	r.LimitPartition = span / LimitRatioPartition

	// Station curvatures. Moments in kN·m, curvature in 1/mm.
	h := span / Intervals
	integrand := make([]float64, Stations)
	for i := 0; i < Stations; i++ {
		x := float64(i) * h
		ms := e.stationMoment(g.Support, r.Ms, x, span)
		ie := r.Igr
		if math.Abs(ms) > r.Mcr {
			ie = r.Icr
			r.Cracked = true
		}
		kappa := ms * 1e6 / (r.Ec * ie)
		integrand[i] = kappa * unitMoment(g.Support, x, span)
	}
	r.Deflection = simpson(integrand, h)

	r.Margin = r.Limit - r.Deflection
	r.Pass = r.Deflection <= r.Limit
	return r
}

// stationMoment returns the service moment at position x for the
// case maximum ms. Simply supported and continuous spans use the
// parabolic (UDL) profile peaking at midspan; cantilevers carry the
// peak at the support, decaying quadratically to the free end.
func (e *Engine) stationMoment(s beam.SupportCondition, ms, x, span float64) float64 {
	xi := x / span
	switch s {
	case beam.Cantilever:
		return ms * (1 - xi) * (1 - xi)
	default:
		return 4 * ms * xi * (1 - xi)
	}
}

// unitMoment is the virtual moment from a unit load at the deflection
// point: midspan for spans, the free tip for cantilevers. Units: mm.
func unitMoment(s beam.SupportCondition, x, span float64) float64 {
	if s == beam.Cantilever {
		return span - x
	}
	if x <= span/2 {
		return x / 2
	}
	return (span - x) / 2
}

// simpson integrates equally spaced samples with Simpson's rule; the
// sample count is odd by construction (Stations = Intervals+1).
func simpson(f []float64, h float64) float64 {
	n := len(f) - 1
	sum := f[0] + f[n]
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			sum += 4 * f[i]
		} else {
			sum += 2 * f[i]
		}
	}
	return sum * h / 3
}
