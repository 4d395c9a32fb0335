// Package shear designs vertical stirrups under IS 456 Cl. 40 and
// converts torsion into equivalent demands per Cl. 41.
package shear

import (
	"fmt"
	"math"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

const (
	// Cl. 40.4: characteristic strength of stirrup steel is capped.
	MaxStirrupFy = 415.0

	// Cl. 26.5.1.5 spacing caps and the practical floor.
	MaxSpacingAbs    = 300.0 // mm
	MaxSpacingFactor = 0.75  // times d
	MinSpacing       = 75.0  // mm, fabrication floor

	DefaultStirrupDia = 8.0 // mm, two-legged
	StirrupLegs       = 2
)

// Result holds the stirrup design for one load case.
type Result struct {
	// Stresses (N/mm²)
	TauV    float64
	TauC    float64
	TauCMax float64

	Pt float64 // percentage tension steel used for the tau_c lookup

	// Stirrup selection
	StirrupDia float64 // mm
	Legs       int
	Asv        float64 // area of all legs (mm²)
	Spacing    float64 // mm

	VusKN      float64 // shear carried by stirrups (kN)
	CapacityKN float64 // total section shear capacity at the chosen spacing

	MinimumOnly bool // nominal stirrups govern (tau_v <= tau_c)
	Fatal       bool // tau_v > tau_c,max: not correctable by stirrups
	Adequate    bool
	Message     string
	Warnings    []string
}

// Engine performs shear design against an injected table service.
type Engine struct {
	tables *is456.Tables
}

// NewEngine creates a shear engine bound to the given design tables.
func NewEngine(tables *is456.Tables) *Engine {
	return &Engine{tables: tables}
}

// Design computes stirrup requirements for the factored shear vu (kN)
// given the tension steel area ast (mm²) present at the section.
func (e *Engine) Design(g beam.Geometry, m beam.Materials, vu, ast float64) Result {
	b, d := g.Width, g.EffectiveDepth
	dia := g.StirrupDia
	if dia <= 0 {
		dia = DefaultStirrupDia
	}
	fy := math.Min(m.Fy, MaxStirrupFy)

	r := Result{
		StirrupDia: dia,
		Legs:       StirrupLegs,
		Asv:        StirrupLegs * math.Pi / 4 * dia * dia,
		Pt:         100 * ast / (b * d),
	}
	r.TauV = vu * 1e3 / (b * d)

	tauC, clamped := e.tables.TauC(m.Fck, r.Pt)
	if clamped {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("pt=%.2f%% outside Table 19 domain; tau_c clamped to nearest bound", r.Pt))
	}
	r.TauC = tauC

	tauCMax, clamped := e.tables.TauCMax(m.Fck)
	if clamped {
		r.Warnings = append(r.Warnings, "fck outside Table 20 domain; tau_c,max clamped")
	}
	r.TauCMax = tauCMax

	if r.TauV > r.TauCMax {
		// Section itself fails in diagonal compression; no amount of
		// stirrup steel corrects this.
		r.Fatal = true
		r.Adequate = false
		r.Message = fmt.Sprintf("tau_v=%.2f N/mm² exceeds tau_c,max=%.2f N/mm²; increase section size",
			r.TauV, r.TauCMax)
		return r
	}

	// Spacing caps common to both branches.
	capGeom := math.Min(MaxSpacingFactor*d, MaxSpacingAbs)
	// Cl. 26.5.1.6 minimum stirrup area expressed as a spacing cap.
	capMinArea := is456.SteelDesign * fy * r.Asv / (0.4 * b)

	if r.TauV <= r.TauC {
		r.MinimumOnly = true
		r.Spacing = math.Floor(math.Min(capGeom, capMinArea))
		r.Adequate = true
		r.Message = "nominal stirrups govern (tau_v <= tau_c)"
		r.CapacityKN = e.capacity(b, d, fy, r)
		return r
	}

	// Truss analogy for the excess shear (Cl. 40.4(a)).
	vusN := (r.TauV - r.TauC) * b * d
	r.VusKN = vusN / 1e3
	required := is456.SteelDesign * fy * r.Asv * d / vusN

	r.Spacing = math.Floor(math.Min(math.Min(required, capGeom), capMinArea))
	if r.Spacing < MinSpacing {
		r.Spacing = MinSpacing
		r.Adequate = false
		r.Message = fmt.Sprintf("required stirrup spacing %.0f mm is below the %.0f mm practical minimum; increase stirrup diameter or section",
			required, MinSpacing)
		r.CapacityKN = e.capacity(b, d, fy, r)
		return r
	}

	r.Adequate = true
	r.Message = fmt.Sprintf("provide %d-legged %.0f mm stirrups @ %.0f mm c/c", r.Legs, r.StirrupDia, r.Spacing)
	r.CapacityKN = e.capacity(b, d, fy, r)
	return r
}

// capacity returns the section shear capacity in kN at the selected
// spacing: concrete contribution plus stirrup truss contribution.
func (e *Engine) capacity(b, d, fy float64, r Result) float64 {
	concrete := r.TauC * b * d
	stirrups := is456.SteelDesign * fy * r.Asv * d / r.Spacing
	return (concrete + stirrups) / 1e3
}
