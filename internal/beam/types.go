// Package beam holds the input data model shared by every design
// engine: section geometry, material grades and factored load cases.
// All values carry explicit units (mm, N/mm², kN, kN·m); no unit
// inference happens anywhere in the core.
package beam

import (
	"fmt"

	"github.com/civilforge/is456beam/internal/is456"
)

// SupportCondition enumerates the span support types that drive the
// base span/depth ratio and the deflection profile.
type SupportCondition string

const (
	SimplySupported SupportCondition = "simply-supported"
	Continuous      SupportCondition = "continuous"
	Cantilever      SupportCondition = "cantilever"
)

// BaseSpanDepthRatio returns the Cl. 23.2.1 base ratio for the support
// condition.
func (s SupportCondition) BaseSpanDepthRatio() float64 {
	switch s {
	case Continuous:
		return 26
	case Cantilever:
		return 7
	default:
		return 20
	}
}

func (s SupportCondition) valid() bool {
	switch s {
	case SimplySupported, Continuous, Cantilever:
		return true
	}
	return false
}

// Geometry describes the concrete section and span.
type Geometry struct {
	Width          float64 // b - web width (mm)
	OverallDepth   float64 // D - total depth (mm)
	EffectiveDepth float64 // d - to centroid of tension steel (mm)
	Cover          float64 // clear cover to stirrup (mm)
	CompCover      float64 // d' - to centroid of compression steel (mm)

	// Flanged sections only; zero values mean rectangular.
	FlangeWidth     float64 // bf (mm)
	FlangeThickness float64 // Df (mm)

	Span    float64          // centre-to-centre span (mm)
	Support SupportCondition // support condition for the span

	StirrupDia    float64 // stirrup bar diameter (mm)
	AggregateSize float64 // nominal maximum aggregate size (mm)
}

// Flanged reports whether the section has a compression flange.
func (g Geometry) Flanged() bool {
	return g.FlangeWidth > g.Width && g.FlangeThickness > 0
}

// Materials holds the concrete and steel grades, both restricted to
// the enumerated sets the design tables cover.
type Materials struct {
	Fck float64 // characteristic concrete strength (N/mm²)
	Fy  float64 // characteristic steel yield strength (N/mm²)
}

// LoadCase is one factored demand set acting on the beam. Case IDs
// must be unique within a beam; ordering carries no meaning.
type LoadCase struct {
	ID string  // unique within the beam
	Mu float64 // factored moment (kN·m)
	Vu float64 // factored shear (kN)
	Tu float64 // factored torsion (kN·m), optional
}

// Beam is the full input record consumed from the adapter layer.
type Beam struct {
	Name      string
	Geometry  Geometry
	Materials Materials
	Cases     []LoadCase
}

// Validate rejects malformed inputs before any calculation runs.
// Engineering inadequacy is never reported here; only inputs that make
// the calculation meaningless.
func (b Beam) Validate() error {
	g := b.Geometry
	if g.Width <= 0 || g.OverallDepth <= 0 || g.EffectiveDepth <= 0 {
		return fmt.Errorf("beam %q: section dimensions must be positive (b=%.1f, D=%.1f, d=%.1f)",
			b.Name, g.Width, g.OverallDepth, g.EffectiveDepth)
	}
	if g.EffectiveDepth >= g.OverallDepth {
		return fmt.Errorf("beam %q: effective depth d=%.1f must be less than overall depth D=%.1f",
			b.Name, g.EffectiveDepth, g.OverallDepth)
	}
	if g.FlangeWidth != 0 || g.FlangeThickness != 0 {
		if g.FlangeWidth < g.Width {
			return fmt.Errorf("beam %q: flange width bf=%.1f must not be less than web width b=%.1f",
				b.Name, g.FlangeWidth, g.Width)
		}
		if g.FlangeThickness <= 0 || g.FlangeThickness >= g.OverallDepth {
			return fmt.Errorf("beam %q: flange thickness Df=%.1f must lie within the section depth",
				b.Name, g.FlangeThickness)
		}
	}
	if g.Span <= 0 {
		return fmt.Errorf("beam %q: span must be positive, got %.1f", b.Name, g.Span)
	}
	if !g.Support.valid() {
		return fmt.Errorf("beam %q: unknown support condition %q", b.Name, g.Support)
	}
	if !is456.GradeAllowed(b.Materials.Fck, is456.AllowedFck) {
		return fmt.Errorf("beam %q: concrete grade M%.0f not in supported set %v",
			b.Name, b.Materials.Fck, is456.AllowedFck)
	}
	if !is456.GradeAllowed(b.Materials.Fy, is456.AllowedFy) {
		return fmt.Errorf("beam %q: steel grade Fe%.0f not in supported set %v",
			b.Name, b.Materials.Fy, is456.AllowedFy)
	}
	if len(b.Cases) == 0 {
		return fmt.Errorf("beam %q: at least one load case is required", b.Name)
	}
	seen := make(map[string]bool, len(b.Cases))
	for i, c := range b.Cases {
		if c.ID == "" {
			return fmt.Errorf("beam %q: load case %d has empty id", b.Name, i)
		}
		if seen[c.ID] {
			return fmt.Errorf("beam %q: duplicate load case id %q", b.Name, c.ID)
		}
		seen[c.ID] = true
		if c.Mu < 0 || c.Vu < 0 || c.Tu < 0 {
			return fmt.Errorf("beam %q: load case %q has negative demand", b.Name, c.ID)
		}
	}
	return nil
}

// CasesFromEffects expands unfactored load effects into one LoadCase
// per Table 18 combination. Moments and shears share the combination
// factors; torsion follows the moment factors.
func CasesFromEffects(moments, shears, torsions is456.LoadEffects, combos []is456.LoadCombination) []LoadCase {
	cases := make([]LoadCase, 0, len(combos))
	for _, combo := range combos {
		cases = append(cases, LoadCase{
			ID: fmt.Sprintf("LC%s (%s)", combo.ID, combo.Description),
			Mu: combo.Factored(moments),
			Vu: combo.Factored(shears),
			Tu: combo.Factored(torsions),
		})
	}
	return cases
}
