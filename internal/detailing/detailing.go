// Package detailing computes development and lap lengths (Cl. 26.2)
// and selects a bar arrangement satisfying the required steel area
// within the spacing rules of Cl. 26.3.
package detailing

import (
	"fmt"
	"math"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

// SpliceType enumerates the lap splice categories of Cl. 26.2.5.1.
type SpliceType string

const (
	SpliceFlexuralTension SpliceType = "flexural-tension"
	SpliceDirectTension   SpliceType = "direct-tension"
	SpliceCompression     SpliceType = "compression"
)

// StandardDiameters is the ascending search list for main bars (mm).
var StandardDiameters = []float64{12, 16, 20, 25, 28, 32}

const (
	deformedBondFactor    = 1.6  // Cl. 26.2.1.1: HYSD bars
	compressionBondFactor = 1.25 // Cl. 26.2.1.1: bars in compression
	minBarCount           = 2
	defaultAggregate      = 20.0 // mm, when the input leaves it unset
)

// maxClearSpacing returns the Table 15 crack-control limit on clear
// distance between bars (mm), keyed by fy.
func maxClearSpacing(fy float64) float64 {
	switch {
	case fy <= 250:
		return 300
	case fy <= 415:
		return 180
	default:
		return 150
	}
}

// Result holds the detailing output.
type Result struct {
	// Lengths (mm)
	Ld            float64 // development length, tension
	LdCompression float64

	// Lap lengths by splice type (mm)
	LapFlexuralTension float64
	LapDirectTension   float64
	LapCompression     float64

	// Selected arrangement
	BarDia       float64 // mm
	BarCount     int
	AreaProvided float64 // mm²

	// Spacing (mm)
	ClearSpacing    float64
	MinClearSpacing float64
	MaxClearSpacing float64

	Adequate bool
	Message  string
	Warnings []string
}

// Engine performs detailing against an injected table service.
type Engine struct {
	tables *is456.Tables
}

// NewEngine creates a detailing engine bound to the given tables.
func NewEngine(tables *is456.Tables) *Engine {
	return &Engine{tables: tables}
}

// DevelopmentLength returns Ld = φ·σs/(4·τbd) in mm, with the
// deformed-bar multiplier for HYSD grades and the compression
// multiplier when compression is set.
func (e *Engine) DevelopmentLength(m beam.Materials, dia float64, compression bool) (float64, []string) {
	var warnings []string
	tauBd, clamped := e.tables.TauBd(m.Fck)
	if clamped {
		warnings = append(warnings, "fck outside bond stress table; tau_bd clamped")
	}
	if m.Fy > 250 {
		tauBd *= deformedBondFactor
	}
	if compression {
		tauBd *= compressionBondFactor
	}
	sigma := is456.SteelDesign * m.Fy
	return dia * sigma / (4 * tauBd), warnings
}

// LapLength returns the lap length for the splice type (Cl. 26.2.5.1):
// flexural tension max(Ld, 30φ), direct tension max(2Ld, 30φ),
// compression max(Ld_comp, 24φ).
func (e *Engine) LapLength(splice SpliceType, m beam.Materials, dia float64) float64 {
	switch splice {
	case SpliceDirectTension:
		ld, _ := e.DevelopmentLength(m, dia, false)
		return math.Max(2*ld, 30*dia)
	case SpliceCompression:
		ld, _ := e.DevelopmentLength(m, dia, true)
		return math.Max(ld, 24*dia)
	default:
		ld, _ := e.DevelopmentLength(m, dia, false)
		return math.Max(ld, 30*dia)
	}
}

// Design selects the bar arrangement for astRequired and fills in the
// length and spacing results for the selected diameter.
func (e *Engine) Design(g beam.Geometry, m beam.Materials, astRequired float64) Result {
	r := Result{
		MaxClearSpacing: maxClearSpacing(m.Fy),
	}
	agg := g.AggregateSize
	if agg <= 0 {
		agg = defaultAggregate
	}

	sel, ok := e.selectBars(g, m, astRequired, agg)
	r.BarDia = sel.dia
	r.BarCount = sel.count
	r.AreaProvided = sel.area
	r.ClearSpacing = sel.clear
	r.MinClearSpacing = math.Max(sel.dia, agg+5)

	var warn []string
	r.Ld, warn = e.DevelopmentLength(m, sel.dia, false)
	r.Warnings = append(r.Warnings, warn...)
	r.LdCompression, _ = e.DevelopmentLength(m, sel.dia, true)
	r.LapFlexuralTension = e.LapLength(SpliceFlexuralTension, m, sel.dia)
	r.LapDirectTension = e.LapLength(SpliceDirectTension, m, sel.dia)
	r.LapCompression = e.LapLength(SpliceCompression, m, sel.dia)

	if !ok {
		r.Adequate = false
		r.Message = fmt.Sprintf("no standard bar arrangement fits %.0f mm² within a %.0f mm web; widen the section or use bundled bars",
			astRequired, g.Width)
		return r
	}
	r.Adequate = true
	r.Message = fmt.Sprintf("provide %d-%.0f mm bars (%.0f mm²)", sel.count, sel.dia, sel.area)
	return r
}

type barOption struct {
	dia   float64
	count int
	area  float64
	clear float64
}

// selectBars runs the deterministic search: ascending standard
// diameters, fewest bars that satisfy area, width-fit and spacing
// rules, ties broken by least excess area. Spacing above the crack
// control limit is corrected by adding bars until the width runs out,
// so low steel demands in wide webs still detail. When nothing fits it
// returns the least-excess violating option as a best effort.
func (e *Engine) selectBars(g beam.Geometry, m beam.Materials, ast, agg float64) (barOption, bool) {
	sideClear := g.Cover + g.StirrupDia
	avail := g.Width - 2*sideClear
	minClear := func(dia float64) float64 { return math.Max(dia, agg+5) }
	maxClear := maxClearSpacing(m.Fy)

	var best, fallback barOption
	haveBest, haveFallback := false, false

	for _, dia := range StandardDiameters {
		one := math.Pi / 4 * dia * dia
		count := int(math.Ceil(ast / one))
		if count < minBarCount {
			count = minBarCount
		}
		for {
			clear := (avail - float64(count)*dia) / float64(count-1)
			opt := barOption{dia: dia, count: count, area: float64(count) * one, clear: clear}

			if clear < minClear(dia) {
				// Out of width for this diameter; adding bars only
				// tightens the spacing further.
				if !haveFallback || opt.area < fallback.area {
					fallback = opt
					haveFallback = true
				}
				break
			}
			if clear <= maxClear {
				if !haveBest ||
					opt.count < best.count ||
					(opt.count == best.count && opt.area < best.area) {
					best = opt
					haveBest = true
				}
				break
			}
			// Spacing too wide for crack control: add a bar.
			count++
		}
	}
	if haveBest {
		return best, true
	}
	return fallback, false
}
