// Package serviceability runs the two deflection checks of IS 456:
// the Cl. 23.2.1 span/depth ratio (Level A) and the curvature-based
// computed deflection against the Cl. 23.2 limits (Level B).
package serviceability

import (
	"fmt"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

// LevelAResult is the span/depth ratio check outcome.
type LevelAResult struct {
	BaseRatio         float64
	TensionFactor     float64 // Fig. 4
	CompressionFactor float64 // Fig. 5
	FlangeFactor      float64 // Fig. 6 web-width reduction, 1.0 for rectangular

	Fs float64 // steel service stress used for the Fig. 4 lookup

	AllowableRatio float64
	ActualRatio    float64
	Margin         float64 // allowable - actual; negative fails
	Pass           bool
	Warnings       []string
}

// Engine evaluates serviceability against an injected table service.
type Engine struct {
	tables *is456.Tables
}

// NewEngine creates a serviceability engine bound to the given tables.
func NewEngine(tables *is456.Tables) *Engine {
	return &Engine{tables: tables}
}

// SpanDepth runs the Level A check. astReq/astProv drive the service
// stress estimate fs = 0.58*fy*astReq/astProv (Fig. 4 note); when the
// provided steel is not yet selected, callers pass astProv = astReq.
func (e *Engine) SpanDepth(g beam.Geometry, m beam.Materials, astReq, astProv, ascProv float64) LevelAResult {
	b, d := g.Width, g.EffectiveDepth
	r := LevelAResult{
		BaseRatio:    g.Support.BaseSpanDepthRatio(),
		FlangeFactor: 1.0,
	}
	if astProv <= 0 {
		astProv = astReq
	}

	r.Fs = 0.58 * m.Fy * astReq / astProv
	pt := 100 * astProv / (b * d)
	pc := 100 * ascProv / (b * d)

	kt, clamped := e.tables.TensionModFactor(r.Fs, pt)
	if clamped {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("tension modification factor clamped at chart bounds (fs=%.0f, pt=%.2f)", r.Fs, pt))
	}
	r.TensionFactor = kt

	kc, clamped := e.tables.CompressionModFactor(pc)
	if clamped {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("compression modification factor clamped at chart bounds (pc=%.2f)", pc))
	}
	r.CompressionFactor = kc

	if g.Flanged() {
		r.FlangeFactor = flangeReduction(g.Width / g.FlangeWidth)
	}

	r.AllowableRatio = r.BaseRatio * r.TensionFactor * r.CompressionFactor * r.FlangeFactor
	r.ActualRatio = g.Span / d
	r.Margin = r.AllowableRatio - r.ActualRatio
	r.Pass = r.ActualRatio <= r.AllowableRatio
	return r
}

// flangeReduction is the Fig. 6 correction for flanged sections keyed
// by bw/bf: 0.8 for ratios up to 0.3, rising linearly to 1.0.
func flangeReduction(ratio float64) float64 {
	if ratio <= 0.3 {
		return 0.8
	}
	if ratio >= 1.0 {
		return 1.0
	}
	return 0.8 + 0.2*(ratio-0.3)/0.7
}
