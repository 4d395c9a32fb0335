// Package compliance runs the full per-case design pipeline and
// aggregates the results into a per-beam report with a governing case.
package compliance

import (
	"fmt"
	"math"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/detailing"
	"github.com/civilforge/is456beam/internal/flexure"
	"github.com/civilforge/is456beam/internal/is456"
	"github.com/civilforge/is456beam/internal/serviceability"
	"github.com/civilforge/is456beam/internal/shear"
)

// CaseResult is the outcome of one load case. Fatal cases skip the
// serviceability and detailing stages; their pointers stay nil.
type CaseResult struct {
	CaseID string

	// Demands as given and after torsion conversion (Cl. 41).
	Mu, Vu, Tu float64
	MuEq, VuEq float64

	Flexure flexure.Result
	Shear   shear.Result

	SpanDepth  *serviceability.LevelAResult
	Deflection *serviceability.LevelBResult
	Detailing  *detailing.Result

	Fatal       bool
	FatalReason string
	Utilization float64 // max(Mu/Mcap, Vu/Vcap); zero for fatal cases
	Passed      bool
	Warnings    []string
}

// Report is the immutable per-beam compliance report. It is built once
// per design invocation; downstream consumers read it and never
// mutate it.
type Report struct {
	BeamName string
	Cases    []CaseResult // input order

	GoverningCaseID string  // empty when every case is fatal
	Utilization     float64 // of the governing case

	// Final detailing, sized for the largest non-fatal steel demand so
	// the arrangement stays safe for every case, not just the
	// governing one.
	AstDesign float64
	AscDesign float64
	Detailing detailing.Result

	Passed   bool
	Warnings []string
}

// Aggregator owns the engine set. All engines share one immutable
// table service, so an Aggregator is safe for concurrent use across
// beams.
type Aggregator struct {
	flexure        *flexure.Engine
	shear          *shear.Engine
	serviceability *serviceability.Engine
	detailing      *detailing.Engine
}

// NewAggregator builds the engine set around one table service.
func NewAggregator(tables *is456.Tables) *Aggregator {
	return &Aggregator{
		flexure:        flexure.NewEngine(tables),
		shear:          shear.NewEngine(tables),
		serviceability: serviceability.NewEngine(tables),
		detailing:      detailing.NewEngine(tables),
	}
}

// Evaluate runs every load case and aggregates the report. The only
// error return is input validation; engineering failure is expressed
// inside the report.
func (a *Aggregator) Evaluate(b beam.Beam) (*Report, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	report := &Report{BeamName: b.Name}
	g, m := b.Geometry, b.Materials

	for _, lc := range b.Cases {
		cr := a.evaluateCase(g, m, lc)
		report.Cases = append(report.Cases, cr)
		report.Warnings = append(report.Warnings, cr.Warnings...)
	}

	// Governing case: maximum utilization among non-fatal cases.
	best := -1
	for i, cr := range report.Cases {
		if cr.Fatal {
			continue
		}
		if best < 0 || cr.Utilization > report.Cases[best].Utilization {
			best = i
		}
		if cr.Flexure.AstRequired > report.AstDesign {
			report.AstDesign = cr.Flexure.AstRequired
		}
		if cr.Flexure.AscRequired > report.AscDesign {
			report.AscDesign = cr.Flexure.AscRequired
		}
	}
	if best < 0 {
		// Every case fatal: no governing case, beam fails outright.
		report.Passed = false
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("beam %q: all load cases fatal; no governing case", b.Name))
		return report, nil
	}

	report.GoverningCaseID = report.Cases[best].CaseID
	report.Utilization = report.Cases[best].Utilization
	report.Detailing = a.detailing.Design(g, m, report.AstDesign)

	report.Passed = report.Detailing.Adequate
	for _, cr := range report.Cases {
		if cr.Fatal || !cr.Passed {
			report.Passed = false
		}
	}
	return report, nil
}

func (a *Aggregator) evaluateCase(g beam.Geometry, m beam.Materials, lc beam.LoadCase) CaseResult {
	cr := CaseResult{
		CaseID: lc.ID,
		Mu:     lc.Mu, Vu: lc.Vu, Tu: lc.Tu,
		MuEq: shear.EquivalentMoment(lc.Mu, lc.Tu, g.Width, g.OverallDepth),
		VuEq: shear.EquivalentShear(lc.Vu, lc.Tu, g.Width),
	}
	if lc.Tu > 0 {
		cr.Warnings = append(cr.Warnings,
			fmt.Sprintf("case %s: torsion Tu=%.1f kN·m converted to equivalent Mu=%.1f, Vu=%.1f", lc.ID, lc.Tu, cr.MuEq, cr.VuEq))
	}

	cr.Flexure = a.flexure.Design(g, m, cr.MuEq)
	cr.Warnings = append(cr.Warnings, prefixWarnings(lc.ID, cr.Flexure.Warnings)...)
	if !cr.Flexure.Adequate {
		cr.Fatal = true
		cr.FatalReason = "flexure: " + cr.Flexure.Message
		return cr
	}

	cr.Shear = a.shear.Design(g, m, cr.VuEq, cr.Flexure.AstRequired)
	cr.Warnings = append(cr.Warnings, prefixWarnings(lc.ID, cr.Shear.Warnings)...)
	if cr.Shear.Fatal {
		cr.Fatal = true
		cr.FatalReason = "shear: " + cr.Shear.Message
		return cr
	}

	// Serviceability and detailing only make sense for a section that
	// can carry the load at all. Provided steel is not selected yet at
	// the per-case stage, so the required areas stand in for it.
	spanDepth := a.serviceability.SpanDepth(g, m, cr.Flexure.AstRequired, cr.Flexure.AstRequired, cr.Flexure.AscRequired)
	cr.SpanDepth = &spanDepth
	cr.Warnings = append(cr.Warnings, prefixWarnings(lc.ID, spanDepth.Warnings)...)

	deflection := a.serviceability.Deflection(g, m, cr.MuEq, cr.Flexure.AstRequired, cr.Flexure.AscRequired)
	cr.Deflection = &deflection

	det := a.detailing.Design(g, m, cr.Flexure.AstRequired)
	cr.Detailing = &det
	cr.Warnings = append(cr.Warnings, prefixWarnings(lc.ID, det.Warnings)...)

	cr.Utilization = math.Max(
		safeRatio(cr.MuEq, cr.Flexure.MomentCapacity),
		safeRatio(cr.VuEq, cr.Shear.CapacityKN),
	)
	cr.Passed = cr.Shear.Adequate && spanDepth.Pass && deflection.Pass && det.Adequate
	return cr
}

func safeRatio(demand, capacity float64) float64 {
	if capacity <= 0 {
		return math.Inf(1)
	}
	return demand / capacity
}

func prefixWarnings(caseID string, ws []string) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = fmt.Sprintf("[%s] %s", caseID, w)
	}
	return out
}
