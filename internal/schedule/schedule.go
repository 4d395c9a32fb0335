// Package schedule turns a compliance report into a fabricable bar
// schedule: marked items with cut lengths and quantities, ready for
// the cutting-stock optimizer.
package schedule

import (
	"math"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/compliance"
	"github.com/civilforge/is456beam/internal/detailing"
	"github.com/civilforge/is456beam/internal/is456"
)

// Item is one bar mark on the schedule.
type Item struct {
	Mark        string
	Description string
	Dia         float64 // mm
	CutLength   float64 // mm
	Quantity    int
}

const (
	hangerDia = 12.0 // mm, nominal top hanger bars when no compression steel
	hangerQty = 2

	// Two 135° stirrup hooks, expressed as a bar-diameter multiple.
	stirrupHookAllowance = 24.0
)

// Build derives the schedule from a finished report. Reports with no
// governing case (all cases fatal) produce an empty schedule.
func Build(tables *is456.Tables, rep *compliance.Report, g beam.Geometry, m beam.Materials) []Item {
	if rep.GoverningCaseID == "" {
		return nil
	}
	det := detailing.NewEngine(tables)
	var items []Item

	// Bottom tension steel from the finalized arrangement.
	main := rep.Detailing
	ldMain, _ := det.DevelopmentLength(m, main.BarDia, false)
	items = append(items, Item{
		Mark:        "B1",
		Description: "bottom tension bars",
		Dia:         main.BarDia,
		CutLength:   round5(g.Span + 2*ldMain),
		Quantity:    main.BarCount,
	})

	// Top steel: designed compression bars when the section is doubly
	// reinforced, nominal hangers otherwise.
	if rep.AscDesign > 0 {
		comp := det.Design(g, m, rep.AscDesign)
		ldComp, _ := det.DevelopmentLength(m, comp.BarDia, true)
		items = append(items, Item{
			Mark:        "T1",
			Description: "top compression bars",
			Dia:         comp.BarDia,
			CutLength:   round5(g.Span + 2*ldComp),
			Quantity:    comp.BarCount,
		})
	} else {
		ldHanger, _ := det.DevelopmentLength(m, hangerDia, false)
		items = append(items, Item{
			Mark:        "T1",
			Description: "top hanger bars",
			Dia:         hangerDia,
			CutLength:   round5(g.Span + 2*ldHanger),
			Quantity:    hangerQty,
		})
	}

	// Stirrups at the tightest spacing any non-fatal case demands.
	spacing := tightestSpacing(rep)
	if spacing > 0 {
		dia := g.StirrupDia
		if dia <= 0 {
			dia = 8
		}
		legH := g.Width - 2*g.Cover
		legV := g.OverallDepth - 2*g.Cover
		items = append(items, Item{
			Mark:        "S1",
			Description: "two-legged closed stirrups",
			Dia:         dia,
			CutLength:   round5(2*(legH+legV) + stirrupHookAllowance*dia),
			Quantity:    int(math.Floor(g.Span/spacing)) + 1,
		})
	}
	return items
}

func tightestSpacing(rep *compliance.Report) float64 {
	spacing := 0.0
	for _, cr := range rep.Cases {
		if cr.Fatal || cr.Shear.Spacing <= 0 {
			continue
		}
		if spacing == 0 || cr.Shear.Spacing < spacing {
			spacing = cr.Shear.Spacing
		}
	}
	return spacing
}

// round5 rounds a cut length up to the next 5 mm, the usual
// fabrication increment.
func round5(v float64) float64 {
	return math.Ceil(v/5) * 5
}
