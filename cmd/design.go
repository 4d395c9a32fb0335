package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/compliance"
	"github.com/civilforge/is456beam/internal/cutstock"
	"github.com/civilforge/is456beam/internal/diagram"
	"github.com/civilforge/is456beam/internal/is456"
	"github.com/civilforge/is456beam/internal/schedule"
)

var (
	// Geometry inputs
	designName            string
	designWidth           float64
	designDepth           float64
	designEffDepth        float64
	designCover           float64
	designCompCover       float64
	designFlangeWidth     float64
	designFlangeThickness float64
	designSpan            float64
	designSupport         string
	designStirrupDia      float64
	designAggregate       float64

	// Material inputs
	designFck float64
	designFy  float64

	// Demand inputs
	designMu float64
	designVu float64
	designTu float64

	// Output options
	designShowDiagram  bool
	designShowSchedule bool
	designStock        []float64
	designKerf         float64
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Run the full compliance pipeline for one beam",
	Long: `Design one beam for the given factored demands and report the full
compliance verdict: flexure, shear (with torsion conversion),
serviceability and detailing.

The design follows IS 456:2000 provisions:
  - Cl. 38.1: Limit state of collapse in flexure
  - Cl. 40/41: Shear and torsion
  - Cl. 23.2.1: Span to effective depth ratios
  - Cl. 26.2/26.3: Development lengths and bar spacing

Examples:
  # Design a 230x450 beam with Mu=90 kN·m, Vu=60 kN
  is456beam design --width 230 --depth 450 --eff-depth 410 \
      --span 4500 --fck 25 --fy 415 --mu 90 --vu 60

  # Flanged section with a bar schedule and cutting plan
  is456beam design -b 300 --depth 600 --eff-depth 550 --span 7200 \
      --flange-width 1200 --flange-thickness 120 \
      --fck 25 --fy 415 -m 280 --vu 160 --schedule --stock 6000,12000`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	// Geometry flags
	designCmd.Flags().StringVar(&designName, "name", "B1", "Beam name used in the report")
	designCmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Web width b (mm) [required]")
	designCmd.Flags().Float64Var(&designDepth, "depth", 0, "Overall depth D (mm) [required]")
	designCmd.Flags().Float64VarP(&designEffDepth, "eff-depth", "d", 0, "Effective depth d (mm) [required]")
	designCmd.Flags().Float64VarP(&designCover, "cover", "c", 25, "Clear cover to stirrup (mm)")
	designCmd.Flags().Float64Var(&designCompCover, "comp-cover", 40, "Depth to compression steel centroid d' (mm)")
	designCmd.Flags().Float64Var(&designFlangeWidth, "flange-width", 0, "Effective flange width bf (mm), 0 for rectangular")
	designCmd.Flags().Float64Var(&designFlangeThickness, "flange-thickness", 0, "Flange thickness Df (mm)")
	designCmd.Flags().Float64VarP(&designSpan, "span", "l", 0, "Effective span (mm) [required]")
	designCmd.Flags().StringVar(&designSupport, "support", string(beam.SimplySupported), "Support condition: simply-supported, continuous, cantilever")
	designCmd.Flags().Float64Var(&designStirrupDia, "stirrup-dia", 8, "Stirrup diameter (mm)")
	designCmd.Flags().Float64Var(&designAggregate, "aggregate", 20, "Nominal maximum aggregate size (mm)")

	// Material flags
	designCmd.Flags().Float64Var(&designFck, "fck", 25, "Concrete grade fck (N/mm²)")
	designCmd.Flags().Float64Var(&designFy, "fy", 415, "Steel grade fy (N/mm²)")

	// Demand flags
	designCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN·m) [required]")
	designCmd.Flags().Float64Var(&designVu, "vu", 0, "Factored shear Vu (kN)")
	designCmd.Flags().Float64Var(&designTu, "tu", 0, "Factored torsion Tu (kN·m)")

	designCmd.MarkFlagRequired("width")
	designCmd.MarkFlagRequired("depth")
	designCmd.MarkFlagRequired("eff-depth")
	designCmd.MarkFlagRequired("span")
	designCmd.MarkFlagRequired("mu")

	// Output options
	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	designCmd.Flags().BoolVar(&designShowSchedule, "schedule", false, "Print the bar schedule")
	designCmd.Flags().Float64SliceVar(&designStock, "stock", nil, "Stock bar lengths (mm) for the cutting plan; implies --schedule")
	designCmd.Flags().Float64Var(&designKerf, "kerf", 3, "Saw kerf per cut (mm) for the cutting plan")
}

func runDesign(cmd *cobra.Command, args []string) error {
	b := beam.Beam{
		Name: designName,
		Geometry: beam.Geometry{
			Width:           designWidth,
			OverallDepth:    designDepth,
			EffectiveDepth:  designEffDepth,
			Cover:           designCover,
			CompCover:       designCompCover,
			FlangeWidth:     designFlangeWidth,
			FlangeThickness: designFlangeThickness,
			Span:            designSpan,
			Support:         beam.SupportCondition(designSupport),
			StirrupDia:      designStirrupDia,
			AggregateSize:   designAggregate,
		},
		Materials: beam.Materials{Fck: designFck, Fy: designFy},
		Cases:     []beam.LoadCase{{ID: "LC1", Mu: designMu, Vu: designVu, Tu: designTu}},
	}

	tables, err := loadTables()
	if err != nil {
		return err
	}
	rep, err := compliance.NewAggregator(tables).Evaluate(b)
	if err != nil {
		return err
	}

	printReport(b, rep)

	if designShowDiagram {
		printDiagrams(b, rep)
	}
	if designShowSchedule || len(designStock) > 0 {
		printSchedule(tables, b, rep)
	}
	return nil
}

func printReport(b beam.Beam, rep *compliance.Report) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM COMPLIANCE REPORT - IS 456:2000")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	g, m := b.Geometry, b.Materials

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam:\t%s\n", rep.BeamName)
	fmt.Fprintf(w, "  Section (b × D):\t%.0f × %.0f mm\n", g.Width, g.OverallDepth)
	fmt.Fprintf(w, "  Effective depth (d):\t%.0f mm\n", g.EffectiveDepth)
	if g.Flanged() {
		fmt.Fprintf(w, "  Flange (bf × Df):\t%.0f × %.0f mm\n", g.FlangeWidth, g.FlangeThickness)
	}
	fmt.Fprintf(w, "  Span:\t%.0f mm (%s)\n", g.Span, g.Support)
	fmt.Fprintf(w, "  Materials:\tM%.0f / Fe%.0f\n", m.Fck, m.Fy)
	w.Flush()
	fmt.Println()

	for _, cr := range rep.Cases {
		printCase(cr)
	}

	if rep.GoverningCaseID != "" {
		det := rep.Detailing
		fmt.Println("FINAL DETAILING:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Arrangement:\t%s\n", det.Message)
		fmt.Fprintf(w, "  Clear spacing:\t%.0f mm (limits %.0f – %.0f)\n", det.ClearSpacing, det.MinClearSpacing, det.MaxClearSpacing)
		fmt.Fprintf(w, "  Development length Ld:\t%.0f mm (compression %.0f)\n", det.Ld, det.LdCompression)
		fmt.Fprintf(w, "  Lap lengths:\tflexural %.0f / direct tension %.0f / compression %.0f mm\n",
			det.LapFlexuralTension, det.LapDirectTension, det.LapCompression)
		w.Flush()
		fmt.Println()
	}

	var lines []string
	if rep.Passed {
		lines = append(lines, "DESIGN PASSES")
	} else {
		lines = append(lines, "DESIGN FAILS")
	}
	if rep.GoverningCaseID != "" {
		lines = append(lines,
			fmt.Sprintf("Governing case: %s (utilization %.2f)", rep.GoverningCaseID, rep.Utilization),
			fmt.Sprintf("Ast = %.0f mm², Asc = %.0f mm²", rep.AstDesign, rep.AscDesign))
	} else {
		lines = append(lines, "All load cases fatal")
	}
	fmt.Println(diagram.DrawSummaryBox("VERDICT", lines))

	if len(rep.Warnings) > 0 {
		fmt.Println("WARNINGS:")
		for _, warn := range rep.Warnings {
			fmt.Printf("  • %s\n", warn)
		}
		fmt.Println()
	}
}

func printCase(cr compliance.CaseResult) {
	fmt.Printf("CASE %s:\n", cr.CaseID)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if cr.Tu > 0 {
		fmt.Fprintf(w, "  Demands:\tMu=%.1f kN·m, Vu=%.1f kN, Tu=%.1f kN·m\n", cr.Mu, cr.Vu, cr.Tu)
		fmt.Fprintf(w, "  Equivalent (Cl. 41):\tMe=%.1f kN·m, Ve=%.1f kN\n", cr.MuEq, cr.VuEq)
	} else {
		fmt.Fprintf(w, "  Demands:\tMu=%.1f kN·m, Vu=%.1f kN\n", cr.Mu, cr.Vu)
	}

	f := cr.Flexure
	fmt.Fprintf(w, "  Flexure:\t%s\n", f.Kind)
	fmt.Fprintf(w, "    xu / xu,max:\t%.1f / %.1f mm\n", f.Xu, f.XuMax)
	fmt.Fprintf(w, "    Mu,lim:\t%.1f kN·m\n", f.MuLim)
	fmt.Fprintf(w, "    Ast required:\t%.0f mm²\n", f.AstRequired)
	if f.AscRequired > 0 {
		fmt.Fprintf(w, "    Asc required:\t%.0f mm²\n", f.AscRequired)
	}
	fmt.Fprintf(w, "    Moment capacity:\t%.1f kN·m\n", f.MomentCapacity)

	if cr.Fatal {
		w.Flush()
		fmt.Printf("  ✗ FATAL: %s\n\n", cr.FatalReason)
		return
	}

	s := cr.Shear
	fmt.Fprintf(w, "  Shear:\tτv=%.2f, τc=%.2f, τc,max=%.2f N/mm²\n", s.TauV, s.TauC, s.TauCMax)
	if s.MinimumOnly {
		fmt.Fprintf(w, "    Stirrups:\tminimum %d-legged φ%.0f @ %.0f mm\n", s.Legs, s.StirrupDia, s.Spacing)
	} else {
		fmt.Fprintf(w, "    Stirrups:\t%d-legged φ%.0f @ %.0f mm (Vus=%.1f kN)\n", s.Legs, s.StirrupDia, s.Spacing, s.VusKN)
	}
	fmt.Fprintf(w, "    Shear capacity:\t%.1f kN\n", s.CapacityKN)

	if cr.SpanDepth != nil {
		sd := cr.SpanDepth
		fmt.Fprintf(w, "  Span/depth (Cl. 23.2.1):\t%.2f actual vs %.2f allowable (%s)\n",
			sd.ActualRatio, sd.AllowableRatio, passMark(sd.Pass))
	}
	if cr.Deflection != nil {
		dl := cr.Deflection
		fmt.Fprintf(w, "  Deflection:\t%.2f mm vs limit %.2f mm (%s)\n",
			dl.Deflection, dl.Limit, passMark(dl.Pass))
	}
	fmt.Fprintf(w, "  Utilization:\t%.2f\n", cr.Utilization)
	w.Flush()
	fmt.Printf("  Status: %s\n\n", passMark(cr.Passed))
}

func passMark(ok bool) string {
	if ok {
		return "PASS ✓"
	}
	return "FAIL ✗"
}

func printDiagrams(b beam.Beam, rep *compliance.Report) {
	if rep.GoverningCaseID == "" {
		return
	}
	var f *compliance.CaseResult
	for i := range rep.Cases {
		if rep.Cases[i].CaseID == rep.GoverningCaseID {
			f = &rep.Cases[i]
			break
		}
	}
	if f == nil {
		return
	}
	data := diagram.SectionData{
		Width:          b.Geometry.Width,
		OverallDepth:   b.Geometry.OverallDepth,
		EffectiveDepth: b.Geometry.EffectiveDepth,
		CompCover:      b.Geometry.CompCover,
		Xu:             f.Flexure.Xu,
		XuMax:          f.Flexure.XuMax,
		Ast:            rep.AstDesign,
		Asc:            rep.AscDesign,
		Fck:            b.Materials.Fck,
		Fy:             b.Materials.Fy,
	}
	fmt.Println(diagram.DrawSection(data))
	fmt.Println(diagram.DrawStrainProfile(data))
}

func printSchedule(tables *is456.Tables, b beam.Beam, rep *compliance.Report) {
	items := schedule.Build(tables, rep, b.Geometry, b.Materials)
	if len(items) == 0 {
		fmt.Println("No bar schedule: every load case is fatal.")
		return
	}

	fmt.Println("BAR SCHEDULE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mark\tDescription\tDia\tCut Length\tQty\n")
	fmt.Fprintf(w, "  ────\t───────────\t───\t──────────\t───\n")
	for _, it := range items {
		fmt.Fprintf(w, "  %s\t%s\tφ%.0f\t%.0f mm\t%d\n", it.Mark, it.Description, it.Dia, it.CutLength, it.Quantity)
	}
	w.Flush()
	fmt.Println()

	if len(designStock) == 0 {
		return
	}
	opt, err := cutstock.New(designStock, designKerf)
	if err != nil {
		fmt.Printf("Cutting plan skipped: %v\n", err)
		return
	}
	demands := make([]cutstock.Demand, 0, len(items))
	for _, it := range items {
		demands = append(demands, cutstock.Demand{Length: it.CutLength, Quantity: it.Quantity, Mark: it.Mark})
	}
	printCuttingPlan(opt.Optimize(demands))
}
