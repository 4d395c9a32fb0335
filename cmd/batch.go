package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/civilforge/is456beam/internal/batch"
	"github.com/civilforge/is456beam/internal/beam"
)

var (
	batchInput   string
	batchWorkers int
	batchChart   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a set of beams from a YAML file in parallel",
	Long: `Run the full compliance pipeline over every beam in a YAML input
file. Beams are evaluated concurrently by a bounded worker pool and
reported in input order.

Input format:

  beams:
    - name: B1
      geometry:
        width: 230
        overall_depth: 450
        effective_depth: 410
        cover: 25
        comp_cover: 40
        span: 4500
        support: simply-supported
        stirrup_dia: 8
        aggregate_size: 20
      materials: {fck: 25, fy: 415}
      cases:
        - {id: LC1, mu: 90, vu: 60}
        - {id: LC2, mu: 60, vu: 85, tu: 10}

Examples:
  is456beam batch --input beams.yaml
  is456beam batch -i beams.yaml --workers 8 --chart`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "YAML file of beams [required]")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Worker pool size (0 = number of CPUs)")
	batchCmd.Flags().BoolVar(&batchChart, "chart", false, "Plot utilization per beam")

	batchCmd.MarkFlagRequired("input")
}

// YAML input schema. The adapter owns units and field naming; the core
// data model stays free of serialization tags.
type batchFile struct {
	Beams []beamInput `yaml:"beams"`
}

type beamInput struct {
	Name     string `yaml:"name"`
	Geometry struct {
		Width           float64 `yaml:"width"`
		OverallDepth    float64 `yaml:"overall_depth"`
		EffectiveDepth  float64 `yaml:"effective_depth"`
		Cover           float64 `yaml:"cover"`
		CompCover       float64 `yaml:"comp_cover"`
		FlangeWidth     float64 `yaml:"flange_width"`
		FlangeThickness float64 `yaml:"flange_thickness"`
		Span            float64 `yaml:"span"`
		Support         string  `yaml:"support"`
		StirrupDia      float64 `yaml:"stirrup_dia"`
		AggregateSize   float64 `yaml:"aggregate_size"`
	} `yaml:"geometry"`
	Materials struct {
		Fck float64 `yaml:"fck"`
		Fy  float64 `yaml:"fy"`
	} `yaml:"materials"`
	Cases []struct {
		ID string  `yaml:"id"`
		Mu float64 `yaml:"mu"`
		Vu float64 `yaml:"vu"`
		Tu float64 `yaml:"tu"`
	} `yaml:"cases"`
}

func (in beamInput) toBeam() beam.Beam {
	b := beam.Beam{
		Name: in.Name,
		Geometry: beam.Geometry{
			Width:           in.Geometry.Width,
			OverallDepth:    in.Geometry.OverallDepth,
			EffectiveDepth:  in.Geometry.EffectiveDepth,
			Cover:           in.Geometry.Cover,
			CompCover:       in.Geometry.CompCover,
			FlangeWidth:     in.Geometry.FlangeWidth,
			FlangeThickness: in.Geometry.FlangeThickness,
			Span:            in.Geometry.Span,
			Support:         beam.SupportCondition(in.Geometry.Support),
			StirrupDia:      in.Geometry.StirrupDia,
			AggregateSize:   in.Geometry.AggregateSize,
		},
		Materials: beam.Materials{Fck: in.Materials.Fck, Fy: in.Materials.Fy},
	}
	for _, c := range in.Cases {
		b.Cases = append(b.Cases, beam.LoadCase{ID: c.ID, Mu: c.Mu, Vu: c.Vu, Tu: c.Tu})
	}
	return b
}

func runBatch(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(batchInput)
	if err != nil {
		return fmt.Errorf("reading %s: %w", batchInput, err)
	}
	var file batchFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", batchInput, err)
	}
	if len(file.Beams) == 0 {
		return fmt.Errorf("%s contains no beams", batchInput)
	}

	beams := make([]beam.Beam, 0, len(file.Beams))
	for _, in := range file.Beams {
		beams = append(beams, in.toBeam())
	}

	tables, err := loadTables()
	if err != nil {
		return err
	}
	runner := batch.NewRunner(tables, batchWorkers)
	results := runner.Run(cmd.Context(), beams)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BATCH RESULTS - %d beams\n", len(results))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam\tGoverning\tUtilization\tAst\tAsc\tStatus\n")
	fmt.Fprintf(w, "  ────\t─────────\t───────────\t───\t───\t──────\n")

	var utilizations []float64
	passed, failed, errored := 0, 0, 0
	for _, res := range results {
		if res.Err != nil {
			errored++
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\tERROR: %v\n", res.Name, res.Err)
			utilizations = append(utilizations, 0)
			continue
		}
		rep := res.Report
		status := "PASS"
		if rep.Passed {
			passed++
		} else {
			failed++
			status = "FAIL"
		}
		governing := rep.GoverningCaseID
		if governing == "" {
			governing = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.0f\t%.0f\t%s\n",
			res.Name, governing, rep.Utilization, rep.AstDesign, rep.AscDesign, status)
		utilizations = append(utilizations, rep.Utilization)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d passed, %d failed, %d errored\n", passed, failed, errored)
	fmt.Println()

	if batchChart && len(utilizations) > 1 {
		fmt.Println(asciigraph.Plot(utilizations,
			asciigraph.Height(10),
			asciigraph.Caption("utilization by beam (input order)")))
		fmt.Println()
	}
	return nil
}
