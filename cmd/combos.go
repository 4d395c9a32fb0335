package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

var (
	// Unfactored moments (kN·m)
	comboMomentDead  float64
	comboMomentLive  float64
	comboMomentWind  float64
	comboMomentQuake float64

	// Unfactored shears (kN)
	comboShearDead  float64
	comboShearLive  float64
	comboShearWind  float64
	comboShearQuake float64

	comboGravityOnly bool
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Factor load effects through the Table 18 combinations",
	Long: `Expand unfactored load effects into factored design demands using
the IS 456 Table 18 partial safety factors for the collapse limit
state. Wind and earthquake never act together.

Load types:
  DL - Dead load
  IL - Imposed (live) load
  WL - Wind load
  EL - Earthquake load

Examples:
  # Gravity loads only
  is456beam combos --md 50 --ml 30 --vd 35 --vl 20

  # With wind
  is456beam combos --md 50 --ml 30 --mw 20 --vd 35 --vl 20 --vw 12`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().Float64Var(&comboMomentDead, "md", 0, "Moment due to dead load (kN·m)")
	combosCmd.Flags().Float64Var(&comboMomentLive, "ml", 0, "Moment due to imposed load (kN·m)")
	combosCmd.Flags().Float64Var(&comboMomentWind, "mw", 0, "Moment due to wind load (kN·m)")
	combosCmd.Flags().Float64Var(&comboMomentQuake, "me", 0, "Moment due to earthquake load (kN·m)")

	combosCmd.Flags().Float64Var(&comboShearDead, "vd", 0, "Shear due to dead load (kN)")
	combosCmd.Flags().Float64Var(&comboShearLive, "vl", 0, "Shear due to imposed load (kN)")
	combosCmd.Flags().Float64Var(&comboShearWind, "vw", 0, "Shear due to wind load (kN)")
	combosCmd.Flags().Float64Var(&comboShearQuake, "ve", 0, "Shear due to earthquake load (kN)")

	combosCmd.Flags().BoolVarP(&comboGravityOnly, "gravity", "g", false, "Use only the gravity combination 1.5(DL+IL)")
}

func runCombos(cmd *cobra.Command, args []string) {
	moments := is456.LoadEffects{
		Dead: comboMomentDead, Live: comboMomentLive,
		Wind: comboMomentWind, Earthquake: comboMomentQuake,
	}
	shears := is456.LoadEffects{
		Dead: comboShearDead, Live: comboShearLive,
		Wind: comboShearWind, Earthquake: comboShearQuake,
	}

	if moments == (is456.LoadEffects{}) && shears == (is456.LoadEffects{}) {
		fmt.Println("Error: provide at least one unfactored load effect.")
		fmt.Println("Use 'is456beam combos --help' for usage information.")
		return
	}

	combos := is456.LoadCombinations
	if comboGravityOnly {
		combos = is456.GravityCombinations
	}
	cases := beam.CasesFromEffects(moments, shears, is456.LoadEffects{}, combos)

	governing := 0
	for i, c := range cases {
		if c.Mu > cases[governing].Mu {
			governing = i
		}
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FACTORED DEMANDS - IS 456 TABLE 18")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination\tMu (kN·m)\tVu (kN)\n")
	fmt.Fprintf(w, "  ───────────\t─────────\t───────\n")
	for i, c := range cases {
		marker := ""
		if i == governing {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f%s\n", c.ID, c.Mu, c.Vu, marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  Mu = %.2f kN·m, Vu = %.2f kN\n", cases[governing].Mu, cases[governing].Vu)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()
}
