package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/civilforge/is456beam/internal/cutstock"
)

var (
	cutstockCuts  []string
	cutstockStock []float64
	cutstockKerf  float64
)

var cutstockCmd = &cobra.Command{
	Use:   "cutstock",
	Short: "Pack required cut lengths into standard stock bars",
	Long: `Plan rebar cutting with a first-fit-decreasing heuristic: longest
cuts are placed first, each into the first stock bar with room, and a
new bar of the smallest adequate stock length opens when none has.

Each --cut takes length:quantity with an optional :mark suffix.

Examples:
  # 12 pieces of 5800 mm and 8 of 3200 mm from 12 m stock
  is456beam cutstock --cut 5800:12:B1 --cut 3200:8:S1 --stock 12000

  # Mixed stock with a 3 mm saw kerf
  is456beam cutstock --cut 4000:7 --cut 2600:5 --stock 6000,12000 --kerf 3`,
	RunE: runCutstock,
}

func init() {
	rootCmd.AddCommand(cutstockCmd)

	cutstockCmd.Flags().StringArrayVar(&cutstockCuts, "cut", nil, "Required cut as length:quantity[:mark] (mm) [required]")
	cutstockCmd.Flags().Float64SliceVar(&cutstockStock, "stock", []float64{12000}, "Available stock bar lengths (mm)")
	cutstockCmd.Flags().Float64Var(&cutstockKerf, "kerf", 0, "Saw kerf lost per cut (mm)")

	cutstockCmd.MarkFlagRequired("cut")
}

func runCutstock(cmd *cobra.Command, args []string) error {
	demands := make([]cutstock.Demand, 0, len(cutstockCuts))
	for _, spec := range cutstockCuts {
		d, err := parseCutSpec(spec)
		if err != nil {
			return err
		}
		demands = append(demands, d)
	}

	opt, err := cutstock.New(cutstockStock, cutstockKerf)
	if err != nil {
		return err
	}
	printCuttingPlan(opt.Optimize(demands))
	return nil
}

// parseCutSpec parses "length:quantity[:mark]".
func parseCutSpec(spec string) (cutstock.Demand, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return cutstock.Demand{}, fmt.Errorf("invalid cut %q: want length:quantity[:mark]", spec)
	}
	length, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return cutstock.Demand{}, fmt.Errorf("invalid cut length in %q: %w", spec, err)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return cutstock.Demand{}, fmt.Errorf("invalid cut quantity in %q: %w", spec, err)
	}
	d := cutstock.Demand{Length: length, Quantity: qty}
	if len(parts) == 3 {
		d.Mark = parts[2]
	}
	return d, nil
}

func printCuttingPlan(sol cutstock.Solution) {
	fmt.Println()
	fmt.Println("CUTTING PLAN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bar\tStock\tCuts\tLeftover\n")
	fmt.Fprintf(w, "  ───\t─────\t────\t────────\n")
	for i, bar := range sol.Bars {
		cuts := make([]string, len(bar.Cuts))
		for j, c := range bar.Cuts {
			if c.Mark != "" {
				cuts[j] = fmt.Sprintf("%.0f(%s)", c.Length, c.Mark)
			} else {
				cuts[j] = fmt.Sprintf("%.0f", c.Length)
			}
		}
		fmt.Fprintf(w, "  #%d\t%.0f mm\t%s\t%.0f mm\n", i+1, bar.Stock, strings.Join(cuts, " + "), bar.Leftover)
	}
	w.Flush()
	fmt.Println()

	if len(sol.Unfulfillable) > 0 {
		fmt.Println("UNFULFILLABLE:")
		for _, u := range sol.Unfulfillable {
			fmt.Printf("  • %.0f mm × %d: %s\n", u.Demand.Length, u.Demand.Quantity, u.Reason)
		}
		fmt.Println()
	}

	utilization := 0.0
	if sol.TotalStock > 0 {
		utilization = sol.TotalCut / sol.TotalStock * 100
	}
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stock bars used:\t%d\n", len(sol.Bars))
	fmt.Fprintf(w, "  Total stock:\t%.0f mm\n", sol.TotalStock)
	fmt.Fprintf(w, "  Total cut:\t%.0f mm\n", sol.TotalCut)
	fmt.Fprintf(w, "  Kerf loss:\t%.0f mm\n", sol.KerfLoss)
	fmt.Fprintf(w, "  Waste:\t%.0f mm\n", sol.TotalWaste)
	fmt.Fprintf(w, "  Utilization:\t%.1f %%\n", utilization)
	w.Flush()
	fmt.Println()
}
