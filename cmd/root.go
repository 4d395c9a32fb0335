package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civilforge/is456beam/internal/is456"
	"github.com/civilforge/is456beam/internal/version"
)

var tablesPath string

var rootCmd = &cobra.Command{
	Use:   "is456beam",
	Short: "IS 456 Reinforced Concrete Beam Design Tool",
	Long: `is456beam - IS 456:2000 Limit State Beam Designer

A CLI tool for the design of reinforced concrete beams to the
Indian Standard IS 456:2000 (limit state method).

This tool helps structural engineers perform:
  - Flexural design (singly, doubly and flanged sections)
  - Shear and torsion design with stirrup spacing
  - Serviceability checks (span/depth and curvature deflection)
  - Development lengths, lap lengths and bar arrangement
  - Bar schedules and cutting-stock optimization
  - Parallel batch evaluation of beam sets

All calculations follow IS 456:2000 with SP:16 design tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   is456beam v%-45s║\n", version.Version)
		fmt.Println("  ║   IS 456:2000 Limit State Beam Designer                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of reinforced concrete beams")
		fmt.Println("  to the Indian Standard IS 456:2000 (limit state method).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored demands from Table 18 load combinations")
		fmt.Println("    • Singly, doubly and flanged flexural design")
		fmt.Println("    • Shear, torsion and serviceability compliance")
		fmt.Println("    • Bar schedules with cutting-stock optimization")
		fmt.Println("    • Parallel batch runs over beam sets")
		fmt.Println()
		fmt.Println("  Use 'is456beam --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "Override the built-in design tables with a YAML file")
}

// loadTables returns the design-table service: the embedded dataset,
// or the --tables override when given.
func loadTables() (*is456.Tables, error) {
	if tablesPath == "" {
		return is456.DefaultTables(), nil
	}
	return is456.LoadTables(tablesPath)
}
