package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civilforge/is456beam/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of is456beam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("is456beam v%s\n", version.Version)
		fmt.Println("IS 456:2000 Limit State Beam Designer")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
