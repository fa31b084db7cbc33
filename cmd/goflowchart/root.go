package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goflowchart",
	Short: "goflowchart turns Go code into flowchart.js diagrams",
	Long: `goflowchart parses Go source (a file or a bare statement snippet) and
emits flowchart.js DSL text describing its control flow. Paste the output
into any flowchart.js host, or use the html output for a standalone page.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
