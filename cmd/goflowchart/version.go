package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdfmlr/goflowchart"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goflowchart",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goflowchart version %s\n", strings.TrimSpace(goflowchart.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
