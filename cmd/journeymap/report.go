package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/internal/cli"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a markdown report of the journey graph",
	Long:  `Generates a markdown report (tree, statistics, paths) and renders it with terminal styling. Piped output stays plain markdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd, args)
		plain, _ := cmd.Flags().GetBool("plain")

		if err := cli.RunReport(opts, plain); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addSourceFlags(reportCmd)
	reportCmd.Flags().Bool("plain", false, "Skip terminal styling and print raw markdown")
}
