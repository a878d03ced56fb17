package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/internal/cli"
	"github.com/rinasm/journeymap/internal/presentation/tui"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for the journey graph",
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd, args)
		jsonOut, _ := cmd.Flags().GetBool("json")

		engine, err := cli.CreateEngine(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing journeymap: %v\n", err)
			os.Exit(1)
		}

		stats, err := engine.Stats(cmd.Context())
		if err != nil {
			fmt.Printf("Error computing stats: %v\n", err)
			os.Exit(1)
		}

		if jsonOut {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling stats: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			return
		}

		fmt.Print(tui.RenderStats(stats))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addSourceFlags(statsCmd)
	statsCmd.Flags().Bool("json", false, "Output as JSON")
}
