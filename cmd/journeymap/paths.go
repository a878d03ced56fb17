package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/internal/cli"
	"github.com/rinasm/journeymap/pkg/query"
)

// pathsCmd represents the paths command
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List every root-to-leaf path in the journey graph",
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd, args)
		filter, _ := cmd.Flags().GetString("filter")
		jsonOut, _ := cmd.Flags().GetBool("json")

		engine, err := cli.CreateEngine(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing journeymap: %v\n", err)
			os.Exit(1)
		}

		paths, err := engine.Paths(cmd.Context())
		if err != nil {
			fmt.Printf("Error extracting paths: %v\n", err)
			os.Exit(1)
		}

		if filter != "" {
			f, err := query.Compile(filter)
			if err != nil {
				fmt.Printf("Invalid filter: %v\n", err)
				os.Exit(1)
			}
			paths, err = f.Apply(paths)
			if err != nil {
				fmt.Printf("Error applying filter: %v\n", err)
				os.Exit(1)
			}
		}

		if jsonOut {
			data, err := json.MarshalIndent(paths, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling paths: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			return
		}

		if len(paths) == 0 {
			fmt.Println("No paths found.")
			return
		}
		for i, p := range paths {
			fmt.Printf("%d. %s (length %d)\n", i+1, p.Description, p.Length)
		}
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	addSourceFlags(pathsCmd)
	pathsCmd.Flags().String("filter", "", "Filter expression, e.g. 'length >= 3 && confidence > 80'")
	pathsCmd.Flags().Bool("json", false, "Output as JSON")
}
