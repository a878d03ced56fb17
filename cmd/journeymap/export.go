package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/internal/cli"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the graph visualization",
	Long:  `Builds the journey graph and writes it in the requested format: json (node and edge lists), mermaid (graph TD) or dot (Graphviz).`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd, args)
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		engine, err := cli.CreateEngine(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing journeymap: %v\n", err)
			os.Exit(1)
		}

		var payload string
		switch format {
		case "json":
			viz, verr := engine.Visualization(cmd.Context())
			if verr != nil {
				err = verr
				break
			}
			data, merr := json.MarshalIndent(viz, "", "  ")
			if merr != nil {
				err = merr
				break
			}
			payload = string(data) + "\n"
		case "mermaid":
			payload, err = engine.Mermaid(cmd.Context())
		case "dot":
			payload, err = engine.DOT(cmd.Context())
		default:
			fmt.Printf("Unknown format: %s. Supported: json, mermaid, dot\n", format)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("Error exporting graph: %v\n", err)
			os.Exit(1)
		}

		if output == "" {
			fmt.Print(payload)
			return
		}
		if err := os.WriteFile(output, []byte(payload), 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", output, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%s)\n", output, format)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addSourceFlags(exportCmd)
	exportCmd.Flags().String("format", "json", "Export format: json, mermaid or dot")
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
