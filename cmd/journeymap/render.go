package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/internal/cli"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the journey tree as ASCII art",
	Long:  `Builds the journey graph and prints it as a box-drawing tree, one node per line, with journey confidence in parentheses.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := buildOptions(cmd, args)

		engine, err := cli.CreateEngine(opts, cli.CreateLogger(opts.Debug))
		if err != nil {
			fmt.Printf("Error initializing journeymap: %v\n", err)
			os.Exit(1)
		}

		text, err := engine.RenderText(cmd.Context())
		if err != nil {
			fmt.Printf("Error rendering graph: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(text)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addSourceFlags(renderCmd)
}
