package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "journeymap",
	Short: "Journeymap turns detected user journeys into an action graph",
	Long: `Journeymap reads detected user journeys (ordered sequences of actions on a
web page) and derives a rooted action tree with paths, statistics and
visualization exports (JSON, Mermaid, DOT).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "journeys.yaml", "Journey document to load (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// addSourceFlags registers the store-backed source flags on commands that
// read the working journey set.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("redis", "", "Redis URL to load the journey set from instead of --file")
	cmd.Flags().String("set", "main", "Journey set name when loading from a store")
}

// buildOptions resolves the shared flags, accepting the document path as a
// positional argument when --file was not set explicitly.
func buildOptions(cmd *cobra.Command, args []string) cli.Options {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		path = args[0]
	}
	debug, _ := cmd.Flags().GetBool("debug")
	redisURL, _ := cmd.Flags().GetString("redis")
	set, _ := cmd.Flags().GetString("set")

	return cli.Options{File: path, RedisURL: redisURL, Set: set, Debug: debug}
}
