package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/internal/cli"
	"github.com/rinasm/journeymap/pkg/ports"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage saved journey sets",
	Long:  `List, inspect, and remove journey sets saved by the server or kept in the Redis store.`,
}

var setsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all saved journey sets",
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(cmd)
		names, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing sets: %v\n", err)
			os.Exit(1)
		}

		if len(names) == 0 {
			fmt.Println("No saved journey sets found.")
			return
		}

		fmt.Println("Saved journey sets:")
		for _, n := range names {
			fmt.Println("- " + n)
		}
	},
}

var setsInspectCmd = &cobra.Command{
	Use:   "inspect <set-name>",
	Short: "Inspect the journeys in a set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		store := getStore(cmd)

		journeys, err := store.Load(cmd.Context(), name)
		if err != nil {
			fmt.Printf("Error loading set '%s': %v\n", name, err)
			os.Exit(1)
		}

		// Pretty print JSON
		data, err := json.MarshalIndent(journeys, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling journeys: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

var setsRmCmd = &cobra.Command{
	Use:   "rm <set-name>...",
	Short: "Remove one or more journey sets",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(cmd)
		hasError := false

		for _, name := range args {
			if err := store.Delete(cmd.Context(), name); err != nil {
				fmt.Printf("Error removing '%s': %v\n", name, err)
				hasError = true
			} else {
				fmt.Printf("Removed set '%s'\n", name)
			}
		}

		if hasError {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(setsCmd)
	setsCmd.AddCommand(setsLsCmd)
	setsCmd.AddCommand(setsInspectCmd)
	setsCmd.AddCommand(setsRmCmd)

	setsCmd.PersistentFlags().String("redis", "", "Redis URL holding the journey sets")
	setsCmd.PersistentFlags().String("store", ".journeymap/sets", "Directory for saved journey sets (ignored with --redis)")
}

func getStore(cmd *cobra.Command) ports.JourneyStore {
	redisURL, _ := cmd.Flags().GetString("redis")
	dir, _ := cmd.Flags().GetString("store")

	store, err := cli.CreateStore(cli.Options{RedisURL: redisURL}, dir)
	if err != nil {
		fmt.Printf("Error initializing store: %v\n", err)
		os.Exit(1)
	}
	return store
}
