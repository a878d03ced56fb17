package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of journeymap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("journeymap version %s\n", strings.TrimSpace(journeymap.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
