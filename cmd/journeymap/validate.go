package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinasm/journeymap/pkg/adapters/file"
	"github.com/rinasm/journeymap/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a journey document for consistency",
	Long:  `Loads the journey document and reports lint findings: missing or duplicate journey IDs, out-of-range confidence scores and unknown step data types.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Journey set is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts := buildOptions(cmd, args)

	doc, err := file.LoadDocument(opts.File)
	if err != nil {
		return err
	}

	if err := schema.LintJourneys(doc.Journeys); err != nil {
		issues := schema.ValidationErrors(err)
		for _, issue := range issues {
			fmt.Printf("  - %v\n", issue)
		}
		return fmt.Errorf("%d issue(s) in %s", len(issues), opts.File)
	}

	return nil
}
