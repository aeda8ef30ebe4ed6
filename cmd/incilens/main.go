package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "incilens",
	Short: "Cosmetic ingredient safety analysis for melanin-rich skin",
	Long: `incilens analyzes cosmetic ingredient lists against a curated
knowledge base tuned for melanin-rich skin: per-ingredient safety
classification, a composite safety score, allergen and irritant
detection, skin-type compatibility, and usage recommendations.

Analysis runs remote-first against the incilens cloud classifier and
falls back to the bundled local engine when the service is unreachable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(ingredientCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
