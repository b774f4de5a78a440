// Package commands implements the advisor CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Product Advisor - ask questions about the local product catalog",
	Long: `The advisor CLI answers natural-language questions about the local product
catalog, combining a generative-AI call with category and price filtering.
It also inspects the catalog file itself: record count, detected encoding,
and whether the built-in fallback set is being served.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
