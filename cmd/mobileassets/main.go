package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mobileassets",
	Short:         "Generate Android and iOS icons and splash screens from one logo",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Project root containing android/, ios/ and assets/")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default <root>/mobileassets.yaml if present)")
	rootCmd.PersistentFlags().StringP("source", "s", "", "Source image, overrides the config")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
