package main

import (
	"github.com/setanarut/mobileassets"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate every icon, splash screen and Contents.json",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	addRunFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return runTargets(cmd, mobileassets.AllTargets, false)
}
